// Package server owns the listening socket and the set of live
// connections; it hands each accepted socket to the conn package and keeps
// just enough bookkeeping to answer "who's online" queries from the side
// channel.
package server

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/go-mclib/mcserver/conn"
	"github.com/go-mclib/mcserver/sidechannel"
)

// Server accepts TCP connections and runs one conn.Handle per client.
type Server struct {
	listener net.Listener
	assets   *conn.Assets

	mu    sync.RWMutex
	conns map[*conn.Handle]struct{}
}

// New binds addr (e.g. ":25565") and returns a Server ready to Serve.
func New(addr string, assets *conn.Assets) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return &Server{
		listener: ln,
		assets:   assets,
		conns:    make(map[*conn.Handle]struct{}),
	}, nil
}

// Addr returns the address the listener is bound to.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Serve accepts connections until the listener is closed.
func (s *Server) Serve() error {
	for {
		netConn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(netConn)
	}
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handleConn(netConn net.Conn) {
	handle := conn.NewHandle(netConn, s.assets)

	s.mu.Lock()
	s.conns[handle] = struct{}{}
	s.mu.Unlock()

	handle.Serve()

	s.mu.Lock()
	delete(s.conns, handle)
	s.mu.Unlock()

	if err := handle.Err(); err != nil {
		log.Printf("connection from %v closed: %v", netConn.RemoteAddr(), err)
	}
}

// PlayerInfos returns a snapshot of every connection that has completed
// login; connections still in Handshake/Status/Login carry no username yet
// and are left out.
func (s *Server) PlayerInfos() []sidechannel.PlayerInfo {
	s.mu.RLock()
	handles := make([]*conn.Handle, 0, len(s.conns))
	for h := range s.conns {
		handles = append(handles, h)
	}
	s.mu.RUnlock()

	infos := make([]sidechannel.PlayerInfo, 0, len(handles))
	for _, h := range handles {
		info := h.Info()
		username := info.Username()
		if username == "" {
			continue
		}
		infos = append(infos, sidechannel.PlayerInfo{
			Username: username,
			UUID:     info.UUID().String(),
			State:    info.State().String(),
			Position: info.Position(),
		})
	}
	return infos
}
