package conn

import (
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"time"

	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/packets"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/protoerr"
)

// keepAliveInterval is how often the heartbeat goroutine issues a fresh
// keepalive nonce. Vanilla allows up to 20 seconds of silence before
// disconnecting; 10 seconds leaves headroom for the round trip.
const keepAliveInterval = 10 * time.Second

// Handle is the single point of contact between the rest of the server and
// one live connection. Three goroutines share the ConnInfo it wraps: a
// reader that decodes frames and runs handlers, a writer that drains the
// outbound channel onto the socket, and a heartbeat that keeps the
// connection alive once it reaches Configuration. All three stop the
// moment any one of them hits a fatal error or the socket closes.
type Handle struct {
	info   *ConnInfo
	conn   *protocol.Conn
	assets *Assets

	outbound chan protocol.Packet
	done     chan struct{}
	closeErr error
}

// NewHandle wraps a freshly accepted net.Conn. Call Serve to run it; Serve
// blocks until the connection closes.
func NewHandle(netConn net.Conn, assets *Assets) *Handle {
	return &Handle{
		info:     NewConnInfo(),
		conn:     protocol.NewConn(netConn),
		assets:   assets,
		outbound: make(chan protocol.Packet, outboundCap),
		done:     make(chan struct{}),
	}
}

// Info returns the connection's mutable state, safe to read concurrently
// from any goroutine (e.g. an HTTP side-channel handler).
func (h *Handle) Info() *ConnInfo { return h.info }

// Serve runs the reader, writer, and heartbeat goroutines and blocks until
// the connection is closed, for any reason. It always closes the
// underlying socket before returning.
func (h *Handle) Serve() {
	defer h.conn.Close()
	defer h.info.Close()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.runWriter()
	}()

	heartbeatDone := make(chan struct{})
	go func() {
		defer close(heartbeatDone)
		h.runHeartbeat()
	}()

	h.runReader()

	h.closeConnection(nil)
	<-writerDone
	<-heartbeatDone
}

// closeConnection stops the writer and heartbeat goroutines. Safe to call
// more than once; only the first call's error sticks.
func (h *Handle) closeConnection(err error) {
	select {
	case <-h.done:
		return
	default:
	}
	h.closeErr = err
	close(h.done)
}

func (h *Handle) runReader() {
	remote := h.conn.RemoteAddr()
	for {
		wire, err := protocol.ReadWirePacketFrom(h.conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				debugf("conn %v: read error: %v", remote, err)
			}
			h.closeConnection(err)
			return
		}

		state := h.info.State()
		pkt, err := packets.Dispatch(wire.PacketID, state, ns.NewReader(wire.Data))
		if err != nil {
			if protoerr.IsFatal(err) {
				debugf("conn %v: dispatch error: %v", remote, err)
				h.closeConnection(err)
				return
			}
			// Unknown (id, state) pairs and payload parse failures (truncated
			// varint, bad UTF-8, unknown recipe kind, ...) don't desync the
			// socket: the frame was already fully read into a bounded buffer,
			// so skipping it and continuing is safe.
			debugf("conn %v: %v", remote, err)
			continue
		}

		debugf("conn %v: <- %T", remote, pkt)

		responses, err := route(pkt, h.info, h.conn, h.assets)
		if err != nil {
			if protoerr.IsFatal(err) {
				debugf("conn %v: handler error: %v", remote, err)
				h.closeConnection(err)
				return
			}
			debugf("conn %v: %v", remote, err)
			continue
		}

		for _, resp := range responses {
			select {
			case h.outbound <- resp:
			case <-h.done:
				return
			}
		}
	}
}

func (h *Handle) runWriter() {
	remote := h.conn.RemoteAddr()
	for {
		select {
		case pkt := <-h.outbound:
			debugf("conn %v: -> %T", remote, pkt)
			if err := protocol.WritePacket(h.conn, pkt); err != nil {
				debugf("conn %v: write error: %v", remote, err)
				h.closeConnection(err)
				return
			}
		case <-h.done:
			return
		}
	}
}

// runHeartbeat issues a keepalive once per interval while the connection is
// in Configuration or Play; the state-specific packet type is decided at
// send time since the two states don't share one.
func (h *Handle) runHeartbeat() {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			state := h.info.State()
			if state != protocol.StateConfiguration && state != protocol.StatePlay {
				continue
			}

			nonce := rand.Int64()
			h.info.SetKeepAliveID(nonce)

			var pkt protocol.Packet
			if state == protocol.StateConfiguration {
				pkt = &packets.ConfigurationKeepAlive{Payload: ns.Int64(nonce)}
			} else {
				pkt = &packets.PlayKeepAlive{Payload: ns.Int64(nonce)}
			}

			select {
			case h.outbound <- pkt:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// Err reports the error that closed this connection, if any.
func (h *Handle) Err() error { return h.closeErr }
