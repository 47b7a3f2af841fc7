// Package conn implements the per-connection state machine and the actor
// that drives it: one reader goroutine, one writer goroutine, and one
// heartbeat goroutine, all sharing a single ConnInfo behind a mutex and
// talking to each other through a bounded outbound channel.
package conn

import (
	"log"
	"os"
	"sync"

	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/world"
)

// outboundCap bounds the writer's inbox so a slow client can't let a fast
// handler pile up unbounded memory; a handler send blocks once full,
// which is the backpressure point (§5).
const outboundCap = 16

// ConnInfo is the mutable per-connection record. Every field is guarded by
// mu; callers must hold the appropriate lock before touching any of them.
// It mirrors the reference implementation's ConnectionInfo one field at a
// time: state, verify token, username/uuid, teleport id, keepalive id,
// closed flag, cached position.
type ConnInfo struct {
	mu sync.RWMutex

	state protocol.State

	verifyToken []byte
	username    string
	uuid        ns.UUID

	teleportID  ns.VarInt
	keepAliveID int64

	position world.PlayerPosition

	closed bool
}

// NewConnInfo returns a ConnInfo in the initial Handshake state.
func NewConnInfo() *ConnInfo {
	return &ConnInfo{
		state:       protocol.StateHandshake,
		verifyToken: []byte{0, 0, 0, 0},
	}
}

// State returns the current protocol state.
func (c *ConnInfo) State() protocol.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SetState advances the protocol state.
func (c *ConnInfo) SetState(s protocol.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// VerifyToken returns the token generated for this login attempt.
func (c *ConnInfo) VerifyToken() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verifyToken
}

// SetVerifyToken stores a freshly generated verify token.
func (c *ConnInfo) SetVerifyToken(token []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verifyToken = token
}

// Username returns the player's claimed username.
func (c *ConnInfo) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

// SetIdentity records the player's username and resolved uuid.
func (c *ConnInfo) SetIdentity(username string, uuid ns.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
	c.uuid = uuid
}

// UUID returns the player's resolved uuid.
func (c *ConnInfo) UUID() ns.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uuid
}

// TeleportID returns the last teleport id sent to the client.
func (c *ConnInfo) TeleportID() ns.VarInt {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.teleportID
}

// SetTeleportID records a freshly issued teleport id.
func (c *ConnInfo) SetTeleportID(id ns.VarInt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teleportID = id
}

// KeepAliveID returns the last keepalive nonce sent to the client.
func (c *ConnInfo) KeepAliveID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keepAliveID
}

// SetKeepAliveID records a freshly issued keepalive nonce.
func (c *ConnInfo) SetKeepAliveID(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keepAliveID = id
}

// Position returns the player's last known position and facing.
func (c *ConnInfo) Position() world.PlayerPosition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

// SetPosition updates the cached position.
func (c *ConnInfo) SetPosition(p world.PlayerPosition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

// Close marks this connection closed. Idempotent.
func (c *ConnInfo) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *ConnInfo) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

var logPackets = os.Getenv("LOG_PACKETS") == "true"

func logf(format string, args ...any) {
	log.Printf(format, args...)
}

func debugf(format string, args ...any) {
	if logPackets {
		logf(format, args...)
	}
}
