// Package protoerr distinguishes connection errors that must close the
// socket from ones a handler can recover from, mirroring the reference
// implementation's ProtError::is_fatal split.
package protoerr

import "fmt"

// Kind identifies which fatal condition a Fatal error represents.
type Kind int

const (
	// KindOther covers fatal conditions with no dedicated Kind below.
	KindOther Kind = iota
	KindInvalidNextState
	KindKeepAliveIDMismatch
	KindTeleportIDMismatch
	KindPositionOutOfBounds
	KindChannelClosed
)

// Fatal is a connection error that always closes the socket: the protocol
// invariant it represents can't be recovered from mid-stream.
type Fatal struct {
	Kind Kind
	msg  string
}

func (e *Fatal) Error() string { return e.msg }

// newFatal builds a Fatal with the given kind and formatted message.
func newFatal(kind Kind, format string, args ...any) *Fatal {
	return &Fatal{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// InvalidNextState reports a Handshake Next State field outside {1, 2}.
func InvalidNextState(state int32) error {
	return newFatal(KindInvalidNextState, "invalid next state: %d", state)
}

// KeepAliveIDMismatch reports a Keep Alive response whose id doesn't match
// the most recently sent nonce.
func KeepAliveIDMismatch(sent, got int64) error {
	return newFatal(KindKeepAliveIDMismatch, "keep alive id mismatch: sent %d, got %d", sent, got)
}

// TeleportIDMismatch reports a Confirm Teleportation packet whose id doesn't
// match the most recently sent teleport id.
func TeleportIDMismatch(sent, got int32) error {
	return newFatal(KindTeleportIDMismatch, "teleport id mismatch: sent %d, got %d", sent, got)
}

// PositionOutOfBounds reports a position outside a container's addressable
// range. Callers inside connection handlers should treat this as Fatal;
// the palette and world packages report the same condition as a plain,
// recoverable error instead (palette.Kind.Index returns one).
func PositionOutOfBounds(x, y, z int) error {
	return newFatal(KindPositionOutOfBounds, "position (%d,%d,%d) out of bounds", x, y, z)
}

// ChannelClosed reports that a connection's outbound channel was closed
// while a write was still pending.
func ChannelClosed() error {
	return newFatal(KindChannelClosed, "outbound channel closed")
}

// Other wraps a fatal condition with no dedicated Kind, e.g. a failed RSA
// decrypt or a verify-token mismatch during the login handshake.
func Other(format string, args ...any) error {
	return newFatal(KindOther, format, args...)
}

// UnknownPacket is a non-fatal error: an unrecognized packet id in a known
// state should be logged and dropped, not close the connection.
type UnknownPacket struct {
	ID    int32
	State string
}

func (e *UnknownPacket) Error() string {
	return fmt.Sprintf("unknown packet id 0x%02X in state %s", e.ID, e.State)
}

// IsFatal reports whether err should terminate the connection.
func IsFatal(err error) bool {
	_, ok := err.(*Fatal)
	return ok
}
