// The `protocol` package contains the core structs and functions for working with the
// Java Edition protocol (server side, protocol 764 / 1.20.2).
//
// > The Minecraft server accepts connections from TCP clients and communicates with
// them using packets. A packet is a sequence of bytes sent over the TCP connection.
// The meaning of a packet depends both on its packet ID and the current state of the
// connection (each state has its own packet ID counter, so packets in different
// states can have the same packet ID). The initial state of each connection is
// Handshake, and state is switched by the Handshake, Login Success, and
// Finish Configuration packets.
//
// Packet format (no compression in this protocol version's handshake/login/play
// flow used here):
//
//	VarInt length = size(id) + len(payload)
//	VarInt id
//	payload
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
package protocol

import (
	"fmt"
	"io"

	ns "github.com/go-mclib/mcserver/net_structures"
)

// Packet is the interface that all typed packet implementations must satisfy.
// Each packet knows its ID, protocol state, and direction.
type Packet interface {
	// ID returns the packet ID for this packet type.
	ID() ns.VarInt
	// State returns the protocol state this packet belongs to.
	State() State
	// Bound returns the direction of this packet (C2S or S2C).
	Bound() Bound
	// Read deserializes the packet data from the buffer.
	Read(buf *ns.PacketBuffer) error
	// Write serializes the packet data to the buffer.
	Write(buf *ns.PacketBuffer) error
}

// State is the phase that the connection is in (handshake, status, login,
// configuration, play). This is not sent over the network; state is advanced by
// specific packets (§4.4.1).
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StateConfiguration:
		return "configuration"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Bound is the direction a packet travels.
//
// Serverbound: Client -> Server (C2S)
//
// Clientbound: Server -> Client (S2C)
type Bound uint8

const (
	// C2S is client -> server (serverbound).
	C2S Bound = iota
	// S2C is server -> client (clientbound).
	S2C
)

// WirePacket is the raw packet as it appears on the wire: a packet id plus the
// undecoded payload bytes.
type WirePacket struct {
	PacketID ns.VarInt
	Data     ns.ByteArray
}

// maxPacketLength bounds the declared frame length so a corrupt or hostile peer
// can't force an unbounded allocation.
const maxPacketLength = 2 * 1024 * 1024

// ReadWirePacketFrom reads one WirePacket from r.
//
// If r wraps an active decrypter (a *Conn with encryption enabled), the length
// VarInt is naturally read one byte at a time through the decrypter, and the
// declared number of following bytes are then read (and, transparently,
// decrypted) before the id and payload are parsed out of them, exactly as §4.1.2
// requires.
func ReadWirePacketFrom(r io.Reader) (*WirePacket, error) {
	length, err := ns.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read packet length: %w", err)
	}
	if length < 0 || int(length) > maxPacketLength {
		return nil, fmt.Errorf("packet length %d out of bounds", length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read packet data: %w", err)
	}

	buf := ns.NewReader(data)
	packetID, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read packet ID: %w", err)
	}

	remaining, err := io.ReadAll(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read remaining data: %w", err)
	}

	return &WirePacket{PacketID: packetID, Data: remaining}, nil
}

// WriteTo serializes the WirePacket with the standard length-prefixed framing and
// writes it to w in a single Write call, so a connection with an active encrypter
// transforms the whole frame atomically (§4.1.2 step 3).
func (w *WirePacket) WriteTo(writer io.Writer) error {
	idBytes, err := w.PacketID.ToBytes()
	if err != nil {
		return fmt.Errorf("failed to encode packet id: %w", err)
	}

	payload := make([]byte, 0, len(idBytes)+len(w.Data))
	payload = append(payload, idBytes...)
	payload = append(payload, w.Data...)

	lengthBytes, err := ns.VarInt(len(payload)).ToBytes()
	if err != nil {
		return fmt.Errorf("failed to encode packet length: %w", err)
	}

	frame := make([]byte, 0, len(lengthBytes)+len(payload))
	frame = append(frame, lengthBytes...)
	frame = append(frame, payload...)

	_, err = writer.Write(frame)
	return err
}

// ReadInto deserializes the wire packet's raw data into a typed Packet. Returns an
// error if the packet ID doesn't match.
func (w *WirePacket) ReadInto(p Packet) error {
	if w == nil {
		return fmt.Errorf("nil wire packet")
	}
	if w.PacketID != p.ID() {
		return fmt.Errorf("packet ID mismatch: expected 0x%02X, got 0x%02X", p.ID(), w.PacketID)
	}
	buf := ns.NewReader(w.Data)
	return p.Read(buf)
}

// ReadPacket deserializes a WirePacket into a typed Packet using generics, without
// manual type assertions.
func ReadPacket[T any, PT interface {
	*T
	Packet
}](wire *WirePacket) (PT, error) {
	p := new(T)
	pt := PT(p)
	if err := wire.ReadInto(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// ToWire serializes a typed Packet to a WirePacket. The "encoded_size" of a packet
// (§4.1) is simply len(wire.Data) + size(wire.PacketID) after this call, the same
// write-then-measure strategy the codec uses throughout.
func ToWire(p Packet) (*WirePacket, error) {
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to serialize packet data: %w", err)
	}
	return &WirePacket{
		PacketID: p.ID(),
		Data:     buf.Bytes(),
	}, nil
}

// WritePacket serializes and writes p to writer in one step.
func WritePacket(writer io.Writer, p Packet) error {
	wire, err := ToWire(p)
	if err != nil {
		return err
	}
	return wire.WriteTo(writer)
}
