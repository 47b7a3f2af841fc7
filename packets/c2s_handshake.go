package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// Handshake is the first packet any connection sends; it picks the next
// protocol state and carries the client's declared protocol version.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
type Handshake struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	NextState       ns.VarInt
}

func (p *Handshake) ID() ns.VarInt        { return 0x00 }
func (p *Handshake) State() protocol.State { return protocol.StateHandshake }
func (p *Handshake) Bound() protocol.Bound { return protocol.C2S }

func (p *Handshake) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return err
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return err
	}
	p.NextState, err = buf.ReadVarInt()
	return err
}

func (p *Handshake) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(p.NextState)
}

// Handshake next-state values (§4.4.1).
const (
	NextStateStatus ns.VarInt = 1
	NextStateLogin  ns.VarInt = 2
)
