package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// StatusResponse carries the server list ping JSON payload.
type StatusResponse struct {
	JSON ns.String
}

func (p *StatusResponse) ID() ns.VarInt        { return 0x00 }
func (p *StatusResponse) State() protocol.State { return protocol.StateStatus }
func (p *StatusResponse) Bound() protocol.Bound { return protocol.S2C }

func (p *StatusResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.JSON, err = buf.ReadString(32767)
	return err
}

func (p *StatusResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSON)
}

// PingResponse echoes the payload from a PingRequest verbatim.
type PingResponse struct {
	Payload ns.Int64
}

func (p *PingResponse) ID() ns.VarInt        { return 0x01 }
func (p *PingResponse) State() protocol.State { return protocol.StateStatus }
func (p *PingResponse) Bound() protocol.Bound { return protocol.S2C }

func (p *PingResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *PingResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
