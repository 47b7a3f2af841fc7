package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// StatusRequest has no fields; receiving it triggers a StatusResponse.
type StatusRequest struct{}

func (p *StatusRequest) ID() ns.VarInt        { return 0x00 }
func (p *StatusRequest) State() protocol.State { return protocol.StateStatus }
func (p *StatusRequest) Bound() protocol.Bound { return protocol.C2S }
func (p *StatusRequest) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *StatusRequest) Write(buf *ns.PacketBuffer) error { return nil }

// PingRequest carries an opaque payload the server must echo back.
type PingRequest struct {
	Payload ns.Int64
}

func (p *PingRequest) ID() ns.VarInt        { return 0x01 }
func (p *PingRequest) State() protocol.State { return protocol.StateStatus }
func (p *PingRequest) Bound() protocol.Bound { return protocol.C2S }

func (p *PingRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *PingRequest) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
