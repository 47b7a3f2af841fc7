package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// LoginStart carries the player's chosen username. The 16 bytes that follow
// it on the wire (a client-supplied UUID, unused by the vanilla server) are
// consumed and ignored by Dispatch, not by this type, since they aren't part
// of the logical packet.
type LoginStart struct {
	Name ns.String
}

func (p *LoginStart) ID() ns.VarInt        { return 0x00 }
func (p *LoginStart) State() protocol.State { return protocol.StateLogin }
func (p *LoginStart) Bound() protocol.Bound { return protocol.C2S }

func (p *LoginStart) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Name, err = buf.ReadString(16)
	return err
}

func (p *LoginStart) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Name)
}

// EncryptionResponse carries the RSA-encrypted shared secret and verify
// token the client generated in response to EncryptionRequest.
type EncryptionResponse struct {
	SharedSecret ns.ByteArray
	VerifyToken  ns.ByteArray
}

func (p *EncryptionResponse) ID() ns.VarInt        { return 0x01 }
func (p *EncryptionResponse) State() protocol.State { return protocol.StateLogin }
func (p *EncryptionResponse) Bound() protocol.Bound { return protocol.C2S }

func (p *EncryptionResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.SharedSecret, err = buf.ReadByteArray(4096); err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(4096)
	return err
}

func (p *EncryptionResponse) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// LoginAcknowledged has no fields; it advances the connection to
// Configuration.
type LoginAcknowledged struct{}

func (p *LoginAcknowledged) ID() ns.VarInt        { return 0x03 }
func (p *LoginAcknowledged) State() protocol.State { return protocol.StateLogin }
func (p *LoginAcknowledged) Bound() protocol.Bound { return protocol.C2S }
func (p *LoginAcknowledged) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *LoginAcknowledged) Write(buf *ns.PacketBuffer) error { return nil }
