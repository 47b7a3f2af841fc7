package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// EncryptionRequest starts the online-mode encryption handshake. ServerID is
// always the empty string in the vanilla protocol; PublicKey is the DER
// encoding of the server's RSA public key; VerifyToken is a random nonce the
// client must echo back decrypted.
type EncryptionRequest struct {
	ServerID   ns.String
	PublicKey  ns.ByteArray
	VerifyToken ns.ByteArray
}

func (p *EncryptionRequest) ID() ns.VarInt        { return 0x01 }
func (p *EncryptionRequest) State() protocol.State { return protocol.StateLogin }
func (p *EncryptionRequest) Bound() protocol.Bound { return protocol.S2C }

func (p *EncryptionRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ServerID, err = buf.ReadString(20); err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(4096); err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(4096)
	return err
}

func (p *EncryptionRequest) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// LoginSuccess ends the login sequence with the player's resolved profile.
// The client answers with LoginAcknowledged, advancing to Configuration.
type LoginSuccess struct {
	Profile ns.GameProfile
}

func (p *LoginSuccess) ID() ns.VarInt        { return 0x02 }
func (p *LoginSuccess) State() protocol.State { return protocol.StateLogin }
func (p *LoginSuccess) Bound() protocol.Bound { return protocol.S2C }

func (p *LoginSuccess) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Profile, err = buf.ReadGameProfile()
	return err
}

func (p *LoginSuccess) Write(buf *ns.PacketBuffer) error {
	return buf.WriteGameProfile(p.Profile)
}
