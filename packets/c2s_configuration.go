package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// ClientInformation reports the client's locale and display preferences.
// None of it changes server behavior in this core; it's read and discarded.
type ClientInformation struct {
	Locale              ns.String
	ViewDistance        ns.Uint8
	ChatMode            ns.VarInt
	ChatColors          ns.Boolean
	DisplayedSkinParts  ns.Uint8
	MainHand            ns.VarInt
	EnableTextFiltering ns.Boolean
	AllowServerListings ns.Boolean
}

func (p *ClientInformation) ID() ns.VarInt        { return 0x00 }
func (p *ClientInformation) State() protocol.State { return protocol.StateConfiguration }
func (p *ClientInformation) Bound() protocol.Bound { return protocol.C2S }

func (p *ClientInformation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DisplayedSkinParts, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return err
	}
	p.AllowServerListings, err = buf.ReadBool()
	return err
}

func (p *ClientInformation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	return buf.WriteBool(p.AllowServerListings)
}

// ConfigurationFinishAck has no fields; it's the client's acknowledgement of
// ConfigurationFinish and advances the connection to Play.
type ConfigurationFinishAck struct{}

func (p *ConfigurationFinishAck) ID() ns.VarInt        { return 0x02 }
func (p *ConfigurationFinishAck) State() protocol.State { return protocol.StateConfiguration }
func (p *ConfigurationFinishAck) Bound() protocol.Bound { return protocol.C2S }
func (p *ConfigurationFinishAck) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *ConfigurationFinishAck) Write(buf *ns.PacketBuffer) error { return nil }

// ConfigurationKeepAliveResponse echoes the payload the server most
// recently sent in a ConfigurationKeepAlive.
type ConfigurationKeepAliveResponse struct {
	Payload ns.Int64
}

func (p *ConfigurationKeepAliveResponse) ID() ns.VarInt        { return 0x03 }
func (p *ConfigurationKeepAliveResponse) State() protocol.State { return protocol.StateConfiguration }
func (p *ConfigurationKeepAliveResponse) Bound() protocol.Bound { return protocol.C2S }

func (p *ConfigurationKeepAliveResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *ConfigurationKeepAliveResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
