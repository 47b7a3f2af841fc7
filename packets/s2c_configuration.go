package packets

import (
	"fmt"

	"github.com/go-mclib/mcserver/nbt"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// PluginMessage carries a channel identifier and an opaque payload. Sent
// clientbound on "minecraft:brand" during Configuration to announce the
// server implementation name. // supplemented
type PluginMessage struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (p *PluginMessage) ID() ns.VarInt        { return 0x01 }
func (p *PluginMessage) State() protocol.State { return protocol.StateConfiguration }
func (p *PluginMessage) Bound() protocol.Bound { return protocol.S2C }

func (p *PluginMessage) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = buf.ReadByteArray(1048576)
	return err
}

func (p *PluginMessage) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteByteArray(p.Data)
}

// ConfigurationFinish has no fields; it tells the client to reply with its
// own acknowledgement and move to Play.
type ConfigurationFinish struct{}

func (p *ConfigurationFinish) ID() ns.VarInt        { return 0x02 }
func (p *ConfigurationFinish) State() protocol.State { return protocol.StateConfiguration }
func (p *ConfigurationFinish) Bound() protocol.Bound { return protocol.S2C }
func (p *ConfigurationFinish) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *ConfigurationFinish) Write(buf *ns.PacketBuffer) error { return nil }

// ConfigurationKeepAlive carries a payload the client must echo back.
type ConfigurationKeepAlive struct {
	Payload ns.Int64
}

func (p *ConfigurationKeepAlive) ID() ns.VarInt        { return 0x03 }
func (p *ConfigurationKeepAlive) State() protocol.State { return protocol.StateConfiguration }
func (p *ConfigurationKeepAlive) Bound() protocol.Bound { return protocol.S2C }

func (p *ConfigurationKeepAlive) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *ConfigurationKeepAlive) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

// RegistryData carries the whole dimension-type/biome/damage-type registry
// bundle as a single NBT compound, built once at server startup and
// replayed verbatim to every connecting client (§6.1, §9).
type RegistryData struct {
	Data nbt.Compound
}

func (p *RegistryData) ID() ns.VarInt        { return 0x05 }
func (p *RegistryData) State() protocol.State { return protocol.StateConfiguration }
func (p *RegistryData) Bound() protocol.Bound { return protocol.S2C }

func (p *RegistryData) Read(buf *ns.PacketBuffer) error {
	r := nbt.NewReaderFrom(buf.Reader())
	tag, _, err := r.ReadTag(true)
	if err != nil {
		return fmt.Errorf("failed to read registry data: %w", err)
	}
	compound, ok := tag.(nbt.Compound)
	if !ok {
		return fmt.Errorf("registry data tag is not a compound")
	}
	p.Data = compound
	return nil
}

func (p *RegistryData) Write(buf *ns.PacketBuffer) error {
	w := nbt.NewWriterTo(buf.Writer())
	data := p.Data
	if data == nil {
		data = nbt.Compound{}
	}
	return w.WriteTag(data, "", true)
}
