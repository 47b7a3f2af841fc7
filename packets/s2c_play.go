package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// BlockUpdate announces a single block change. Nothing in this core sends
// it: world.World.SetBlock changes the block without producing a
// BlockUpdate, and no connection handler emits one.
type BlockUpdate struct {
	Location ns.Position
	BlockID  ns.VarInt
}

func (p *BlockUpdate) ID() ns.VarInt        { return 0x09 }
func (p *BlockUpdate) State() protocol.State { return protocol.StatePlay }
func (p *BlockUpdate) Bound() protocol.Bound { return protocol.S2C }

func (p *BlockUpdate) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Location, err = buf.ReadPosition(); err != nil {
		return err
	}
	p.BlockID, err = buf.ReadVarInt()
	return err
}

func (p *BlockUpdate) Write(buf *ns.PacketBuffer) error {
	if err := buf.WritePosition(p.Location); err != nil {
		return err
	}
	return buf.WriteVarInt(p.BlockID)
}

// SendGameEvent notifies the client of a world-level event (weather change,
// game-mode change, respawn-screen enable, and so on).
type SendGameEvent struct {
	Event ns.GameEvent
}

func (p *SendGameEvent) ID() ns.VarInt        { return 0x20 }
func (p *SendGameEvent) State() protocol.State { return protocol.StatePlay }
func (p *SendGameEvent) Bound() protocol.Bound { return protocol.S2C }

func (p *SendGameEvent) Read(buf *ns.PacketBuffer) error {
	return p.Event.Decode(buf)
}

func (p *SendGameEvent) Write(buf *ns.PacketBuffer) error {
	return p.Event.Encode(buf)
}

// PlayKeepAlive carries a payload the client must echo back within the
// keepalive window; a missing or mismatched reply is fatal to the
// connection.
type PlayKeepAlive struct {
	Payload ns.Int64
}

func (p *PlayKeepAlive) ID() ns.VarInt        { return 0x24 }
func (p *PlayKeepAlive) State() protocol.State { return protocol.StatePlay }
func (p *PlayKeepAlive) Bound() protocol.Bound { return protocol.S2C }

func (p *PlayKeepAlive) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *PlayKeepAlive) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

// ChunkDataAndUpdateLight carries one full chunk column plus its lighting.
// SkyLightMask/BlockLightMask/EmptySkyLightMask/EmptyBlockLightMask are the
// four bitsets distinguishing sections with light data from sections
// known to be fully lit or fully dark.
type ChunkDataAndUpdateLight struct {
	ChunkX, ChunkZ ns.Int32
	Chunk          ns.ChunkData
	Light          ns.LightData
}

func (p *ChunkDataAndUpdateLight) ID() ns.VarInt        { return 0x25 }
func (p *ChunkDataAndUpdateLight) State() protocol.State { return protocol.StatePlay }
func (p *ChunkDataAndUpdateLight) Bound() protocol.Bound { return protocol.S2C }

func (p *ChunkDataAndUpdateLight) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ChunkX, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.ChunkZ, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.Chunk, err = buf.ReadChunkData(); err != nil {
		return err
	}
	p.Light, err = buf.ReadLightData()
	return err
}

func (p *ChunkDataAndUpdateLight) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.ChunkX); err != nil {
		return err
	}
	if err := buf.WriteInt32(p.ChunkZ); err != nil {
		return err
	}
	if err := buf.WriteChunkData(p.Chunk); err != nil {
		return err
	}
	return buf.WriteLightData(p.Light)
}

// PlayLogin is the first Play-state packet, sent once right after the
// client acknowledges ConfigurationFinish. It establishes the player's
// entity id, the dimension/world it spawns into, and game-rule-ish flags.
type PlayLogin struct {
	EntityID             ns.Int32
	IsHardcore           ns.Boolean
	DimensionNames       ns.PrefixedArray[ns.Identifier]
	MaxPlayers           ns.VarInt
	ViewDistance         ns.VarInt
	SimulationDistance   ns.VarInt
	ReducedDebugInfo     ns.Boolean
	EnableRespawnScreen  ns.Boolean
	DoLimitedCrafting    ns.Boolean
	DimensionType        ns.Identifier
	DimensionName        ns.Identifier
	HashedSeed           ns.Int64
	GameMode             ns.Uint8
	PreviousGameMode     ns.Int8
	IsDebug              ns.Boolean
	IsFlat               ns.Boolean
	DeathLocation        ns.PrefixedOptional[DeathLocation]
	PortalCooldown       ns.VarInt
}

// DeathLocation pairs a dimension identifier with a position, sent only
// when the player has a recorded death location to return to.
type DeathLocation struct {
	Dimension ns.Identifier
	Location  ns.Position
}

func (p *PlayLogin) ID() ns.VarInt        { return 0x29 }
func (p *PlayLogin) State() protocol.State { return protocol.StatePlay }
func (p *PlayLogin) Bound() protocol.Bound { return protocol.S2C }

func (p *PlayLogin) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.IsHardcore, err = buf.ReadBool(); err != nil {
		return err
	}
	if err = p.DimensionNames.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.Identifier, error) {
		return b.ReadIdentifier()
	}); err != nil {
		return err
	}
	if p.MaxPlayers, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SimulationDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ReducedDebugInfo, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.EnableRespawnScreen, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DoLimitedCrafting, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DimensionType, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	if p.DimensionName, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return err
	}
	if err = p.DeathLocation.DecodeWith(buf, func(b *ns.PacketBuffer) (DeathLocation, error) {
		var d DeathLocation
		var derr error
		if d.Dimension, derr = b.ReadIdentifier(); derr != nil {
			return d, derr
		}
		d.Location, derr = b.ReadPosition()
		return d, derr
	}); err != nil {
		return err
	}
	p.PortalCooldown, err = buf.ReadVarInt()
	return err
}

func (p *PlayLogin) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return err
	}
	if err := p.DimensionNames.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.Identifier) error {
		return b.WriteIdentifier(v)
	}); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := buf.WriteBool(p.DoLimitedCrafting); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.DimensionType); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return err
	}
	if err := p.DeathLocation.EncodeWith(buf, func(b *ns.PacketBuffer, d DeathLocation) error {
		if err := b.WriteIdentifier(d.Dimension); err != nil {
			return err
		}
		return b.WritePosition(d.Location)
	}); err != nil {
		return err
	}
	return buf.WriteVarInt(p.PortalCooldown)
}

// PlayerAbilities is sent once on entering Play. This core never grants
// flight, so Flags is always 0 and the speed/fov fields carry vanilla
// defaults. // supplemented
type PlayerAbilities struct {
	Flags       ns.Uint8
	FlyingSpeed ns.Float32
	FOVModifier ns.Float32
}

func (p *PlayerAbilities) ID() ns.VarInt        { return 0x37 }
func (p *PlayerAbilities) State() protocol.State { return protocol.StatePlay }
func (p *PlayerAbilities) Bound() protocol.Bound { return protocol.S2C }

func (p *PlayerAbilities) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Flags, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.FlyingSpeed, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.FOVModifier, err = buf.ReadFloat32()
	return err
}

func (p *PlayerAbilities) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return err
	}
	return buf.WriteFloat32(p.FOVModifier)
}

// SynchronizePlayerPosition forces the client to a server-authoritative
// position; the client must answer with ConfirmTeleportation carrying the
// same TeleportID.
type SynchronizePlayerPosition struct {
	X, Y, Z    ns.Float64
	Yaw, Pitch ns.Float32
	Flags      ns.Uint8
	TeleportID ns.VarInt
}

func (p *SynchronizePlayerPosition) ID() ns.VarInt        { return 0x3e }
func (p *SynchronizePlayerPosition) State() protocol.State { return protocol.StatePlay }
func (p *SynchronizePlayerPosition) Bound() protocol.Bound { return protocol.S2C }

func (p *SynchronizePlayerPosition) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Flags, err = buf.ReadUint8(); err != nil {
		return err
	}
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *SynchronizePlayerPosition) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	return buf.WriteVarInt(p.TeleportID)
}

// SetHeldItem sets the client's selected hotbar slot (0-8).
type SetHeldItem struct {
	Slot ns.Uint8
}

func (p *SetHeldItem) ID() ns.VarInt        { return 0x4f }
func (p *SetHeldItem) State() protocol.State { return protocol.StatePlay }
func (p *SetHeldItem) Bound() protocol.Bound { return protocol.S2C }

func (p *SetHeldItem) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Slot, err = buf.ReadUint8()
	return err
}

func (p *SetHeldItem) Write(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(p.Slot)
}

// SetCenterChunk tells the client which chunk column the server considers
// the center of its view, driving chunk unload ordering client-side.
type SetCenterChunk struct {
	ChunkX, ChunkZ ns.VarInt
}

func (p *SetCenterChunk) ID() ns.VarInt        { return 0x50 }
func (p *SetCenterChunk) State() protocol.State { return protocol.StatePlay }
func (p *SetCenterChunk) Bound() protocol.Bound { return protocol.S2C }

func (p *SetCenterChunk) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ChunkX, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.ChunkZ, err = buf.ReadVarInt()
	return err
}

func (p *SetCenterChunk) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ChunkX); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ChunkZ)
}

// SetDefaultSpawnPosition marks the compass/respawn point.
type SetDefaultSpawnPosition struct {
	Location ns.Position
	Angle    ns.Float32
}

func (p *SetDefaultSpawnPosition) ID() ns.VarInt        { return 0x52 }
func (p *SetDefaultSpawnPosition) State() protocol.State { return protocol.StatePlay }
func (p *SetDefaultSpawnPosition) Bound() protocol.Bound { return protocol.S2C }

func (p *SetDefaultSpawnPosition) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Location, err = buf.ReadPosition(); err != nil {
		return err
	}
	p.Angle, err = buf.ReadFloat32()
	return err
}

func (p *SetDefaultSpawnPosition) Write(buf *ns.PacketBuffer) error {
	if err := buf.WritePosition(p.Location); err != nil {
		return err
	}
	return buf.WriteFloat32(p.Angle)
}

// UpdateRecipes replays the server's full recipe book once, right after
// PlayerSession.
type UpdateRecipes struct {
	Recipes ns.PrefixedArray[ns.Recipe]
}

func (p *UpdateRecipes) ID() ns.VarInt        { return 0x6f }
func (p *UpdateRecipes) State() protocol.State { return protocol.StatePlay }
func (p *UpdateRecipes) Bound() protocol.Bound { return protocol.S2C }

func (p *UpdateRecipes) Read(buf *ns.PacketBuffer) error {
	return p.Recipes.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.Recipe, error) {
		var r ns.Recipe
		err := r.Decode(b)
		return r, err
	})
}

func (p *UpdateRecipes) Write(buf *ns.PacketBuffer) error {
	return p.Recipes.EncodeWith(buf, func(b *ns.PacketBuffer, r ns.Recipe) error {
		return r.Encode(b)
	})
}

// UpdateTags replays the registry tag groups (blocks, items, fluids,
// entity types, game events) the client needs to resolve tag references.
type UpdateTags struct {
	TagGroups ns.PrefixedArray[ns.TagGroup]
}

func (p *UpdateTags) ID() ns.VarInt        { return 0x70 }
func (p *UpdateTags) State() protocol.State { return protocol.StatePlay }
func (p *UpdateTags) Bound() protocol.Bound { return protocol.S2C }

func (p *UpdateTags) Read(buf *ns.PacketBuffer) error {
	return p.TagGroups.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.TagGroup, error) {
		var g ns.TagGroup
		err := g.Decode(b)
		return g, err
	})
}

func (p *UpdateTags) Write(buf *ns.PacketBuffer) error {
	return p.TagGroups.EncodeWith(buf, func(b *ns.PacketBuffer, g ns.TagGroup) error {
		return g.Encode(b)
	})
}
