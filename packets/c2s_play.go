package packets

import (
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
)

// ConfirmTeleportation acknowledges a SynchronizePlayerPosition by echoing
// back its teleport id.
type ConfirmTeleportation struct {
	TeleportID ns.VarInt
}

func (p *ConfirmTeleportation) ID() ns.VarInt        { return 0x00 }
func (p *ConfirmTeleportation) State() protocol.State { return protocol.StatePlay }
func (p *ConfirmTeleportation) Bound() protocol.Bound { return protocol.C2S }

func (p *ConfirmTeleportation) Read(buf *ns.PacketBuffer) error {
	var err error
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *ConfirmTeleportation) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

// PlayerSession carries the player's Mojang-signed chat session public key.
// This core has no chat-signature verification, so the payload is read and
// discarded.
type PlayerSession struct {
	SessionID           ns.UUID
	PublicKeyExpiresAt  ns.Int64
	PublicKey           ns.ByteArray
	KeySignature        ns.ByteArray
}

func (p *PlayerSession) ID() ns.VarInt        { return 0x06 }
func (p *PlayerSession) State() protocol.State { return protocol.StatePlay }
func (p *PlayerSession) Bound() protocol.Bound { return protocol.C2S }

func (p *PlayerSession) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.SessionID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.PublicKeyExpiresAt, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(512); err != nil {
		return err
	}
	p.KeySignature, err = buf.ReadByteArray(4096)
	return err
}

func (p *PlayerSession) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.SessionID); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.PublicKeyExpiresAt); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return buf.WriteByteArray(p.KeySignature)
}

// PlayKeepAliveResponse echoes the payload the server most recently sent; a
// mismatch or a missed reply is fatal to the connection.
type PlayKeepAliveResponse struct {
	Payload ns.Int64
}

func (p *PlayKeepAliveResponse) ID() ns.VarInt        { return 0x14 }
func (p *PlayKeepAliveResponse) State() protocol.State { return protocol.StatePlay }
func (p *PlayKeepAliveResponse) Bound() protocol.Bound { return protocol.C2S }

func (p *PlayKeepAliveResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *PlayKeepAliveResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

// SetPlayerPosition updates the player's cached position.
type SetPlayerPosition struct {
	X, Y, Z  ns.Float64
	OnGround ns.Boolean
}

func (p *SetPlayerPosition) ID() ns.VarInt        { return 0x16 }
func (p *SetPlayerPosition) State() protocol.State { return protocol.StatePlay }
func (p *SetPlayerPosition) Bound() protocol.Bound { return protocol.C2S }

func (p *SetPlayerPosition) Read(buf *ns.PacketBuffer) error {
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
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *SetPlayerPosition) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// SetPlayerPositionAndRotation updates both cached position and rotation.
type SetPlayerPositionAndRotation struct {
	X, Y, Z         ns.Float64
	Yaw, Pitch      ns.Float32
	OnGround        ns.Boolean
}

func (p *SetPlayerPositionAndRotation) ID() ns.VarInt        { return 0x17 }
func (p *SetPlayerPositionAndRotation) State() protocol.State { return protocol.StatePlay }
func (p *SetPlayerPositionAndRotation) Bound() protocol.Bound { return protocol.C2S }

func (p *SetPlayerPositionAndRotation) Read(buf *ns.PacketBuffer) error {
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
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *SetPlayerPositionAndRotation) Write(buf *ns.PacketBuffer) error {
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
	return buf.WriteBool(p.OnGround)
}

// SetPlayerRotation updates the player's cached facing only.
type SetPlayerRotation struct {
	Yaw, Pitch ns.Float32
	OnGround   ns.Boolean
}

func (p *SetPlayerRotation) ID() ns.VarInt        { return 0x18 }
func (p *SetPlayerRotation) State() protocol.State { return protocol.StatePlay }
func (p *SetPlayerRotation) Bound() protocol.Bound { return protocol.C2S }

func (p *SetPlayerRotation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *SetPlayerRotation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// PlayerCommand actions (sneak start/stop, sprint start/stop, leave bed,
// jump-with-horse, open-horse-inventory, elytra flying start).
type PlayerCommand struct {
	EntityID ns.VarInt
	ActionID ns.VarInt
	JumpBoost ns.VarInt
}

func (p *PlayerCommand) ID() ns.VarInt        { return 0x21 }
func (p *PlayerCommand) State() protocol.State { return protocol.StatePlay }
func (p *PlayerCommand) Bound() protocol.Bound { return protocol.C2S }

func (p *PlayerCommand) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ActionID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.JumpBoost, err = buf.ReadVarInt()
	return err
}

func (p *PlayerCommand) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ActionID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.JumpBoost)
}
