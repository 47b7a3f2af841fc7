package net_structures

import "fmt"

// RegistryTag is a named set of numeric registry IDs (e.g. a block tag).
type RegistryTag struct {
	Name String
	IDs  PrefixedArray[VarInt]
}

func (t *RegistryTag) Decode(buf *PacketBuffer) error {
	var err error
	if t.Name, err = buf.ReadString(32767); err != nil {
		return fmt.Errorf("failed to read tag name: %w", err)
	}
	return t.IDs.DecodeWith(buf, func(b *PacketBuffer) (VarInt, error) {
		return b.ReadVarInt()
	})
}

func (t *RegistryTag) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(t.Name); err != nil {
		return fmt.Errorf("failed to write tag name: %w", err)
	}
	return t.IDs.EncodeWith(buf, func(b *PacketBuffer, v VarInt) error {
		return b.WriteVarInt(v)
	})
}

// TagGroup groups registry tags under one registry identifier, e.g.
// "minecraft:block", "minecraft:item", "minecraft:fluid",
// "minecraft:entity_type", "minecraft:game_event".
type TagGroup struct {
	Registry Identifier
	Tags     PrefixedArray[RegistryTag]
}

func (g *TagGroup) Decode(buf *PacketBuffer) error {
	var err error
	if g.Registry, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("failed to read tag group registry: %w", err)
	}
	return g.Tags.DecodeWith(buf, func(b *PacketBuffer) (RegistryTag, error) {
		var t RegistryTag
		err := t.Decode(b)
		return t, err
	})
}

func (g *TagGroup) Encode(buf *PacketBuffer) error {
	if err := buf.WriteIdentifier(g.Registry); err != nil {
		return fmt.Errorf("failed to write tag group registry: %w", err)
	}
	return g.Tags.EncodeWith(buf, func(b *PacketBuffer, t RegistryTag) error {
		return t.Encode(b)
	})
}
