package world

import (
	"encoding/binary"
	"fmt"

	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/palette"
)

// Encode writes this section's wire representation:
//
//	Int16 nonAirBlockCount
//	PalettedContainer blocks
//	PalettedContainer biomes
func (s *Section) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt16(ns.Int16(int16(s.nonAirCount))); err != nil {
		return fmt.Errorf("failed to write non-air count: %w", err)
	}
	if err := encodeContainer(buf, s.blocks); err != nil {
		return fmt.Errorf("failed to write block container: %w", err)
	}
	if err := encodeContainer(buf, s.biomes); err != nil {
		return fmt.Errorf("failed to write biome container: %w", err)
	}
	return nil
}

// encodeContainer writes a paletted container: a single byte bits-per-entry,
// the palette (when indirect and more than one entry is registered), and the
// packed long array.
//
// When the palette holds exactly one value, bits-per-entry is written as 0
// and that single value is written as the palette, matching vanilla's
// single-valued shortcut; the packed array that follows is then empty.
func encodeContainer(buf *ns.PacketBuffer, c *palette.Container) error {
	if !c.IsDirect() && c.Palette().Len() == 1 {
		if err := buf.WriteUint8(0); err != nil {
			return err
		}
		if err := buf.WriteVarInt(ns.VarInt(c.Palette().Entries()[0])); err != nil {
			return err
		}
		return buf.WriteVarInt(0) // empty long array
	}

	if err := buf.WriteUint8(ns.Uint8(c.BitsPerValue())); err != nil {
		return err
	}

	if !c.IsDirect() {
		entries := c.Palette().Entries()
		if err := buf.WriteVarInt(ns.VarInt(len(entries))); err != nil {
			return err
		}
		for _, v := range entries {
			if err := buf.WriteVarInt(ns.VarInt(v)); err != nil {
				return err
			}
		}
	}

	words := c.Data().Words()
	if err := buf.WriteVarInt(ns.VarInt(len(words))); err != nil {
		return err
	}
	for _, w := range words {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], w)
		if _, err := buf.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}
