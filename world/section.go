// Package world holds the server's in-memory block and biome storage: chunk
// sections built on paletted containers, and a sparse map of sections keyed
// by chunk-section coordinate.
package world

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/palette"
)

const (
	sectionBlocks = 16 * 16 * 16
	airState      = 0
)

// Section is one 16x16x16 chunk section: a block palette, a biome palette,
// and the number of non-air blocks, maintained incrementally as blocks change.
type Section struct {
	blocks        *palette.Container
	biomes        *palette.Container
	nonAirCount   int
	blockEntities []ns.BlockEntity
}

// NewSection returns an empty, all-air section with the neutral biome.
func NewSection() *Section {
	return &Section{
		blocks: palette.NewBlocks(),
		biomes: palette.NewBiomes(),
	}
}

// Block returns the block state at the section-local position (0-15 each axis).
func (s *Section) Block(x, y, z int) (uint32, error) {
	idx, err := palette.Blocks.Index(x, y, z)
	if err != nil {
		return 0, fmt.Errorf("world: %w", err)
	}
	return s.blocks.Get(idx)
}

// SetBlock sets the block state at the section-local position, keeping the
// cached non-air count in sync.
func (s *Section) SetBlock(x, y, z int, state uint32) error {
	idx, err := palette.Blocks.Index(x, y, z)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	old, err := s.blocks.Get(idx)
	if err != nil {
		return err
	}
	if err := s.blocks.Set(idx, state); err != nil {
		return err
	}
	switch {
	case old == airState && state != airState:
		s.nonAirCount++
	case old != airState && state == airState:
		s.nonAirCount--
	}
	return nil
}

// Biome returns the biome id for the 4x4x4 biome-region-local position.
func (s *Section) Biome(x, y, z int) (uint32, error) {
	idx, err := palette.Biomes.Index(x, y, z)
	if err != nil {
		return 0, fmt.Errorf("world: %w", err)
	}
	return s.biomes.Get(idx)
}

// SetBiome sets the biome id for the 4x4x4 biome-region-local position.
func (s *Section) SetBiome(x, y, z int, biome uint32) error {
	idx, err := palette.Biomes.Index(x, y, z)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	return s.biomes.Set(idx, biome)
}

// Fill sets every block in the section to state.
func (s *Section) Fill(state uint32) error {
	for y := 0; y < 16; y++ {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				if err := s.SetBlock(x, y, z, state); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// NonAirCount returns the number of non-air blocks, as sent in the chunk
// section's leading i16 on the wire.
func (s *Section) NonAirCount() int { return s.nonAirCount }

// Blocks returns the block paletted container, for wire encoding.
func (s *Section) Blocks() *palette.Container { return s.blocks }

// Biomes returns the biome paletted container, for wire encoding.
func (s *Section) Biomes() *palette.Container { return s.biomes }

// BlockEntities returns the block entities anchored in this section.
func (s *Section) BlockEntities() []ns.BlockEntity { return s.blockEntities }

// AddBlockEntity appends a block entity to this section.
func (s *Section) AddBlockEntity(be ns.BlockEntity) {
	s.blockEntities = append(s.blockEntities, be)
}
