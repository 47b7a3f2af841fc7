// Package palette implements the paletted container used to store a chunk
// section's block states and biomes: a palette of distinct values backed by
// a packed bit array, promoting to wider indirect widths and finally to a
// direct (palette-less) encoding as the number of distinct values grows.
package palette

import (
	"fmt"

	"github.com/go-mclib/mcserver/bitarray"
)

// Kind distinguishes the two paletted container shapes used by a chunk
// section. They differ in grid size, bit-width thresholds, and neutral value.
type Kind uint8

const (
	Blocks Kind = iota
	Biomes
)

const (
	blockEdge   = 16
	blockLength = blockEdge * blockEdge * blockEdge // 4096

	biomeEdge   = 4
	biomeLength = biomeEdge * biomeEdge * biomeEdge // 64

	minBitsBlocks    = 4
	maxBitsBlocks    = 8
	globalBitsBlocks = 15

	minBitsBiomes    = 1
	maxBitsBiomes    = 3
	globalBitsBiomes = 6

	neutralBlock = 0 // air
	neutralBiome = 39
)

func (k Kind) edge() int {
	if k == Biomes {
		return biomeEdge
	}
	return blockEdge
}

func (k Kind) length() int {
	if k == Biomes {
		return biomeLength
	}
	return blockLength
}

// Length returns the number of cells a container of this kind holds (4096
// for blocks, 64 for biomes).
func (k Kind) Length() int { return k.length() }

func (k Kind) minBits() int {
	if k == Biomes {
		return minBitsBiomes
	}
	return minBitsBlocks
}

func (k Kind) maxIndirectBits() int {
	if k == Biomes {
		return maxBitsBiomes
	}
	return maxBitsBlocks
}

func (k Kind) globalBits() int {
	if k == Biomes {
		return globalBitsBiomes
	}
	return globalBitsBlocks
}

func (k Kind) neutral() uint32 {
	if k == Biomes {
		return neutralBiome
	}
	return neutralBlock
}

// Index converts a local (x, y, z) position (block-relative for Blocks, in
// 4x4x4 regions for Biomes) into the flat index used by the packed array.
func (k Kind) Index(x, y, z int) (int, error) {
	edge := k.edge()
	if x < 0 || y < 0 || z < 0 || x >= edge || y >= edge || z >= edge {
		return 0, fmt.Errorf("palette: position (%d,%d,%d) out of bounds for edge %d", x, y, z, edge)
	}
	if k == Biomes {
		return (y << 4) | (z << 2) | x, nil
	}
	return (y << 8) | (z << 4) | x, nil
}

// Palette maps small indirect ids to global state/biome ids, preserving
// insertion order: id 0 holds the kind's neutral value from construction,
// and each new value written takes the next free id.
type Palette struct {
	kind    Kind
	idToVal []uint32
	valToID map[uint32]uint32
}

func newPalette(kind Kind) *Palette {
	neutral := kind.neutral()
	return &Palette{
		kind:    kind,
		idToVal: []uint32{neutral},
		valToID: map[uint32]uint32{neutral: 0},
	}
}

// IndexOrInsert returns the id for value, inserting it at the next free id
// if it hasn't been seen before.
func (p *Palette) IndexOrInsert(value uint32) uint32 {
	if id, ok := p.valToID[value]; ok {
		return id
	}
	id := uint32(len(p.idToVal))
	p.idToVal = append(p.idToVal, value)
	p.valToID[value] = id
	return id
}

// Value returns the global value for a palette id, or the kind's neutral
// value if id is unknown.
func (p *Palette) Value(id uint32) uint32 {
	if int(id) < len(p.idToVal) {
		return p.idToVal[id]
	}
	return p.kind.neutral()
}

// Len returns the number of distinct values currently in the palette.
func (p *Palette) Len() int { return len(p.idToVal) }

// Entries returns the palette values in id order, suitable for wire encoding.
func (p *Palette) Entries() []uint32 {
	out := make([]uint32, len(p.idToVal))
	copy(out, p.idToVal)
	return out
}

// Container is a paletted container: a packed array of either palette ids
// (indirect mode, Palette != nil) or global values directly (direct mode,
// Palette == nil).
type Container struct {
	kind    Kind
	palette *Palette
	data    *bitarray.Array
}

// NewBlocks returns an empty block-state container, filled with air.
func NewBlocks() *Container {
	return newContainer(Blocks)
}

// NewBiomes returns an empty biome container, filled with the neutral biome.
func NewBiomes() *Container {
	return newContainer(Biomes)
}

func newContainer(kind Kind) *Container {
	return &Container{
		kind:    kind,
		palette: newPalette(kind),
		data:    bitarray.New(kind.length(), kind.minBits()),
	}
}

// Kind returns the container's kind.
func (c *Container) Kind() Kind { return c.kind }

// IsDirect reports whether the container has promoted past its palette into
// direct (global id) encoding.
func (c *Container) IsDirect() bool { return c.palette == nil }

// BitsPerValue returns the packed array's current bit width.
func (c *Container) BitsPerValue() int { return c.data.BitsPerValue() }

// Data returns the underlying packed array, for wire encoding.
func (c *Container) Data() *bitarray.Array { return c.data }

// Palette returns the indirect palette, or nil in direct mode.
func (c *Container) Palette() *Palette { return c.palette }

// Get returns the global value (block state or biome id) at index.
func (c *Container) Get(index int) (uint32, error) {
	raw, err := c.data.Get(index)
	if err != nil {
		return 0, err
	}
	if c.palette == nil {
		return uint32(raw), nil
	}
	return c.palette.Value(uint32(raw)), nil
}

// Set writes the global value at index, growing the palette bit width or
// promoting to direct encoding as needed.
func (c *Container) Set(index int, value uint32) error {
	var stored uint64
	if c.palette != nil {
		id := c.palette.IndexOrInsert(value)
		if c.maybePromote() {
			stored = uint64(value)
		} else {
			stored = uint64(id)
		}
	} else {
		stored = uint64(value)
	}
	return c.data.Set(index, stored)
}

// maybePromote grows the packed array's bit width when the palette has
// outgrown it, switching to direct encoding if the indirect width cap is
// exceeded. Returns true if the container is now direct.
func (c *Container) maybePromote() bool {
	if c.palette.Len()-1 <= int(c.data.MaxValue()) {
		return false
	}

	newBits := c.data.BitsPerValue() + 1
	if newBits > c.kind.maxIndirectBits() {
		widened := c.data.Resized(c.kind.globalBits())
		rewritten := bitarray.New(c.kind.length(), c.kind.globalBits())
		for i := 0; i < c.kind.length(); i++ {
			paletteID, _ := widened.Get(i)
			_ = rewritten.Set(i, uint64(c.palette.Value(uint32(paletteID))))
		}
		c.data = rewritten
		c.palette = nil
		return true
	}

	c.data = c.data.Resized(newBits)
	return false
}
