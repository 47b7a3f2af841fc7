package world_test

import (
	"testing"

	"github.com/go-mclib/mcserver/world"
)

func TestWorld_AbsentSectionReadsAsAir(t *testing.T) {
	w := world.New()
	got, err := w.Block(100, 100, 100)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if got != 0 {
		t.Errorf("Block in unloaded section = %d, want 0 (air)", got)
	}
}

func TestWorld_SetBlockCreatesSection(t *testing.T) {
	w := world.New()
	if err := w.SetBlock(20, 20, 20, 7); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}
	got, err := w.Block(20, 20, 20)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if got != 7 {
		t.Errorf("Block = %d, want 7", got)
	}

	coord := world.SectionCoordForBlock(20, 20, 20)
	if coord != (world.SectionCoord{X: 1, Y: 1, Z: 1}) {
		t.Errorf("SectionCoordForBlock(20,20,20) = %+v, want {1,1,1}", coord)
	}
}

func TestWorld_SectionCoordForBlock_NegativeFloorsCorrectly(t *testing.T) {
	cases := []struct {
		x, y, z int
		want    world.SectionCoord
	}{
		{-1, -1, -1, world.SectionCoord{X: -1, Y: -1, Z: -1}},
		{-16, -16, -16, world.SectionCoord{X: -1, Y: -1, Z: -1}},
		{-17, 0, 0, world.SectionCoord{X: -2, Y: 0, Z: 0}},
		{15, 0, 0, world.SectionCoord{X: 0, Y: 0, Z: 0}},
		{16, 0, 0, world.SectionCoord{X: 1, Y: 0, Z: 0}},
	}
	for _, tc := range cases {
		got := world.SectionCoordForBlock(tc.x, tc.y, tc.z)
		if got != tc.want {
			t.Errorf("SectionCoordForBlock(%d,%d,%d) = %+v, want %+v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}

func TestWorld_BlockLocalCoord_NegativeWrapsPositive(t *testing.T) {
	lx, ly, lz := world.BlockLocalCoord(-1, -1, -1)
	if lx != 15 || ly != 15 || lz != 15 {
		t.Errorf("BlockLocalCoord(-1,-1,-1) = (%d,%d,%d), want (15,15,15)", lx, ly, lz)
	}
}

func TestWorld_NewFlat_FillsLowestThreeSections(t *testing.T) {
	w, err := world.NewFlat(1, 9, 1)
	if err != nil {
		t.Fatalf("NewFlat: %v", err)
	}

	// section y index 0 maps to local sections[... y-4 ...]; the lowest
	// three filled sections sit at y=-4,-3,-2 per the reference fixture.
	for _, sy := range []int{-4, -3, -2} {
		s := w.Section(world.SectionCoord{X: 0, Y: sy, Z: 0})
		if s == nil {
			t.Fatalf("section at y=%d missing", sy)
		}
		if s.NonAirCount() == 0 {
			t.Errorf("section at y=%d expected to be filled", sy)
		}
	}

	above := w.Section(world.SectionCoord{X: 0, Y: 0, Z: 0})
	if above == nil {
		t.Fatal("section at y=0 missing")
	}
	if above.NonAirCount() != 0 {
		t.Errorf("section at y=0 expected empty, got NonAirCount=%d", above.NonAirCount())
	}
}

func TestWorld_PlayerPositionTracking(t *testing.T) {
	w := world.New()
	var id [16]byte
	id[0] = 0x42

	if _, ok := w.PlayerPosition(id); ok {
		t.Fatal("expected no position before SetPlayerPosition")
	}
	w.SetPlayerPosition(id, world.PlayerPosition{X: 1, Y: 2, Z: 3})
	pos, ok := w.PlayerPosition(id)
	if !ok || pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("PlayerPosition = %+v, ok=%v, want {1,2,3}, true", pos, ok)
	}
	w.RemovePlayer(id)
	if _, ok := w.PlayerPosition(id); ok {
		t.Error("expected position removed after RemovePlayer")
	}
}
