package net_structures

import "fmt"

// GameEvent codes, fixed by the protocol (0..12, excluding 5 which the
// protocol reserves with no corresponding client behavior).
const (
	GameEventNoRespawnBlockAvailable Uint8 = 0
	GameEventBeginRaining            Uint8 = 1
	GameEventEndRaining              Uint8 = 2
	GameEventChangeGameMode          Uint8 = 3
	GameEventWinGame                 Uint8 = 4
	GameEventDemoEvent               Uint8 = 6
	GameEventArrowHitPlayer          Uint8 = 7
	GameEventRainLevelChange         Uint8 = 8
	GameEventThunderLevelChange      Uint8 = 9
	GameEventPufferfishSting         Uint8 = 10
	GameEventElderGuardianMobAppear  Uint8 = 11
	GameEventEnableRespawnScreen     Uint8 = 12
)

// GameEvent is a one-byte event code plus an f32 parameter.
type GameEvent struct {
	Event Uint8
	Value Float32
}

// Decode reads a GameEvent from the buffer.
func (g *GameEvent) Decode(buf *PacketBuffer) error {
	var err error
	if g.Event, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("failed to read game event code: %w", err)
	}
	g.Value, err = buf.ReadFloat32()
	if err != nil {
		return fmt.Errorf("failed to read game event value: %w", err)
	}
	return nil
}

// Encode writes a GameEvent to the buffer.
func (g *GameEvent) Encode(buf *PacketBuffer) error {
	if err := buf.WriteUint8(g.Event); err != nil {
		return fmt.Errorf("failed to write game event code: %w", err)
	}
	if err := buf.WriteFloat32(g.Value); err != nil {
		return fmt.Errorf("failed to write game event value: %w", err)
	}
	return nil
}
