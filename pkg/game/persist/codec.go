// Package persist saves the player and the active mission as fixed-size
// little-endian blobs.
package persist

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

var (
	ErrNotFound  = errors.New("blob not found")
	ErrShortBlob = errors.New("blob has the wrong size")
	ErrCorrupt   = errors.New("blob holds invalid values")
)

// PlayerBlobSize is position (2×int16), direction, six stats, money (int32)
// and the vibration flag.
const PlayerBlobSize = 4 + 2 + 2*int(state.NumStats) + 4 + 1

type playerRecord struct {
	X, Y        int16
	Direction   int16
	Stats       [state.NumStats]int16
	Money       int32
	DamageVibes bool
}

type npcRecord struct {
	X, Y  int16
	Kind  int16
	Power int16
	HP    int16
}

type missionRecord struct {
	Kind       int16
	Location   int16
	PrimaryNPC int16
	Cells      [world.GridWidth][world.GridHeight]int16

	EntranceX, EntranceY   int16
	EntranceDirection      int16
	ObjectiveX, ObjectiveY int16

	Quota     int16
	Kills     int16
	Reward    int32
	Completed bool

	NPCs [state.MaxNPCs]npcRecord
}

// MissionBlobSize is the encoded size of a mission.
var MissionBlobSize = binary.Size(missionRecord{})

// EncodePlayer serialises the player.
func EncodePlayer(p *state.Player) []byte {
	rec := playerRecord{
		X:           int16(p.Position.X),
		Y:           int16(p.Position.Y),
		Direction:   int16(p.Direction),
		Money:       p.Money,
		DamageVibes: p.DamageVibes,
	}
	for i, v := range p.Stats {
		rec.Stats[i] = int16(v)
	}
	return encode(&rec)
}

// DecodePlayer restores a player from EncodePlayer's output.
func DecodePlayer(data []byte) (state.Player, error) {
	var rec playerRecord
	if err := decode(data, PlayerBlobSize, &rec); err != nil {
		return state.Player{}, fmt.Errorf("decoding player: %w", err)
	}
	dir := world.Direction(rec.Direction)
	if !dir.IsValid() || rec.Money < 0 || rec.Money > state.MaxMoney {
		return state.Player{}, fmt.Errorf("decoding player: %w", ErrCorrupt)
	}
	p := state.Player{
		Position:    world.Pt(int(rec.X), int(rec.Y)),
		Direction:   dir,
		Money:       rec.Money,
		DamageVibes: rec.DamageVibes,
	}
	for i, v := range rec.Stats {
		if v < 0 || v > state.MaxStatValue {
			return state.Player{}, fmt.Errorf("decoding player stat %s: %w", state.Stat(i), ErrCorrupt)
		}
		p.Stats[i] = int(v)
	}
	return p, nil
}

// EncodeMission serialises a mission including its grid and NPC slots.
func EncodeMission(m *state.Mission) []byte {
	rec := missionRecord{
		Kind:              int16(m.Kind),
		Location:          int16(m.Location),
		PrimaryNPC:        int16(m.PrimaryNPC),
		EntranceX:         int16(m.Entrance.X),
		EntranceY:         int16(m.Entrance.Y),
		EntranceDirection: int16(m.EntranceDirection),
		ObjectiveX:        int16(m.Objective.X),
		ObjectiveY:        int16(m.Objective.Y),
		Quota:             int16(m.Quota),
		Kills:             int16(m.Kills),
		Reward:            m.Reward,
		Completed:         m.Completed,
	}
	m.Grid.ForEachCell(func(p world.Point, c world.Cell) {
		rec.Cells[p.X][p.Y] = int16(c)
	})
	for i, n := range m.NPCs {
		rec.NPCs[i] = npcRecord{
			X:     int16(n.Position.X),
			Y:     int16(n.Position.Y),
			Kind:  int16(n.Kind),
			Power: int16(n.Power),
			HP:    int16(n.HP),
		}
	}
	return encode(&rec)
}

// DecodeMission restores a mission from EncodeMission's output.
func DecodeMission(data []byte) (*state.Mission, error) {
	var rec missionRecord
	if err := decode(data, MissionBlobSize, &rec); err != nil {
		return nil, fmt.Errorf("decoding mission: %w", err)
	}
	kind := state.MissionKind(rec.Kind)
	dir := world.Direction(rec.EntranceDirection)
	switch {
	case kind < 0 || int(kind) >= state.NumMissionKinds,
		rec.Location < 0 || int(rec.Location) >= state.NumLocationKinds,
		rec.PrimaryNPC < 0 || int(rec.PrimaryNPC) >= state.NumNPCKinds,
		!dir.IsValid(),
		rec.Quota < 0 || rec.Kills < 0,
		rec.Reward < 0 || rec.Reward > state.MaxMoney:
		return nil, fmt.Errorf("decoding mission: %w", ErrCorrupt)
	}

	m := state.NewMission(kind)
	m.Location = state.LocationKind(rec.Location)
	m.PrimaryNPC = state.NPCKind(rec.PrimaryNPC)
	m.Entrance = world.Pt(int(rec.EntranceX), int(rec.EntranceY))
	m.EntranceDirection = dir
	m.Objective = world.Pt(int(rec.ObjectiveX), int(rec.ObjectiveY))
	m.Quota = int(rec.Quota)
	m.Kills = int(rec.Kills)
	m.Reward = rec.Reward
	m.Completed = rec.Completed
	for x := 0; x < world.GridWidth; x++ {
		for y := 0; y < world.GridHeight; y++ {
			c := world.Cell(rec.Cells[x][y])
			if c < world.CellHuman {
				return nil, fmt.Errorf("decoding mission cell %d,%d: %w", x, y, ErrCorrupt)
			}
			m.Grid.SetCellType(world.Pt(x, y), c)
		}
	}
	for i, n := range rec.NPCs {
		kind := state.NPCKind(n.Kind)
		if kind < state.NPCNone || int(kind) >= state.NumNPCKinds {
			return nil, fmt.Errorf("decoding mission npc %d: %w", i, ErrCorrupt)
		}
		m.NPCs[i] = state.NPC{
			Position: world.Pt(int(n.X), int(n.Y)),
			Kind:     kind,
			Power:    int(n.Power),
			HP:       int(n.HP),
		}
	}
	return m, nil
}

func encode(v any) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer of fixed-size values cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func decode(data []byte, size int, v any) error {
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortBlob, len(data), size)
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}
