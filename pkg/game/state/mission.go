package state

import (
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
)

// MissionKind is the objective of a mission.
type MissionKind int

const (
	Retaliate MissionKind = iota
	Obliterate
	Expropriate
	Extricate
	Assassinate
	NumMissionKinds = int(Assassinate) + 1
)

func (k MissionKind) String() string {
	switch k {
	case Retaliate:
		return "Retaliate"
	case Obliterate:
		return "Obliterate"
	case Expropriate:
		return "Expropriate"
	case Extricate:
		return "Extricate"
	case Assassinate:
		return "Assassinate"
	default:
		return "Unknown"
	}
}

// IsAttrition reports whether the mission is won by reaching the kill quota.
func (k MissionKind) IsAttrition() bool {
	return k == Retaliate || k == Obliterate
}

// LocationKind flavours the mission briefing.
type LocationKind int

const (
	Colony LocationKind = iota
	City
	Factory
	Laboratory
	Base
	Mine
	Starship
	Spaceport
	SpaceStation
	NumLocationKinds = int(SpaceStation) + 1
)

func (l LocationKind) String() string {
	switch l {
	case Colony:
		return "Colony"
	case City:
		return "City"
	case Factory:
		return "Factory"
	case Laboratory:
		return "Laboratory"
	case Base:
		return "Base"
	case Mine:
		return "Mine"
	case Starship:
		return "Starship"
	case Spaceport:
		return "Spaceport"
	case SpaceStation:
		return "SpaceStation"
	default:
		return "Unknown"
	}
}

// MaxNPCs is the hard slot capacity.
const MaxNPCs = config.MaxNPCCapacity

// Mission owns a location grid and its NPC slots.
type Mission struct {
	Kind       MissionKind
	Location   LocationKind
	PrimaryNPC NPCKind

	Grid              *world.Grid
	Entrance          world.Point
	EntranceDirection world.Direction
	// Objective is where the payload was placed; it is the far end of the
	// carved path.
	Objective world.Point

	Quota     int
	Kills     int
	Reward    int32
	Completed bool

	NPCs [MaxNPCs]NPC
}

// NewMission returns a mission with a solid grid and empty slots.
func NewMission(kind MissionKind) *Mission {
	m := &Mission{Kind: kind, Grid: world.NewGrid(), PrimaryNPC: AlienSoldier}
	for i := range m.NPCs {
		m.NPCs[i].Kind = NPCNone
	}
	return m
}

// CellType returns the grid cell at p (solid when out of bounds).
func (m *Mission) CellType(p world.Point) world.Cell {
	return m.Grid.CellType(p)
}

// NPCAt returns the slot index of the NPC standing on p.
func (m *Mission) NPCAt(p world.Point) (int, bool) {
	for i := range m.NPCs {
		if m.NPCs[i].Active() && m.NPCs[i].Position == p {
			return i, true
		}
	}
	return -1, false
}

// ActiveNPCs counts occupied slots.
func (m *Mission) ActiveNPCs() int {
	n := 0
	for i := range m.NPCs {
		if m.NPCs[i].Active() {
			n++
		}
	}
	return n
}

// FreeSlot returns the first unused slot below capacity.
func (m *Mission) FreeSlot(capacity int) (int, bool) {
	if capacity > MaxNPCs {
		capacity = MaxNPCs
	}
	for i := 0; i < capacity; i++ {
		if !m.NPCs[i].Active() {
			return i, true
		}
	}
	return -1, false
}

// Summary captures the numbers shown when a mission is briefed or ends.
func (m *Mission) Summary() MissionSummary {
	return MissionSummary{
		Kind:       m.Kind,
		Location:   m.Location,
		PrimaryNPC: m.PrimaryNPC,
		Quota:      m.Quota,
		Kills:      m.Kills,
		Reward:     m.Reward,
		Completed:  m.Completed,
	}
}

// MissionSummary is a value copy of the mission's narrative facts. It
// survives the mission itself.
type MissionSummary struct {
	Kind       MissionKind
	Location   LocationKind
	PrimaryNPC NPCKind
	Quota      int
	Kills      int
	Reward     int32
	Completed  bool
}

// Remaining returns how many quota enemies were left alive.
func (s MissionSummary) Remaining() int {
	if s.Kills >= s.Quota {
		return 0
	}
	return s.Quota - s.Kills
}
