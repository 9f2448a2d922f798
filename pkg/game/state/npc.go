package state

import "spacemerc/pkg/engine/world"

// NPCKind is the kind of a non-player character. Kinds from AlienSoldier
// upwards carry guns.
type NPCKind int

const (
	// NPCNone marks a free slot.
	NPCNone NPCKind = iota - 1
	FloatingMonstrosity
	Ooze
	Beast
	Robot
	AlienSoldier
	AlienElite
	AlienOfficer
	NumNPCKinds = int(AlienOfficer) + 1
)

// IsRanged reports whether the kind can shoot along rows and columns.
func (k NPCKind) IsRanged() bool {
	return k >= AlienSoldier
}

// IsAlien reports whether the kind is one of the three alien kinds.
func (k NPCKind) IsAlien() bool {
	return k >= AlienSoldier && k <= AlienOfficer
}

func (k NPCKind) String() string {
	switch k {
	case NPCNone:
		return "None"
	case FloatingMonstrosity:
		return "FloatingMonstrosity"
	case Ooze:
		return "Ooze"
	case Beast:
		return "Beast"
	case Robot:
		return "Robot"
	case AlienSoldier:
		return "AlienSoldier"
	case AlienElite:
		return "AlienElite"
	case AlienOfficer:
		return "AlienOfficer"
	default:
		return "Unknown"
	}
}

// NPC is one occupant of a mission's slot array.
type NPC struct {
	Position world.Point
	Kind     NPCKind
	Power    int
	HP       int
}

// Active reports whether the slot holds a live NPC.
func (n *NPC) Active() bool {
	return n.Kind != NPCNone
}

// NewNPC scales a fresh NPC from the player's stats so that fights stay
// balanced as the player upgrades.
func NewNPC(kind NPCKind, pos world.Point, p *Player) NPC {
	n := NPC{
		Position: pos,
		Kind:     kind,
		Power:    (p.Stats[Armor] + p.Stats[MaxHP]) / 5,
		HP:       p.Stats[Power] + p.Stats[MaxEnergy],
	}
	switch kind {
	case AlienOfficer, AlienElite, Beast, FloatingMonstrosity:
		n.Power = n.Power * 3 / 2
	}
	switch kind {
	case AlienOfficer, Robot, Ooze, FloatingMonstrosity:
		n.HP = n.HP * 3 / 2
	}
	return n
}
