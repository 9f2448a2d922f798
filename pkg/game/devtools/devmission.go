package devtools

import (
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

// devCorridorRow is the row of the showcase corridor.
const devCorridorRow = world.GridHeight / 2

// ShowcaseKinds fills every slot of the developer mission with a different
// sprite.
var ShowcaseKinds = []state.NPCKind{state.Beast, state.Robot, state.AlienOfficer}

// SwitchToDevMission replaces the session's mission with a hard-coded
// showcase: a straight east-west corridor with a side room, the player at
// the west end facing east, and the given NPC kinds standing two cells
// apart in front of them. Extra kinds beyond the slot capacity are ignored.
// The mission has no quota and pays nothing.
func SwitchToDevMission(s *state.Session, kinds ...state.NPCKind) {
	m := state.NewMission(state.Obliterate)
	m.Location = state.SpaceStation
	m.Entrance = world.Pt(0, devCorridorRow)
	m.EntranceDirection = world.West
	m.Objective = world.Pt(world.GridWidth-1, devCorridorRow)

	for x := 0; x < world.GridWidth; x++ {
		m.Grid.SetCellType(world.Pt(x, devCorridorRow), world.CellEmpty)
	}
	// A side room with a damaged wall and an item, visible when turning.
	for x := 3; x <= 5; x++ {
		for y := devCorridorRow - 3; y < devCorridorRow; y++ {
			m.Grid.SetCellType(world.Pt(x, y), world.CellEmpty)
		}
	}
	m.Grid.SetCellType(world.Pt(4, devCorridorRow-3), world.CellItem)
	m.Grid.SetCellType(world.Pt(6, devCorridorRow-1), world.DefaultCellDurability/2)
	m.Grid.SetCellType(m.Objective, world.CellHuman)

	s.Mission = m
	s.Player.Position = m.Entrance
	s.Player.Direction = world.East
	s.Player.Restore()
	s.WeaponAnimation = 0
	s.ClearMessages()

	for i, kind := range kinds {
		if i >= state.MaxNPCs {
			break
		}
		pos := world.Pt(2+2*i, devCorridorRow)
		m.NPCs[i] = state.NewNPC(kind, pos, &s.Player)
	}
}
