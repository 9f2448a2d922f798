// Package gameplay provides core game logic for player movement, combat and
// the mission lifecycle.
package gameplay

import (
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

// active reports whether input and ticks may change the session.
func active(s *state.Session) bool {
	return !s.Paused && s.Mission != nil
}

// MovePlayer steps the player one cell in d. Walking out through the entrance
// while facing it ends the mission.
func MovePlayer(s *state.Session, d world.Direction) {
	if !active(s) {
		return
	}
	p, m := &s.Player, s.Mission

	if p.Position == m.Entrance && p.Direction == m.EntranceDirection && d == m.EntranceDirection {
		ConcludeMission(s)
		return
	}

	dest := p.Position.Step(d, 1)
	if !s.IsOccupiable(dest) {
		return
	}
	p.Position = dest
	if m.CellType(dest).IsObjective() {
		m.Grid.SetCellType(dest, world.CellEmpty)
		m.Completed = true
	}
}

// MoveForward steps the player in the direction they face.
func MoveForward(s *state.Session) {
	MovePlayer(s, s.Player.Direction)
}

// MoveBack steps the player backwards without turning.
func MoveBack(s *state.Session) {
	MovePlayer(s, s.Player.Direction.Opposite())
}

// TurnPlayerLeft rotates the player a quarter turn counter-clockwise.
func TurnPlayerLeft(s *state.Session) {
	if active(s) {
		s.Player.Direction = s.Player.Direction.Left()
	}
}

// TurnPlayerRight rotates the player a quarter turn clockwise.
func TurnPlayerRight(s *state.Session) {
	if active(s) {
		s.Player.Direction = s.Player.Direction.Right()
	}
}

// moveNPC steps the NPC in slot one cell in d if the cell is free.
func moveNPC(s *state.Session, slot int, d world.Direction) bool {
	npc := &s.Mission.NPCs[slot]
	dest := npc.Position.Step(d, 1)
	if !s.IsOccupiable(dest) {
		return false
	}
	npc.Position = dest
	return true
}
