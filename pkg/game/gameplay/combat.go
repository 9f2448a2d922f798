package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/narration"
	"spacemerc/pkg/game/state"
)

// MinDamage is the least a hit on the player can ever do.
const MinDamage = 2

// AdjustMoney adds amount to the player's funds. A change that would go below
// zero is refused outright. A change that would pass MaxMoney saturates at
// MaxMoney and still reports failure.
func AdjustMoney(s *state.Session, amount int64) bool {
	next := int64(s.Player.Money) + amount
	switch {
	case next < 0:
		return false
	case next > state.MaxMoney:
		s.Player.Money = state.MaxMoney
		return false
	}
	s.Player.Money = int32(next)
	return true
}

// AdjustCurrentHP changes the player's health within [0, MaxHP]. Dropping to
// zero during a mission kills the player.
func AdjustCurrentHP(s *state.Session, amount int) {
	p := &s.Player
	p.Stats[state.CurrentHP] = clamp(p.Stats[state.CurrentHP]+amount, 0, p.Stats[state.MaxHP])
	if p.Stats[state.CurrentHP] == 0 && s.Mission != nil {
		killPlayer(s)
	}
}

// AdjustCurrentEnergy changes the player's energy within [0, MaxEnergy].
func AdjustCurrentEnergy(s *state.Session, amount int) {
	p := &s.Player
	p.Stats[state.CurrentEnergy] = clamp(p.Stats[state.CurrentEnergy]+amount, 0, p.Stats[state.MaxEnergy])
}

// DamagePlayer applies a hit softened by half the player's armor.
func DamagePlayer(s *state.Session, raw int) {
	dmg := raw - s.Player.Stats[state.Armor]/2
	if dmg < MinDamage {
		dmg = MinDamage
	}
	if s.Feedback != nil {
		if s.Player.DamageVibes {
			s.Feedback.Vibrate()
		}
		s.Feedback.Flash()
	}
	s.AddMessage(gotext.Get("Hit for %d damage", dmg))
	AdjustCurrentHP(s, -dmg)
}

// DamageNPC wounds the NPC in slot. A kill counts towards the mission and
// frees the slot.
func DamageNPC(s *state.Session, slot int, amount int) {
	m := s.Mission
	if m == nil || slot < 0 || slot >= len(m.NPCs) || !m.NPCs[slot].Active() {
		return
	}
	npc := &m.NPCs[slot]
	npc.HP -= amount
	if npc.HP > 0 {
		return
	}

	m.Kills++
	s.AddMessage(gotext.Get("FOE{%s} destroyed", narration.NPCName(npc.Kind)))
	if (m.Kind == state.Assassinate && npc.Kind == state.AlienOfficer) ||
		(m.Kind.IsAttrition() && m.Kills >= m.Quota) {
		m.Completed = true
	}
	s.Log.Debug("npc killed",
		zap.Stringer("kind", npc.Kind),
		zap.Int("kills", m.Kills),
		zap.Bool("completed", m.Completed))
	npc.Kind = state.NPCNone
}

// DamageCell erodes a wall. Walls worn below one become empty floor.
func DamageCell(s *state.Session, p world.Point, amount int) {
	if s.Mission == nil || world.IsOutOfBounds(p) {
		return
	}
	c := s.Mission.CellType(p)
	if !c.IsSolid() {
		return
	}
	left := int(c) - amount
	if left < int(world.CellSolid) {
		s.Mission.Grid.SetCellType(p, world.CellEmpty)
		return
	}
	s.Mission.Grid.SetCellType(p, world.Cell(left))
}

func killPlayer(s *state.Session) {
	summary := s.Mission.Summary()
	s.Log.Warn("player died",
		zap.Stringer("mission", summary.Kind),
		zap.Int("kills", summary.Kills))
	s.Mission = nil
	s.Paused = true
	s.WeaponAnimation = 0
	s.Emit(state.EventPlayerDied, summary)
	s.Persist()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
