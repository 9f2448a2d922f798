package gameplay

import (
	"errors"

	"go.uber.org/zap"

	"spacemerc/pkg/game/generator"
	"spacemerc/pkg/game/state"
)

// ErrMissionActive is returned by operations only allowed between missions.
var ErrMissionActive = errors.New("a mission is in progress")

// StartMission generates a mission of kind and drops the player at its
// entrance, facing inwards, fully restored.
func StartMission(s *state.Session, kind state.MissionKind) error {
	if s.Mission != nil {
		return ErrMissionActive
	}
	gen := generator.New(s.Config.Generation)
	m := gen.Generate(kind, &s.Player, s.Rand)

	s.Mission = m
	s.Player.Position = m.Entrance
	s.Player.Direction = m.EntranceDirection.Opposite()
	s.Player.Restore()
	s.WeaponAnimation = 0
	s.ClearMessages()

	s.Log.Info("mission started",
		zap.String("generator", gen.Name()),
		zap.Stringer("kind", m.Kind),
		zap.Stringer("location", m.Location),
		zap.Int("quota", m.Quota),
		zap.Int32("reward", m.Reward))
	s.Emit(state.EventMissionStarted, m.Summary())
	s.Persist()
	return nil
}

// StartRandomMission starts a mission of a uniformly random kind.
func StartRandomMission(s *state.Session) error {
	return StartMission(s, state.MissionKind(s.Rand.Intn(state.NumMissionKinds)))
}

// ConcludeMission ends the current mission, paying the reward only if the
// objective was met.
func ConcludeMission(s *state.Session) {
	m := s.Mission
	if m == nil {
		return
	}
	summary := m.Summary()
	if m.Completed && !AdjustMoney(s, int64(m.Reward)) {
		s.Log.Info("funds capped", zap.Int32("money", s.Player.Money))
	}

	s.Mission = nil
	s.Paused = true
	s.WeaponAnimation = 0
	s.Log.Info("mission concluded",
		zap.Stringer("kind", summary.Kind),
		zap.Bool("completed", summary.Completed),
		zap.Int("kills", summary.Kills),
		zap.Int32("money", s.Player.Money))
	s.Emit(state.EventMissionConcluded, summary)
	s.Persist()
}

// Tick advances the mission by one simulation step: every NPC acts, a new
// enemy may arrive, then the player regenerates. It reports whether the view
// needs redrawing.
func Tick(s *state.Session) bool {
	if !active(s) {
		return false
	}
	m := s.Mission

	for slot := range m.NPCs {
		if !m.NPCs[slot].Active() {
			continue
		}
		outcome := npcAct(s, slot)
		if s.Mission == nil {
			// The player died.
			return true
		}
		if outcome == Blocked {
			s.Log.Debug("npc blocked", zap.Int("slot", slot))
		}
	}

	if m.Kills < m.Quota && s.Rand.Intn(s.Config.Simulation.SpawnChance) == 0 {
		if p, ok := NPCSpawnPoint(s); ok {
			AddNewNPC(s, randomSpawnKind(s), p)
		}
	}

	AdjustCurrentHP(s, 1)
	AdjustCurrentEnergy(s, 1)
	return true
}
