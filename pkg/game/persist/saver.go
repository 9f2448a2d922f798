package persist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"spacemerc/pkg/game/state"
)

// Saver writes sessions to a Store. It is the session's state.Persister.
type Saver struct {
	Store Store
}

// Persist saves the player and either saves or clears the mission.
func (sv Saver) Persist(s *state.Session) error {
	if err := sv.Store.SavePlayer(EncodePlayer(&s.Player)); err != nil {
		return fmt.Errorf("saving player: %w", err)
	}
	if s.Mission == nil {
		if err := sv.Store.ClearMission(); err != nil {
			return fmt.Errorf("clearing mission: %w", err)
		}
		return nil
	}
	if err := sv.Store.SaveMission(EncodeMission(s.Mission)); err != nil {
		return fmt.Errorf("saving mission: %w", err)
	}
	return nil
}

// Restore loads the saved player and mission into s. It reports a first run
// when there is no usable player blob; s then keeps its default player. A
// missing or unreadable mission blob only costs the mission.
func (sv Saver) Restore(s *state.Session) (firstRun bool) {
	data, err := sv.Store.LoadPlayer()
	if err == nil {
		var p state.Player
		p, err = DecodePlayer(data)
		if err == nil {
			s.Player = p
		}
	}
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.Log.Warn("discarding saved player", zap.Error(err))
		}
		return true
	}

	data, err = sv.Store.LoadMission()
	if err == nil {
		var m *state.Mission
		m, err = DecodeMission(data)
		if err == nil {
			s.Mission = m
		}
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.Log.Warn("discarding saved mission", zap.Error(err))
	}
	return false
}
