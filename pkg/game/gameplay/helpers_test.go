package gameplay

import (
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/state"
)

type countingPersister struct{ calls int }

func (p *countingPersister) Persist(*state.Session) error {
	p.calls++
	return nil
}

type countingFeedback struct{ flashes, vibrations int }

func (f *countingFeedback) Flash()   { f.flashes++ }
func (f *countingFeedback) Vibrate() { f.vibrations++ }

// newTestSession returns an unpaused session inside an obliterate mission on
// an all-floor grid, with the player in the middle facing north. The quota is
// zero so ticks never spawn.
func newTestSession(t *testing.T) (*state.Session, *countingPersister, *countingFeedback) {
	t.Helper()
	s := state.NewSession(config.Default(), rand.New(rand.NewSource(7)), zaptest.NewLogger(t))
	persister := &countingPersister{}
	feedback := &countingFeedback{}
	s.Persister = persister
	s.Feedback = feedback

	m := state.NewMission(state.Obliterate)
	m.Grid.Fill(world.CellEmpty)
	m.Entrance = world.Pt(0, 7)
	m.EntranceDirection = world.West
	m.Objective = world.Pt(14, 7)
	m.Reward = 1000
	s.Mission = m

	s.Player.Position = world.Pt(7, 7)
	s.Player.Direction = world.North
	s.Paused = false
	return s, persister, feedback
}

func events(s *state.Session) []state.EventKind {
	var kinds []state.EventKind
	for _, ev := range s.DrainEvents() {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}
