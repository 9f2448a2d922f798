package gameplay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/generator"
	"spacemerc/pkg/game/state"
)

func TestStartMission(t *testing.T) {
	for kind := state.MissionKind(0); int(kind) < state.NumMissionKinds; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			s := state.NewSession(config.Default(), rand.New(rand.NewSource(int64(kind))), zaptest.NewLogger(t))
			persister := &countingPersister{}
			s.Persister = persister
			s.Player.Stats[state.CurrentHP] = 1
			s.AddMessage("left over")

			require.NoError(t, StartMission(s, kind))
			assert.Empty(t, s.Messages)
			m := s.Mission
			require.NotNil(t, m)
			assert.NoError(t, generator.Validate(m))
			assert.Equal(t, m.Entrance, s.Player.Position)
			assert.Equal(t, m.EntranceDirection.Opposite(), s.Player.Direction)
			assert.Equal(t, s.Player.Stats[state.MaxHP], s.Player.Stats[state.CurrentHP])
			assert.Equal(t, 1, persister.calls)
			assert.Equal(t, []state.EventKind{state.EventMissionStarted}, events(s))

			assert.ErrorIs(t, StartMission(s, kind), ErrMissionActive)
		})
	}
}

func TestAssassinationScenario(t *testing.T) {
	s := state.NewSession(config.Default(), rand.New(rand.NewSource(3)), zaptest.NewLogger(t))
	require.NoError(t, StartMission(s, state.Assassinate))
	m := s.Mission

	require.Equal(t, 1, m.ActiveNPCs())
	assert.Equal(t, state.AlienOfficer, m.NPCs[0].Kind)
	assert.Equal(t, m.Objective, m.NPCs[0].Position)

	DamageNPC(s, 0, 1<<20)
	assert.True(t, m.Completed)
	assert.Equal(t, 1, m.Kills)
}

func TestConcludeMissionPaysOnlyWhenCompleted(t *testing.T) {
	s, _, _ := newTestSession(t)
	ConcludeMission(s)
	assert.Zero(t, s.Player.Money)
	assert.True(t, s.Paused)

	s, _, _ = newTestSession(t)
	s.Mission.Completed = true
	s.Player.Money = state.MaxMoney - 1
	ConcludeMission(s)
	assert.EqualValues(t, state.MaxMoney, s.Player.Money)
	assert.Nil(t, s.Mission)

	require.NotPanics(t, func() { ConcludeMission(s) })
}

func TestStartRandomMissionCoversKinds(t *testing.T) {
	seen := make(map[state.MissionKind]bool)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		s := state.NewSession(config.Default(), rng, zaptest.NewLogger(t))
		require.NoError(t, StartRandomMission(s))
		seen[s.Mission.Kind] = true
	}
	assert.Len(t, seen, state.NumMissionKinds)
}
