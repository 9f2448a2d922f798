package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

func TestNPCPursuesAlongColumn(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.Ooze, world.Pt(7, 3), &s.Player)

	assert.Equal(t, Moved, npcAct(s, 0))
	assert.Equal(t, world.Pt(7, 4), s.Mission.NPCs[0].Position)
}

func TestNPCFallsBackToOtherAxis(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.Ooze, world.Pt(11, 7), &s.Player)
	s.Mission.Grid.SetCellType(world.Pt(10, 7), world.DefaultCellDurability)

	assert.Equal(t, Moved, npcAct(s, 0))
	assert.Equal(t, world.Pt(11, 8), s.Mission.NPCs[0].Position)
}

func TestNPCStuckInCorner(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.Beast, world.Pt(0, 0), &s.Player)
	s.Mission.Grid.SetCellType(world.Pt(1, 0), world.DefaultCellDurability)
	s.Mission.Grid.SetCellType(world.Pt(0, 1), world.DefaultCellDurability)

	for range 10 {
		assert.Equal(t, Blocked, npcAct(s, 0))
	}
	assert.Equal(t, world.Pt(0, 0), s.Mission.NPCs[0].Position)
}

func TestRangedNPCShootsAlongClearLine(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.AlienSoldier, world.Pt(7, 3), &s.Player)
	hp := s.Player.Stats[state.CurrentHP]

	assert.Equal(t, Attacked, npcAct(s, 0))
	assert.Less(t, s.Player.Stats[state.CurrentHP], hp)

	s.Mission.Grid.SetCellType(world.Pt(7, 5), world.DefaultCellDurability)
	assert.Equal(t, Moved, npcAct(s, 0))
}

func TestMeleeNPCNeedsAdjacency(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.Beast, world.Pt(7, 5), &s.Player)
	assert.Equal(t, Moved, npcAct(s, 0))
	assert.Equal(t, Attacked, npcAct(s, 0))
}

func TestAdjacentNPCDrainsPlayerUntilDeath(t *testing.T) {
	s, persister, _ := newTestSession(t)
	s.Mission.NPCs[0] = state.NewNPC(state.AlienSoldier, world.Pt(7, 6), &s.Player)

	hp := s.Player.Stats[state.CurrentHP]
	for i := 0; s.Mission != nil; i++ {
		require.Less(t, i, 100, "player never died")
		require.True(t, Tick(s))
		if s.Mission != nil {
			assert.Less(t, s.Player.Stats[state.CurrentHP], hp)
			hp = s.Player.Stats[state.CurrentHP]
		}
	}

	assert.Equal(t, 0, s.Player.Stats[state.CurrentHP])
	assert.Equal(t, []state.EventKind{state.EventPlayerDied}, events(s))
	assert.Equal(t, 1, persister.calls)
	assert.False(t, Tick(s))
}
