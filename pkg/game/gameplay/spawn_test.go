package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

func TestNPCSpawnPointAtEdgeOfSight(t *testing.T) {
	s, _, _ := newTestSession(t)
	candidates := []world.Point{world.Pt(7, 1), world.Pt(7, 13), world.Pt(13, 7), world.Pt(1, 7)}

	for range 20 {
		p, ok := NPCSpawnPoint(s)
		assert.True(t, ok)
		assert.Contains(t, candidates, p)
	}
}

func TestNPCSpawnPointProbesSideways(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.Grid.Fill(world.DefaultCellDurability)
	s.Mission.Grid.SetCellType(s.Player.Position, world.CellEmpty)
	s.Mission.Grid.SetCellType(world.Pt(9, 1), world.CellEmpty)

	p, ok := NPCSpawnPoint(s)
	assert.True(t, ok)
	assert.Equal(t, world.Pt(9, 1), p)
}

func TestNPCSpawnPointExhausted(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mission.Grid.Fill(world.DefaultCellDurability)

	p, ok := NPCSpawnPoint(s)
	assert.False(t, ok)
	assert.Equal(t, world.NoPoint, p)
}

func TestNPCSpawnPointSkipsOutOfBounds(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Player.Position = world.Pt(2, 2)

	for range 20 {
		p, ok := NPCSpawnPoint(s)
		assert.True(t, ok)
		assert.Contains(t, []world.Point{world.Pt(8, 2), world.Pt(2, 8)}, p)
	}
}

func TestAddNewNPCRespectsCapacity(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Config.Simulation.NPCCapacity = 2

	assert.True(t, AddNewNPC(s, state.Robot, world.Pt(1, 1)))
	assert.False(t, AddNewNPC(s, state.Robot, world.Pt(1, 1)), "cell taken")
	assert.True(t, AddNewNPC(s, state.Robot, world.Pt(2, 1)))
	assert.False(t, AddNewNPC(s, state.Robot, world.Pt(3, 1)), "capacity reached")
	assert.Equal(t, 2, s.Mission.ActiveNPCs())

	DamageNPC(s, 0, 1000)
	assert.True(t, AddNewNPC(s, state.Ooze, world.Pt(3, 1)))
	assert.Equal(t, state.Ooze, s.Mission.NPCs[0].Kind)
}

func TestAddNewNPCLogsArrival(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Config.Simulation.NPCCapacity = 1

	require.True(t, AddNewNPC(s, state.Beast, world.Pt(1, 1)))
	assert.False(t, AddNewNPC(s, state.Robot, world.Pt(2, 1)))
	assert.Equal(t, []string{"FOE{beast} detected"}, s.Messages)
}

func TestTickSpawnsUntilQuota(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Config.Simulation.SpawnChance = 1
	s.Mission.Quota = 10

	assert.True(t, Tick(s))
	assert.Equal(t, 1, s.Mission.ActiveNPCs())
	assert.NotEqual(t, state.AlienOfficer, s.Mission.NPCs[0].Kind)

	s.Mission.Kills = 10
	s.Mission.NPCs[0].Kind = state.NPCNone
	Tick(s)
	assert.Zero(t, s.Mission.ActiveNPCs())
}

func TestTickRegenerates(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Player.Stats[state.CurrentHP] = 3
	s.Player.Stats[state.CurrentEnergy] = 0

	Tick(s)
	assert.Equal(t, 4, s.Player.Stats[state.CurrentHP])
	assert.Equal(t, 1, s.Player.Stats[state.CurrentEnergy])
}
