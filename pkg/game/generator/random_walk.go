package generator

import (
	"fmt"
	"math/rand"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/state"
)

// RandomWalkGenerator carves one winding corridor between two opposite edges
// of a solid grid. The walker re-rolls its heading at random, so the corridor
// can wander and double back before it reaches the far edge.
type RandomWalkGenerator struct {
	cfg config.Generation
}

// Name returns the name of this generator
func (g *RandomWalkGenerator) Name() string {
	return "Random Walk"
}

// Generate creates a new mission of the given kind
func (g *RandomWalkGenerator) Generate(kind state.MissionKind, player *state.Player, rng *rand.Rand) *state.Mission {
	m := state.NewMission(kind)
	m.Location = state.LocationKind(rng.Intn(state.NumLocationKinds))
	if kind == state.Retaliate {
		m.PrimaryNPC = state.NPCKind(rng.Intn(int(state.AlienSoldier) + 1))
	}

	g.carve(m, rng)
	g.placePayload(m, player)

	m.Quota = min(g.cfg.QuotaStep*(rng.Intn(g.cfg.QuotaSteps)+1), config.MaxQuota)
	units := (g.cfg.RewardUnitMax-g.cfg.RewardUnitMin)/g.cfg.RewardUnitStep + 1
	unit := g.cfg.RewardUnitMin + g.cfg.RewardUnitStep*rng.Intn(units)
	m.Reward = int32(min(int64(m.Quota)*int64(unit), state.MaxMoney))

	return m
}

// randomEdgePoint returns a random cell on the edge facing d.
func randomEdgePoint(d world.Direction, rng *rand.Rand) world.Point {
	switch d {
	case world.North:
		return world.Pt(rng.Intn(world.GridWidth), 0)
	case world.South:
		return world.Pt(rng.Intn(world.GridWidth), world.GridHeight-1)
	case world.East:
		return world.Pt(world.GridWidth-1, rng.Intn(world.GridHeight))
	default:
		return world.Pt(0, rng.Intn(world.GridHeight))
	}
}

// clampedStep moves p one cell in d unless that would leave the grid.
func clampedStep(p world.Point, d world.Direction) world.Point {
	next := p.Step(d, 1)
	if world.IsOutOfBounds(next) {
		return p
	}
	return next
}

func (g *RandomWalkGenerator) carve(m *state.Mission, rng *rand.Rand) {
	m.Grid.Fill(world.DefaultCellDurability)

	m.EntranceDirection = world.Direction(rng.Intn(world.NumDirections))
	m.Entrance = randomEdgePoint(m.EntranceDirection, rng)
	m.Objective = randomEdgePoint(m.EntranceDirection.Opposite(), rng)

	pos := m.Entrance
	heading := m.EntranceDirection.Opposite()
	for pos != m.Objective {
		m.Grid.SetCellType(pos, world.CellEmpty)
		pos = clampedStep(pos, heading)
		if rng.Intn(g.cfg.TurnChance) == 0 {
			heading = world.Direction(rng.Intn(world.NumDirections))
		}
	}
	m.Grid.SetCellType(pos, world.CellEmpty)
}

func (g *RandomWalkGenerator) placePayload(m *state.Mission, player *state.Player) {
	switch m.Kind {
	case state.Assassinate:
		m.NPCs[0] = state.NewNPC(state.AlienOfficer, m.Objective, player)
	case state.Expropriate:
		m.Grid.SetCellType(m.Objective, world.CellItem)
	case state.Extricate:
		m.Grid.SetCellType(m.Objective, world.CellHuman)
	}
}

// Validate checks that the objective can be walked to from the entrance.
func Validate(m *state.Mission) error {
	reachable := world.Reachable(m.Grid, m.Entrance)
	if !reachable.Has(m.Objective) {
		return fmt.Errorf("objective %v unreachable from entrance %v (%d cells reachable)",
			m.Objective, m.Entrance, reachable.Size())
	}
	return nil
}
