package gameplay

import (
	"go.uber.org/zap"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

// Outcome is what an NPC did with its turn.
type Outcome int

const (
	Blocked Outcome = iota
	Moved
	Attacked
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "Moved"
	case Attacked:
		return "Attacked"
	default:
		return "Blocked"
	}
}

// canAttack reports whether npc is in reach of the player.
func canAttack(s *state.Session, npc *state.NPC) bool {
	if world.IsAdjacent(npc.Position, s.Player.Position) {
		return true
	}
	if !npc.Kind.IsRanged() {
		return false
	}
	return world.LineOfSight(npc.Position, s.Player.Position, world.MaxVisibilityDepth, s.IsOccupiable)
}

// pursuitDirection picks the step that brings the NPC in slot closer to the
// player. It returns false when every useful step is blocked.
func pursuitDirection(s *state.Session, slot int) (world.Direction, bool) {
	npc := &s.Mission.NPCs[slot]
	from, to := npc.Position, s.Player.Position

	horizontal := world.East
	if from.X > to.X {
		horizontal = world.West
	}
	vertical := world.South
	if from.Y > to.Y {
		vertical = world.North
	}

	var order [2]world.Direction
	switch {
	case from.X == to.X:
		order = [2]world.Direction{vertical, horizontal}
	case from.Y == to.Y:
		order = [2]world.Direction{horizontal, vertical}
	case s.Rand.Intn(2) == 0:
		order = [2]world.Direction{horizontal, vertical}
	default:
		order = [2]world.Direction{vertical, horizontal}
	}

	for _, d := range order {
		if s.IsOccupiable(from.Step(d, 1)) {
			return d, true
		}
	}
	return world.North, false
}

// npcAct runs one turn of the NPC in slot.
func npcAct(s *state.Session, slot int) Outcome {
	npc := &s.Mission.NPCs[slot]
	if canAttack(s, npc) {
		s.Log.Debug("npc attacks", zap.Int("slot", slot), zap.Stringer("kind", npc.Kind))
		DamagePlayer(s, npc.Power)
		return Attacked
	}
	d, ok := pursuitDirection(s, slot)
	if !ok || !moveNPC(s, slot, d) {
		return Blocked
	}
	return Moved
}
