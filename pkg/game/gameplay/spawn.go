package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/narration"
	"spacemerc/pkg/game/state"
)

// AddNewNPC places a new NPC of kind at p, scaled to the player. It fails
// when every slot below the configured capacity is taken or p is not free.
func AddNewNPC(s *state.Session, kind state.NPCKind, p world.Point) bool {
	if s.Mission == nil || !s.IsOccupiable(p) {
		return false
	}
	slot, ok := s.Mission.FreeSlot(s.Config.Simulation.NPCCapacity)
	if !ok {
		return false
	}
	s.Mission.NPCs[slot] = state.NewNPC(kind, p, &s.Player)
	s.Log.Debug("npc spawned",
		zap.Int("slot", slot),
		zap.Stringer("kind", kind),
		zap.Stringer("at", p))
	s.AddMessage(gotext.Get("FOE{%s} detected", narration.NPCName(kind)))
	return true
}

// NPCSpawnPoint finds a free cell just out of the player's sight. It looks
// along each direction in turn and then sideways from the farthest visible
// cell.
func NPCSpawnPoint(s *state.Session) (world.Point, bool) {
	if s.Mission == nil {
		return world.NoPoint, false
	}
	d := world.Direction(s.Rand.Intn(world.NumDirections))
	for i := 0; i < world.NumDirections; i, d = i+1, d.Next() {
		base := s.Player.Position.Step(d, world.MaxVisibilityDepth)
		if world.IsOutOfBounds(base) {
			continue
		}
		if s.IsOccupiable(base) {
			return base, true
		}
		for j := 1; j <= world.MaxVisibilityDepth-2; j++ {
			sides := [2]world.Direction{d.Left(), d.Right()}
			if s.Rand.Intn(2) == 0 {
				sides[0], sides[1] = sides[1], sides[0]
			}
			for _, side := range sides {
				if p := base.Step(side, j); s.IsOccupiable(p) {
					return p, true
				}
			}
		}
	}
	return world.NoPoint, false
}

// randomSpawnKind picks any kind except the officer, which only appears as
// an assassination target.
func randomSpawnKind(s *state.Session) state.NPCKind {
	return state.NPCKind(s.Rand.Intn(int(state.AlienOfficer)))
}
