// Package generator builds mission locations.
package generator

import (
	"math/rand"

	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/state"
)

// MissionGenerator is an interface for mission generation algorithms
type MissionGenerator interface {
	// Generate builds a complete mission. The player is only read, to scale
	// any NPC the mission starts with.
	Generate(kind state.MissionKind, player *state.Player, rng *rand.Rand) *state.Mission
	Name() string
}

// New returns the default generator configured with cfg.
func New(cfg config.Generation) MissionGenerator {
	return &RandomWalkGenerator{cfg: cfg}
}
