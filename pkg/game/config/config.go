// Package config holds the tunable constants of the simulation and the
// frontends, loadable from a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxNPCCapacity is the size of the NPC slot array. The configured capacity
// may be lower but never higher.
const MaxNPCCapacity = 3

// MaxFunds is the most money a player can hold, and so the largest reward.
const MaxFunds = 999_999_999

// MaxQuota keeps kill counts within the saved int16 fields, leaving room
// for the NPCs still alive when the quota is reached.
const MaxQuota = math.MaxInt16 - MaxNPCCapacity

// Generation tunes the mission generator.
type Generation struct {
	// TurnChance is N in the "1 in N" chance that the carving walker picks a
	// new direction after each step.
	TurnChance int `yaml:"turn_chance"`

	QuotaStep  int `yaml:"quota_step"`
	QuotaSteps int `yaml:"quota_steps"`

	RewardUnitMin  int `yaml:"reward_unit_min"`
	RewardUnitMax  int `yaml:"reward_unit_max"`
	RewardUnitStep int `yaml:"reward_unit_step"`
}

// Simulation tunes the tick-driven parts of a mission.
type Simulation struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	SpawnChance   int           `yaml:"spawn_chance"`
	NPCCapacity   int           `yaml:"npc_capacity"`
	AnimationStep time.Duration `yaml:"animation_step"`
	FlashDuration time.Duration `yaml:"flash_duration"`
}

// Display tunes the frontends.
type Display struct {
	Scale      int           `yaml:"scale"`
	Foreground string        `yaml:"foreground"`
	Background string        `yaml:"background"`
	MoveRepeat time.Duration `yaml:"move_repeat"`
}

// Config is the full set of tunables.
type Config struct {
	Generation Generation `yaml:"generation"`
	Simulation Simulation `yaml:"simulation"`
	Display    Display    `yaml:"display"`
}

// Default returns the built-in tunables.
func Default() Config {
	return Config{
		Generation: Generation{
			TurnChance:     4,
			QuotaStep:      5,
			QuotaSteps:     6,
			RewardUnitMin:  200,
			RewardUnitMax:  500,
			RewardUnitStep: 100,
		},
		Simulation: Simulation{
			TickInterval:  time.Second,
			SpawnChance:   5,
			NPCCapacity:   MaxNPCCapacity,
			AnimationStep: 20 * time.Millisecond,
			FlashDuration: 20 * time.Millisecond,
		},
		Display: Display{
			Scale:      4,
			Foreground: "#ffffff",
			Background: "#000000",
			MoveRepeat: 250 * time.Millisecond,
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the tunables describe a playable game.
func (c Config) Validate() error {
	g, s := c.Generation, c.Simulation
	switch {
	case g.TurnChance < 1:
		return fmt.Errorf("%w: generation.turn_chance must be at least 1", ErrInvalid)
	case g.QuotaStep < 1 || g.QuotaSteps < 1:
		return fmt.Errorf("%w: generation quota step and steps must be positive", ErrInvalid)
	case g.QuotaStep > MaxQuota/g.QuotaSteps:
		return fmt.Errorf("%w: generation quota can exceed %d", ErrInvalid, MaxQuota)
	case g.RewardUnitStep < 1:
		return fmt.Errorf("%w: generation.reward_unit_step must be positive", ErrInvalid)
	case g.RewardUnitMin < 0 || g.RewardUnitMin > g.RewardUnitMax:
		return fmt.Errorf("%w: generation reward unit range %d..%d", ErrInvalid, g.RewardUnitMin, g.RewardUnitMax)
	case g.RewardUnitMax > MaxFunds/(g.QuotaStep*g.QuotaSteps):
		return fmt.Errorf("%w: generation reward can exceed %d", ErrInvalid, MaxFunds)
	case s.TickInterval <= 0 || s.AnimationStep <= 0 || s.FlashDuration <= 0:
		return fmt.Errorf("%w: simulation intervals must be positive", ErrInvalid)
	case s.SpawnChance < 1:
		return fmt.Errorf("%w: simulation.spawn_chance must be at least 1", ErrInvalid)
	case s.NPCCapacity < 1 || s.NPCCapacity > MaxNPCCapacity:
		return fmt.Errorf("%w: simulation.npc_capacity must be within 1..%d", ErrInvalid, MaxNPCCapacity)
	case c.Display.Scale < 1:
		return fmt.Errorf("%w: display.scale must be positive", ErrInvalid)
	case c.Display.MoveRepeat <= 0:
		return fmt.Errorf("%w: display.move_repeat must be positive", ErrInvalid)
	}
	if _, err := ParseHexColor(c.Display.Foreground); err != nil {
		return fmt.Errorf("display.foreground: %w", err)
	}
	if _, err := ParseHexColor(c.Display.Background); err != nil {
		return fmt.Errorf("display.background: %w", err)
	}
	return nil
}

// ParseHexColor reads "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("%w: colour %q is not #rrggbb", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return c, fmt.Errorf("%w: colour %q is not #rrggbb", ErrInvalid, s)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}
