package state

import (
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
)

// Stat indexes Player.Stats. The order is the saved layout and the upgrade
// menu order.
type Stat int

const (
	Armor Stat = iota
	MaxHP
	Power
	MaxEnergy
	CurrentHP
	CurrentEnergy
	NumStats
)

// Limits shared by every saturating player adjustment.
const (
	MaxStatValue = 9999
	MaxMoney     = config.MaxFunds
)

// Defaults for a brand new player.
const (
	DefaultArmor     = 10
	DefaultMaxHP     = 30
	DefaultPower     = 10
	DefaultMaxEnergy = 30
)

// Player is the single persistent player character.
type Player struct {
	Position    world.Point
	Direction   world.Direction
	Stats       [NumStats]int
	Money       int32
	DamageVibes bool
}

// NewPlayer returns a first-run player.
func NewPlayer() Player {
	p := Player{Direction: world.North}
	p.Stats[Armor] = DefaultArmor
	p.Stats[MaxHP] = DefaultMaxHP
	p.Stats[Power] = DefaultPower
	p.Stats[MaxEnergy] = DefaultMaxEnergy
	p.Restore()
	return p
}

// Restore refills current HP and energy.
func (p *Player) Restore() {
	p.Stats[CurrentHP] = p.Stats[MaxHP]
	p.Stats[CurrentEnergy] = p.Stats[MaxEnergy]
}

// String returns the stat's label
func (s Stat) String() string {
	switch s {
	case Armor:
		return "Armor"
	case MaxHP:
		return "Max. Health"
	case Power:
		return "Laser Power"
	case MaxEnergy:
		return "Max. Energy"
	case CurrentHP:
		return "Health"
	case CurrentEnergy:
		return "Energy"
	default:
		return "Unknown"
	}
}
