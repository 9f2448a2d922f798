// Package state holds the mutable game state shared by every subsystem.
package state

import (
	"math/rand"

	"go.uber.org/zap"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
)

// Persister writes the session to durable storage. Failures are reported but
// never stop the game.
type Persister interface {
	Persist(s *Session) error
}

// Feedback receives the side effects of the player being hit.
type Feedback interface {
	Flash()
	Vibrate()
}

// Weapon animation constants.
const (
	WeaponAnimationSteps = 2
	MaxLaserBaseWidth    = 12
	MinLaserBaseWidth    = 8
)

// MaxMessages is how many combat messages the session keeps.
const MaxMessages = 5

// Session is the whole game: one player and at most one mission.
type Session struct {
	Player  Player
	Mission *Mission
	Paused  bool

	// WeaponAnimation counts down the remaining laser frames.
	WeaponAnimation int
	LaserBaseWidth  int

	// Messages is the recent combat log, oldest first. It may hold markup.
	Messages []string

	Config    config.Config
	Rand      *rand.Rand
	Log       *zap.Logger
	Persister Persister
	Feedback  Feedback

	events []Event
}

// NewSession creates a paused session with a first-run player.
func NewSession(cfg config.Config, rng *rand.Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Player: NewPlayer(),
		Paused: true,
		Config: cfg,
		Rand:   rng,
		Log:    log,
	}
}

// CellType returns the current mission's cell at p. Without a mission every
// cell reads as solid.
func (s *Session) CellType(p world.Point) world.Cell {
	if s.Mission == nil {
		return world.DefaultCellDurability
	}
	return s.Mission.CellType(p)
}

// IsOccupiable reports whether a character may step onto p.
func (s *Session) IsOccupiable(p world.Point) bool {
	if s.Mission == nil || s.CellType(p) > world.CellEmpty {
		return false
	}
	if p == s.Player.Position {
		return false
	}
	_, taken := s.Mission.NPCAt(p)
	return !taken
}

// Persist hands the session to the persister, logging any failure.
func (s *Session) Persist() {
	if s.Persister == nil {
		return
	}
	if err := s.Persister.Persist(s); err != nil {
		s.Log.Warn("persisting session failed", zap.Error(err))
	}
}

// AddMessage appends msg to the log, dropping the oldest past MaxMessages.
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > MaxMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxMessages:]
	}
}

// ClearMessages empties the log.
func (s *Session) ClearMessages() {
	s.Messages = nil
}
