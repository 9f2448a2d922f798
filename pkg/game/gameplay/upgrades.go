package gameplay

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"spacemerc/pkg/game/state"
)

// Upgrade pricing.
const (
	StatBoostPerUpgrade   = 5
	UpgradeCostMultiplier = 250
)

var (
	ErrStatMaxed         = errors.New("stat is already at its maximum")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotUpgradable     = errors.New("stat cannot be upgraded")
)

// Upgradable lists the stats sold in the shop, in menu order.
var Upgradable = []state.Stat{state.Armor, state.MaxHP, state.Power, state.MaxEnergy}

// UpgradedStatValue is what stat would become after one purchase.
func UpgradedStatValue(p *state.Player, stat state.Stat) int {
	return min(p.Stats[stat]+StatBoostPerUpgrade, state.MaxStatValue)
}

// UpgradeCost is the price of the next purchase of stat.
func UpgradeCost(p *state.Player, stat state.Stat) int64 {
	return min(int64(UpgradedStatValue(p, stat))*UpgradeCostMultiplier, state.MaxMoney)
}

func isUpgradable(stat state.Stat) bool {
	for _, u := range Upgradable {
		if u == stat {
			return true
		}
	}
	return false
}

// BuyUpgrade spends funds to raise stat. Purchases are refused during a
// mission.
func BuyUpgrade(s *state.Session, stat state.Stat) error {
	p := &s.Player
	switch {
	case !isUpgradable(stat):
		return fmt.Errorf("%v: %w", stat, ErrNotUpgradable)
	case s.Mission != nil:
		return ErrMissionActive
	case p.Stats[stat] >= state.MaxStatValue:
		return fmt.Errorf("%v: %w", stat, ErrStatMaxed)
	}

	cost := UpgradeCost(p, stat)
	if !AdjustMoney(s, -cost) {
		return fmt.Errorf("%v costs $%d: %w", stat, cost, ErrInsufficientFunds)
	}
	p.Stats[stat] = UpgradedStatValue(p, stat)

	s.Log.Info("upgrade bought",
		zap.Stringer("stat", stat),
		zap.Int("value", p.Stats[stat]),
		zap.Int64("cost", cost))
	s.Persist()
	return nil
}
