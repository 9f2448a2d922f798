package menu

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"spacemerc/pkg/game/gameplay"
	"spacemerc/pkg/game/state"
)

// UpgradeMenuItem is one stat for sale.
type UpgradeMenuItem struct {
	Stat   state.Stat
	player *state.Player
}

func (u *UpgradeMenuItem) GetLabel() string   { return gotext.Get(u.Stat.String()) }
func (u *UpgradeMenuItem) IsSelectable() bool { return true }

// GetHelpText shows the purchase: current value, upgraded value and price.
func (u *UpgradeMenuItem) GetHelpText() string {
	value := u.player.Stats[u.Stat]
	if value >= state.MaxStatValue {
		return gotext.Get("%d (Maxed Out)", state.MaxStatValue)
	}
	return fmt.Sprintf("%d->%d MONEY{$%d}", value,
		gameplay.UpgradedStatValue(u.player, u.Stat), gameplay.UpgradeCost(u.player, u.Stat))
}

// UpgradeMenuHandler sells stat upgrades between missions.
type UpgradeMenuHandler struct {
	session *state.Session
}

func NewUpgradeMenuHandler(s *state.Session) *UpgradeMenuHandler {
	return &UpgradeMenuHandler{session: s}
}

// GetTitle shows the player's funds.
func (h *UpgradeMenuHandler) GetTitle() string {
	return gotext.Get("Funds: MONEY{$%d}", h.session.Player.Money)
}

func (h *UpgradeMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(gameplay.Upgradable))
	for _, stat := range gameplay.Upgradable {
		items = append(items, &UpgradeMenuItem{Stat: stat, player: &h.session.Player})
	}
	return items
}

// OnActivate buys the upgrade. Refusals are reported as help text and keep
// the menu open.
func (h *UpgradeMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	upgrade, ok := item.(*UpgradeMenuItem)
	if !ok {
		return false, ""
	}
	err := gameplay.BuyUpgrade(h.session, upgrade.Stat)
	switch {
	case err == nil:
		return false, ""
	case errors.Is(err, gameplay.ErrInsufficientFunds):
		return false, gotext.Get("Insufficient funds!")
	case errors.Is(err, gameplay.ErrStatMaxed):
		return false, gotext.Get("Maxed out!")
	case errors.Is(err, gameplay.ErrMissionActive):
		return false, gotext.Get("Not during missions!")
	default:
		return false, err.Error()
	}
}

func (h *UpgradeMenuHandler) OnExit() {}
