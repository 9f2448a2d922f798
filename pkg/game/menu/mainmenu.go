package menu

import (
	"github.com/leonelquinteros/gotext"

	"spacemerc/pkg/game/state"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionMission MainMenuAction = iota
	MainMenuActionUpgrade
	MainMenuActionControls
	MainMenuActionAbout
	MainMenuActionVibes
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Help   string
	Action MainMenuAction
}

func (m *MainMenuItem) GetLabel() string    { return m.Label }
func (m *MainMenuItem) IsSelectable() bool  { return true }
func (m *MainMenuItem) GetHelpText() string { return m.Help }

// MainMenuHandler handles the main menu. Activations other than the
// vibration toggle are queued for the host to pick up with TakeAction.
type MainMenuHandler struct {
	session *state.Session
	pending *MainMenuAction
}

// NewMainMenuHandler creates a new main menu handler.
func NewMainMenuHandler(s *state.Session) *MainMenuHandler {
	return &MainMenuHandler{session: s}
}

func (h *MainMenuHandler) GetTitle() string {
	return gotext.Get("SpaceMerc")
}

// GetMenuItems returns the five entries. The first and second change with
// whether a mission is underway, the last with the vibration setting.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	inMission := h.session.Mission != nil

	mission := &MainMenuItem{Label: gotext.Get("New Mission"), Help: gotext.Get("Grab your gun and go!"), Action: MainMenuActionMission}
	if inMission {
		mission.Label = gotext.Get("Continue")
	}
	upgrade := &MainMenuItem{Label: gotext.Get("Buy an Upgrade"), Help: gotext.Get("Improved armor, etc."), Action: MainMenuActionUpgrade}
	if inMission {
		upgrade.Help = gotext.Get("Not during missions!")
	}
	vibes := &MainMenuItem{Label: gotext.Get("Damage Vibes Off"), Help: gotext.Get("Vibrate when hit?"), Action: MainMenuActionVibes}
	if h.session.Player.DamageVibes {
		vibes.Label = gotext.Get("Damage Vibes On")
	}

	return []MenuItem{
		mission,
		upgrade,
		&MainMenuItem{Label: gotext.Get("Controls"), Help: gotext.Get("How to play."), Action: MainMenuActionControls},
		&MainMenuItem{Label: gotext.Get("About"), Help: gotext.Get("Credits."), Action: MainMenuActionAbout},
		vibes,
	}
}

// OnActivate toggles vibration in place and queues everything else. The
// upgrade entry does nothing during a mission.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}
	switch mainItem.Action {
	case MainMenuActionVibes:
		h.session.Player.DamageVibes = !h.session.Player.DamageVibes
		h.session.Persist()
		return false, ""
	case MainMenuActionUpgrade:
		if h.session.Mission != nil {
			return false, gotext.Get("Not during missions!")
		}
	}
	action := mainItem.Action
	h.pending = &action
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {}

// TakeAction returns and clears the last queued activation.
func (h *MainMenuHandler) TakeAction() (MainMenuAction, bool) {
	if h.pending == nil {
		return 0, false
	}
	action := *h.pending
	h.pending = nil
	return action, true
}
