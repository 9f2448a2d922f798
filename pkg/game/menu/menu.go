// Package menu provides a generic menu system for the game. A Menu is a
// plain state machine fed with input intents, so frontends can draw it
// from whatever loop they run.
package menu

import (
	engineinput "spacemerc/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler supplies the items of a menu and reacts to them.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetMenuItems is called on every read so labels can change while the
	// menu is open.
	GetMenuItems() []MenuItem
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is closed.
	OnExit()
}

// Menu tracks the selection of one open menu.
type Menu struct {
	handler  MenuHandler
	selected int
	helpText string
	closed   bool
}

// New opens a menu on its first selectable item.
func New(handler MenuHandler) *Menu {
	m := &Menu{handler: handler}
	m.Reset()
	return m
}

// Reset reopens the menu with the selection on its first selectable item.
func (m *Menu) Reset() {
	m.selected = 0
	m.helpText = ""
	m.closed = false
	for i, item := range m.Items() {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
}

func (m *Menu) Title() string     { return m.handler.GetTitle() }
func (m *Menu) Items() []MenuItem { return m.handler.GetMenuItems() }
func (m *Menu) Selected() int     { return m.selected }
func (m *Menu) Closed() bool      { return m.closed }

// HelpText returns the message left by the last activation, or the selected
// item's own help text.
func (m *Menu) HelpText() string {
	if m.helpText != "" {
		return m.helpText
	}
	items := m.Items()
	if m.selected < len(items) {
		return items[m.selected].GetHelpText()
	}
	return ""
}

// HandleIntent applies one intent. Up and down move the selection with
// wrap-around, select activates, back closes the menu.
func (m *Menu) HandleIntent(intent engineinput.Intent) {
	if m.closed {
		return
	}
	switch intent.Action {
	case engineinput.ActionUp:
		m.move(-1)
	case engineinput.ActionDown:
		m.move(1)
	case engineinput.ActionSelect:
		items := m.Items()
		if m.selected >= len(items) || !items[m.selected].IsSelectable() {
			return
		}
		shouldClose, helpText := m.handler.OnActivate(items[m.selected], m.selected)
		m.helpText = helpText
		if shouldClose {
			m.close()
		}
	case engineinput.ActionBack:
		m.close()
	}
}

func (m *Menu) close() {
	m.closed = true
	m.helpText = ""
	m.handler.OnExit()
}

// move steps to the next selectable item in direction delta, wrapping
// around the ends. The selection stays put if nothing else is selectable.
func (m *Menu) move(delta int) {
	items := m.Items()
	n := len(items)
	for i := 1; i < n; i++ {
		next := ((m.selected+delta*i)%n + n) % n
		if items[next].IsSelectable() {
			m.selected = next
			m.helpText = ""
			return
		}
	}
}
