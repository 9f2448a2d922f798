// Package app is the frontend-independent game host. It owns the screen
// flow between menus, narration and the mission view, runs the tick and
// animation timers, and turns session events into narration. Frontends feed
// it intents and clock updates from a single goroutine and draw whatever
// screen it reports.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	engineinput "spacemerc/pkg/engine/input"
	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/game/devtools"
	"spacemerc/pkg/game/gameplay"
	"spacemerc/pkg/game/menu"
	"spacemerc/pkg/game/narration"
	"spacemerc/pkg/game/projection"
	"spacemerc/pkg/game/renderer"
	"spacemerc/pkg/game/state"
)

// Screen is what the frontend should currently show.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenUpgrades
	ScreenNarration
	ScreenMission
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenUpgrades:
		return "Upgrades"
	case ScreenNarration:
		return "Narration"
	case ScreenMission:
		return "Mission"
	default:
		return "Unknown"
	}
}

const statusDuration = 3 * time.Second

// Options wires the host to its frontend.
type Options struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Vibrate is called when the player is hit with damage vibes on.
	Vibrate func()
	// CopyMap defaults to devtools.CopyMissionDump.
	CopyMap func(*state.Session) error
	// ScreenshotDir is where F12 writes PNGs; empty means the working
	// directory.
	ScreenshotDir string
}

// App hosts one session.
type App struct {
	Session *state.Session

	opts  Options
	scene *renderer.Scene
	frame *raster.Frame

	mainHandler *menu.MainMenuHandler
	mainMenu    *menu.Menu
	upgradeMenu *menu.Menu

	screen     Screen
	pages      []narration.Page
	afterPages Screen
	focused    bool
	quit       bool

	nextTick      time.Time
	nextAnimation time.Time
	flashUntil    time.Time

	status      string
	statusUntil time.Time
}

// New creates a host on the main menu and registers it as the session's
// feedback sink. With firstRun the intro pages are shown first.
func New(s *state.Session, firstRun bool, opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CopyMap == nil {
		opts.CopyMap = devtools.CopyMissionDump
	}
	a := &App{
		Session:     s,
		opts:        opts,
		scene:       renderer.NewScene(projection.Build(), opts.Clock),
		frame:       raster.NewFrame(renderer.Bounds().Dx(), renderer.Bounds().Dy()),
		mainHandler: menu.NewMainMenuHandler(s),
		upgradeMenu: menu.New(menu.NewUpgradeMenuHandler(s)),
		focused:     true,
	}
	a.mainMenu = menu.New(a.mainHandler)
	s.Feedback = a
	a.setScreen(ScreenMainMenu)
	if firstRun {
		a.showPages(ScreenMainMenu, narration.Intro()...)
	}
	return a
}

// Flash starts the damage flash.
func (a *App) Flash() {
	a.flashUntil = a.opts.Clock().Add(a.Session.Config.Simulation.FlashDuration)
}

// Vibrate forwards to the frontend's vibration hook.
func (a *App) Vibrate() {
	if a.opts.Vibrate != nil {
		a.opts.Vibrate()
	}
}

func (a *App) Screen() Screen { return a.screen }
func (a *App) Quit() bool     { return a.quit }

// Menu returns the open menu, or nil outside the menu screens.
func (a *App) Menu() *menu.Menu {
	switch a.screen {
	case ScreenMainMenu:
		return a.mainMenu
	case ScreenUpgrades:
		return a.upgradeMenu
	}
	return nil
}

// Page returns the narration page being shown.
func (a *App) Page() narration.Page {
	if len(a.pages) == 0 {
		return narration.Page{}
	}
	return a.pages[0]
}

// Status returns a short-lived developer message, or "".
func (a *App) Status() string {
	if a.opts.Clock().After(a.statusUntil) {
		return ""
	}
	return a.status
}

// Title is the header line for the current screen. A pending status
// message takes its place.
func (a *App) Title() string {
	if msg := a.Status(); msg != "" {
		return msg
	}
	switch a.screen {
	case ScreenMainMenu, ScreenUpgrades:
		return a.Menu().Title()
	case ScreenMission:
		if m := a.Session.Mission; m != nil {
			return fmt.Sprintf("Kills: %d/%d", m.Kills, m.Quota)
		}
	}
	return ""
}

// Messages returns the combat log while a mission is on screen.
func (a *App) Messages() []string {
	if a.screen != ScreenMission || a.Session.Mission == nil {
		return nil
	}
	return a.Session.Messages
}

// Frame renders the mission view into the host's frame and returns it.
func (a *App) Frame() *raster.Frame {
	a.scene.Render(a.frame, a.Session)
	return a.frame
}

// SetFocused pauses the mission while the window is in the background.
func (a *App) SetFocused(focused bool) {
	if a.focused == focused {
		return
	}
	a.focused = focused
	a.Session.Log.Debug("focus changed", zap.Bool("focused", focused))
	a.updatePause()
}

// HandleIntent routes one intent to the current screen.
func (a *App) HandleIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return
	case engineinput.ActionQuit:
		a.quit = true
		a.setScreen(ScreenMainMenu)
		return
	case engineinput.ActionMapDump:
		a.copyMap()
		return
	case engineinput.ActionScreenshot:
		a.screenshot()
		return
	}

	switch a.screen {
	case ScreenMainMenu:
		a.mainMenu.HandleIntent(intent)
		if a.mainMenu.Closed() {
			a.quit = true
			return
		}
		if action, ok := a.mainHandler.TakeAction(); ok {
			a.runMainAction(action)
		}
	case ScreenUpgrades:
		a.upgradeMenu.HandleIntent(intent)
		if a.upgradeMenu.Closed() {
			a.setScreen(ScreenMainMenu)
		}
	case ScreenNarration:
		if intent.Action == engineinput.ActionSelect || intent.Action == engineinput.ActionBack {
			a.nextPage()
		}
	case ScreenMission:
		if intent.Action == engineinput.ActionBack {
			a.setScreen(ScreenMainMenu)
			return
		}
		gameplay.ProcessIntent(a.Session, intent)
		a.collectEvents()
	}
}

// Update advances the timers to the current time. It reports whether the
// mission view changed.
func (a *App) Update() bool {
	now := a.opts.Clock()
	redraw := false

	if flashing := now.Before(a.flashUntil); flashing != a.scene.Flashing {
		a.scene.Flashing = flashing
		redraw = true
	}
	if a.screen != ScreenMission || a.Session.Paused {
		return redraw
	}
	sim := a.Session.Config.Simulation

	if a.Session.WeaponAnimation > 0 {
		switch {
		case a.nextAnimation.IsZero():
			a.nextAnimation = now.Add(sim.AnimationStep)
		case !now.Before(a.nextAnimation):
			gameplay.AdvanceWeaponAnimation(a.Session)
			a.nextAnimation = now.Add(sim.AnimationStep)
			if a.Session.WeaponAnimation == 0 {
				a.nextAnimation = time.Time{}
			}
			redraw = true
		}
	}

	if !now.Before(a.nextTick) {
		a.nextTick = now.Add(sim.TickInterval)
		if gameplay.Tick(a.Session) {
			redraw = true
		}
		a.collectEvents()
	}
	return redraw
}

func (a *App) runMainAction(action menu.MainMenuAction) {
	switch action {
	case menu.MainMenuActionMission:
		if a.Session.Mission != nil {
			a.setScreen(ScreenMission)
			return
		}
		if err := gameplay.StartRandomMission(a.Session); err != nil {
			a.Session.Log.Error("starting mission", zap.Error(err))
			return
		}
		a.collectEvents()
	case menu.MainMenuActionUpgrade:
		a.upgradeMenu.Reset()
		a.setScreen(ScreenUpgrades)
	case menu.MainMenuActionControls:
		a.showPages(ScreenMainMenu, narration.Page{Kind: narration.KindControls, Text: narration.Controls()})
	case menu.MainMenuActionAbout:
		a.showPages(ScreenMainMenu, narration.Page{Kind: narration.KindAbout, Text: narration.About()})
	}
}

// collectEvents narrates queued session events. A briefing leads into the
// mission; death and conclusion lead back to the main menu.
func (a *App) collectEvents() {
	for _, ev := range a.Session.DrainEvents() {
		after := ScreenMainMenu
		if ev.Kind == state.EventMissionStarted {
			after = ScreenMission
		}
		a.showPages(after, narration.ForEvent(ev))
	}
}

func (a *App) showPages(after Screen, pages ...narration.Page) {
	a.pages = append(a.pages, pages...)
	a.afterPages = after
	a.setScreen(ScreenNarration)
}

func (a *App) nextPage() {
	if len(a.pages) > 0 {
		a.pages = a.pages[1:]
	}
	if len(a.pages) == 0 {
		a.setScreen(a.afterPages)
	}
}

// setScreen switches screens. Entering the mission view resets its timers
// and clears any leftover laser or flash.
func (a *App) setScreen(sc Screen) {
	if sc == ScreenMission && a.Session.Mission == nil {
		sc = ScreenMainMenu
	}
	if sc == ScreenMission && a.screen != ScreenMission {
		now := a.opts.Clock()
		a.nextTick = now.Add(a.Session.Config.Simulation.TickInterval)
		a.nextAnimation = time.Time{}
		a.flashUntil = time.Time{}
		a.scene.Flashing = false
		a.Session.WeaponAnimation = 0
	}
	if sc == ScreenMainMenu && a.screen != ScreenMainMenu {
		a.mainMenu.Reset()
	}
	a.screen = sc
	a.updatePause()
}

// updatePause runs the simulation only while the mission view is shown and
// the window has focus.
func (a *App) updatePause() {
	a.Session.Paused = !(a.screen == ScreenMission && a.focused && a.Session.Mission != nil)
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = a.opts.Clock().Add(statusDuration)
}

func (a *App) copyMap() {
	if err := a.opts.CopyMap(a.Session); err != nil {
		a.Session.Log.Warn("map dump failed", zap.Error(err))
		a.setStatus("Map dump failed")
		return
	}
	a.setStatus("Mission map copied to clipboard")
}

func (a *App) screenshot() {
	dir := a.opts.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	path, err := devtools.SaveScreenshot(a.Frame(), dir, a.opts.Clock())
	if err != nil {
		a.Session.Log.Warn("screenshot failed", zap.Error(err))
		a.setStatus("Screenshot failed")
		return
	}
	a.Session.Log.Info("screenshot saved", zap.String("path", path))
	a.setStatus("Saved " + path)
}
