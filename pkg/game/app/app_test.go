package app

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	engineinput "spacemerc/pkg/engine/input"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/gameplay"
	"spacemerc/pkg/game/narration"
	"spacemerc/pkg/game/state"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestApp(t *testing.T, firstRun bool) (*App, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := state.NewSession(config.Default(), rand.New(rand.NewSource(9)), zaptest.NewLogger(t))
	a := New(s, firstRun, Options{
		Clock:         clock.Now,
		CopyMap:       func(*state.Session) error { return nil },
		ScreenshotDir: t.TempDir(),
	})
	return a, clock
}

func press(a *App, actions ...engineinput.Action) {
	for _, act := range actions {
		a.HandleIntent(engineinput.Intent{Action: act})
	}
}

func TestFirstRunShowsIntro(t *testing.T) {
	a, _ := newTestApp(t, true)
	require.Equal(t, ScreenNarration, a.Screen())
	assert.Equal(t, narration.KindIntro, a.Page().Kind)

	press(a, engineinput.ActionSelect, engineinput.ActionSelect)
	assert.Equal(t, ScreenNarration, a.Screen())
	press(a, engineinput.ActionSelect)
	assert.Equal(t, ScreenMainMenu, a.Screen())
	assert.NotNil(t, a.Menu())
}

func TestNewMissionBriefingThenMission(t *testing.T) {
	a, _ := newTestApp(t, false)
	press(a, engineinput.ActionSelect)

	require.NotNil(t, a.Session.Mission)
	assert.Equal(t, ScreenNarration, a.Screen())
	assert.Equal(t, narration.KindBriefing, a.Page().Kind)
	assert.True(t, a.Session.Paused, "briefings pause the game")

	press(a, engineinput.ActionSelect)
	assert.Equal(t, ScreenMission, a.Screen())
	assert.False(t, a.Session.Paused)

	press(a, engineinput.ActionBack)
	assert.Equal(t, ScreenMainMenu, a.Screen())
	assert.True(t, a.Session.Paused)
	assert.Equal(t, "Continue", a.Menu().Items()[0].GetLabel())

	press(a, engineinput.ActionSelect)
	assert.Equal(t, ScreenMission, a.Screen(), "continue skips the briefing")
}

func TestUpgradeMenuFlow(t *testing.T) {
	a, _ := newTestApp(t, false)
	a.Session.Player.Money = 10_000

	press(a, engineinput.ActionDown, engineinput.ActionSelect)
	require.Equal(t, ScreenUpgrades, a.Screen())
	press(a, engineinput.ActionSelect)
	assert.Equal(t, 15, a.Session.Player.Stats[state.Armor])

	press(a, engineinput.ActionBack)
	assert.Equal(t, ScreenMainMenu, a.Screen())
}

func TestControlsAndAboutReturnToMenu(t *testing.T) {
	a, _ := newTestApp(t, false)
	press(a, engineinput.ActionDown, engineinput.ActionDown, engineinput.ActionSelect)
	require.Equal(t, ScreenNarration, a.Screen())
	assert.Equal(t, narration.KindControls, a.Page().Kind)
	press(a, engineinput.ActionBack)
	assert.Equal(t, ScreenMainMenu, a.Screen())
	assert.Equal(t, 0, a.Menu().Selected(), "returning resets the selection")

	press(a, engineinput.ActionUp, engineinput.ActionUp, engineinput.ActionSelect)
	assert.Equal(t, narration.KindAbout, a.Page().Kind)
}

func TestBackOnMainMenuQuits(t *testing.T) {
	a, _ := newTestApp(t, false)
	press(a, engineinput.ActionBack)
	assert.True(t, a.Quit())
}

func enterMission(t *testing.T, a *App) {
	t.Helper()
	press(a, engineinput.ActionSelect, engineinput.ActionSelect)
	require.Equal(t, ScreenMission, a.Screen())
}

func TestTicksFollowTheClock(t *testing.T) {
	a, clock := newTestApp(t, false)
	enterMission(t, a)
	a.Session.Player.Stats[state.CurrentEnergy] = 1

	assert.False(t, a.Update())
	clock.Advance(a.Session.Config.Simulation.TickInterval)
	assert.True(t, a.Update())
	assert.Equal(t, 2, a.Session.Player.Stats[state.CurrentEnergy])

	a.SetFocused(false)
	assert.True(t, a.Session.Paused)
	clock.Advance(10 * a.Session.Config.Simulation.TickInterval)
	assert.False(t, a.Update())
	assert.Equal(t, 2, a.Session.Player.Stats[state.CurrentEnergy])

	a.SetFocused(true)
	assert.False(t, a.Session.Paused)
}

func TestWeaponAnimationSteps(t *testing.T) {
	a, clock := newTestApp(t, false)
	enterMission(t, a)
	step := a.Session.Config.Simulation.AnimationStep

	press(a, engineinput.ActionSelect)
	require.Equal(t, state.WeaponAnimationSteps, a.Session.WeaponAnimation)

	a.Update()
	clock.Advance(step)
	assert.True(t, a.Update())
	assert.Equal(t, 1, a.Session.WeaponAnimation)
	assert.Equal(t, state.MinLaserBaseWidth, a.Session.LaserBaseWidth)
	clock.Advance(step)
	assert.True(t, a.Update())
	assert.Equal(t, 0, a.Session.WeaponAnimation)
}

func TestFlashLastsFlashDuration(t *testing.T) {
	a, clock := newTestApp(t, false)
	enterMission(t, a)

	a.Flash()
	assert.True(t, a.Update())
	assert.True(t, a.scene.Flashing)
	clock.Advance(a.Session.Config.Simulation.FlashDuration)
	assert.True(t, a.Update())
	assert.False(t, a.scene.Flashing)
}

func TestDeathNarratesAndReturnsToMenu(t *testing.T) {
	a, clock := newTestApp(t, false)
	enterMission(t, a)

	s := a.Session
	m := s.Mission
	front := s.Player.Position.Step(s.Player.Direction, 1)
	for i := range m.NPCs {
		m.NPCs[i].Kind = state.NPCNone
	}
	m.Grid.SetCellType(front, world.CellEmpty)
	require.True(t, gameplay.AddNewNPC(s, state.AlienOfficer, front))
	s.Player.Stats[state.CurrentHP] = 1

	clock.Advance(s.Config.Simulation.TickInterval)
	a.Update()
	require.Nil(t, s.Mission)
	assert.Equal(t, ScreenNarration, a.Screen())
	assert.Equal(t, narration.KindDeath, a.Page().Kind)

	press(a, engineinput.ActionSelect)
	assert.Equal(t, ScreenMainMenu, a.Screen())
	assert.Equal(t, "New Mission", a.Menu().Items()[0].GetLabel())
}

func TestDeveloperKeys(t *testing.T) {
	a, _ := newTestApp(t, false)

	press(a, engineinput.ActionMapDump)
	assert.Equal(t, "Mission map copied to clipboard", a.Status())

	a.opts.CopyMap = func(*state.Session) error { return errors.New("no clipboard") }
	press(a, engineinput.ActionMapDump)
	assert.Equal(t, "Map dump failed", a.Status())

	press(a, engineinput.ActionScreenshot)
	entries, err := os.ReadDir(a.opts.ScreenshotDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStatusExpires(t *testing.T) {
	a, clock := newTestApp(t, false)
	press(a, engineinput.ActionMapDump)
	clock.Advance(statusDuration + time.Second)
	assert.Empty(t, a.Status())
}

func TestTitleFollowsScreen(t *testing.T) {
	a, clock := newTestApp(t, false)
	assert.Equal(t, "SpaceMerc", a.Title())

	press(a, engineinput.ActionSelect)
	assert.Empty(t, a.Title(), "narration pages have no header")

	press(a, engineinput.ActionSelect)
	require.Equal(t, ScreenMission, a.Screen())
	assert.Equal(t, fmt.Sprintf("Kills: 0/%d", a.Session.Mission.Quota), a.Title())

	press(a, engineinput.ActionMapDump)
	assert.Equal(t, "Mission map copied to clipboard", a.Title())
	clock.Advance(statusDuration + time.Millisecond)
	assert.Contains(t, a.Title(), "Kills:")
}

func TestMessagesOnlyDuringMission(t *testing.T) {
	a, _ := newTestApp(t, false)
	a.Session.AddMessage("stale")
	assert.Nil(t, a.Messages())

	enterMission(t, a)
	assert.Empty(t, a.Messages(), "a new mission starts with an empty log")
	gameplay.DamagePlayer(a.Session, 1)
	assert.Equal(t, []string{"Hit for 2 damage"}, a.Messages())
}
