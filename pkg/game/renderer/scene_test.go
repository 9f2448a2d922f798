package renderer

import (
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/projection"
	"spacemerc/pkg/game/state"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

// openSession puts the player in an all-floor mission at (7,7) facing
// north, with a wall directly ahead.
func openSession(t *testing.T) *state.Session {
	t.Helper()
	s := state.NewSession(config.Default(), rand.New(rand.NewSource(1)), zaptest.NewLogger(t))
	m := state.NewMission(state.Obliterate)
	m.Grid.Fill(world.CellEmpty)
	m.Entrance = world.Pt(0, 0)
	m.EntranceDirection = world.West
	s.Mission = m
	s.Player.Position = world.Pt(7, 7)
	s.Player.Direction = world.North
	s.Mission.Grid.SetCellType(world.Pt(7, 6), world.DefaultCellDurability)
	return s
}

func render(t *testing.T, sc *Scene, s *state.Session) *raster.Frame {
	t.Helper()
	b := Bounds()
	f := raster.NewFrame(b.Dx(), b.Dy())
	sc.Render(f, s)
	return f
}

func TestShadingOffset(t *testing.T) {
	cases := map[float64]int{
		0:   1,
		2:   1,
		3:   2,
		5:   2,
		6:   2,
		9:   3,
		16:  4,
		59:  11,
		-10: 1,
	}
	for v, want := range cases {
		assert.Equal(t, want, ShadingOffset(v), "v=%v", v)
	}
}

func TestFloorAndCeilingPattern(t *testing.T) {
	s := state.NewSession(config.Default(), rand.New(rand.NewSource(1)), nil)
	f := render(t, NewScene(projection.Build(), nil), s)

	// Row 0: offset 1, starting at x=1.
	assert.Equal(t, raster.Black, f.Pixel(0, 0))
	assert.Equal(t, raster.White, f.Pixel(1, 0))
	assert.Equal(t, raster.White, f.Pixel(143, 0))

	// Row 3: offset 2, odd rows start at 0. The floor mirrors it.
	for _, y := range []int{3, projection.GraphicsHeight - 3} {
		assert.Equal(t, raster.White, f.Pixel(0, y))
		assert.Equal(t, raster.Black, f.Pixel(1, y))
		assert.Equal(t, raster.White, f.Pixel(2, y))
	}

	// Nothing around the horizon.
	for x := 0; x < projection.ScreenWidth; x++ {
		assert.Equal(t, raster.Black, f.Pixel(x, 70))
	}
}

func TestBackWallShading(t *testing.T) {
	s := openSession(t)
	sc := NewScene(projection.Build(), nil)
	f := render(t, sc, s)

	// Edges of the wall straight ahead.
	assert.Equal(t, raster.Black, f.Pixel(40, 16))
	assert.Equal(t, raster.Black, f.Pixel(40, 120))
	assert.Equal(t, raster.Black, f.Pixel(16, 50), "corner line")

	// Offset 4 dither, odd columns shifted by 2.
	assert.Equal(t, raster.White, f.Pixel(20, 20))
	assert.Equal(t, raster.Black, f.Pixel(20, 21))
	assert.Equal(t, raster.White, f.Pixel(17, 18))
	assert.Equal(t, raster.Black, f.Pixel(17, 20))

	sc.Flashing = true
	inverted := render(t, sc, s)
	assert.Equal(t, raster.Black, inverted.Pixel(20, 20))
	assert.Equal(t, f.Pixel(30, 144), inverted.Pixel(30, 144), "status bar is not flashed")
}

func TestEntranceDoorway(t *testing.T) {
	s := openSession(t)
	s.Mission.Grid.SetCellType(world.Pt(7, 6), world.CellEmpty)
	s.Player.Position = world.Pt(0, 7)
	s.Player.Direction = world.West
	sc := NewScene(projection.Build(), nil)

	plain := render(t, sc, s)
	assert.Equal(t, raster.White, plain.Pixel(60, 60))

	s.Mission.Entrance = world.Pt(0, 7)
	door := render(t, sc, s)
	assert.Equal(t, raster.Black, door.Pixel(60, 60))
}

func TestSpritesDraw(t *testing.T) {
	sc := NewScene(projection.Build(), fixedClock(0))
	s := openSession(t)
	s.Mission.Grid.SetCellType(world.Pt(7, 6), world.CellEmpty)
	s.Mission.Grid.SetCellType(world.Pt(7, 4), world.DefaultCellDurability)
	empty := render(t, sc, s)

	for kind := state.NPCKind(0); int(kind) < state.NumNPCKinds; kind++ {
		s.Mission.NPCs[0] = state.NewNPC(kind, world.Pt(7, 6), &s.Player)
		f := render(t, sc, s)
		assert.NotEqual(t, empty.Rows(), f.Rows(), kind.String())
	}
	s.Mission.NPCs[0].Kind = state.NPCNone

	for _, c := range []world.Cell{world.CellItem, world.CellHuman} {
		s.Mission.Grid.SetCellType(world.Pt(7, 6), c)
		f := render(t, sc, s)
		assert.NotEqual(t, empty.Rows(), f.Rows(), c.String())
	}
}

func TestBeastMouthAnimates(t *testing.T) {
	s := openSession(t)
	s.Mission.Grid.SetCellType(world.Pt(7, 6), world.CellEmpty)
	s.Mission.NPCs[0] = state.NewNPC(state.Beast, world.Pt(7, 6), &s.Player)

	even := render(t, NewScene(projection.Build(), fixedClock(10)), s)
	odd := render(t, NewScene(projection.Build(), fixedClock(11)), s)
	again := render(t, NewScene(projection.Build(), fixedClock(12)), s)

	assert.NotEqual(t, even.Rows(), odd.Rows())
	assert.Equal(t, even.Rows(), again.Rows())
}

func TestLaser(t *testing.T) {
	s := openSession(t)
	sc := NewScene(projection.Build(), nil)
	s.WeaponAnimation = state.WeaponAnimationSteps
	s.LaserBaseWidth = state.MaxLaserBaseWidth
	f := render(t, sc, s)

	assert.Equal(t, raster.White, f.Pixel(72, 100))
	assert.Equal(t, raster.White, f.Pixel(72-5, 135))
	assert.Equal(t, raster.Black, f.Pixel(72-6, 135), "beam edge")
}

func TestStatusMeters(t *testing.T) {
	s := openSession(t)
	sc := NewScene(projection.Build(), nil)

	full := render(t, sc, s)
	assert.Equal(t, raster.White, full.Pixel(10, 140))
	assert.Equal(t, raster.White, full.Pixel(90, 140))

	s.Player.Stats[state.CurrentHP] = 0
	s.Player.Stats[state.CurrentEnergy] = s.Player.Stats[state.MaxEnergy] / 2
	drained := render(t, sc, s)
	assert.Equal(t, raster.Black, drained.Pixel(10, 140), "even column, even row")
	assert.Equal(t, raster.White, drained.Pixel(11, 140), "odd column starts a row lower")
	assert.Equal(t, raster.Black, drained.Pixel(11, 141))

	assert.Equal(t, raster.White, drained.Pixel(90, 140), "energy meter is half full")
	assert.Equal(t, raster.Black, drained.Pixel(130, 140))
}

func TestCompassNeedle(t *testing.T) {
	assert.Equal(t, []image.Point{{69, 141}, {75, 141}, {72, 150}}, CompassNeedle(world.South))
	assert.Equal(t, []image.Point{{75, 147}, {69, 147}, {72, 138}}, CompassNeedle(world.North))
	assert.Equal(t, []image.Point{{75, 141}, {75, 147}, {66, 144}}, CompassNeedle(world.West))
	assert.Equal(t, []image.Point{{69, 147}, {69, 141}, {78, 144}}, CompassNeedle(world.East))

	s := openSession(t)
	f := render(t, NewScene(projection.Build(), nil), s)
	require.Equal(t, raster.White, f.Pixel(72, 148), "compass face behind a north needle")
	assert.Equal(t, raster.Black, f.Pixel(72, 142))
}
