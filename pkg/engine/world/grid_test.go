package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfBoundsReadsAsSolid(t *testing.T) {
	g := NewGrid()
	g.Fill(CellEmpty)

	for _, p := range []Point{Pt(-1, 0), Pt(0, -1), Pt(GridWidth, 3), Pt(4, GridHeight), NoPoint} {
		assert.True(t, IsOutOfBounds(p), "%v", p)
		assert.True(t, g.CellType(p).IsSolid(), "%v", p)
	}
	assert.False(t, g.CellType(Pt(0, 0)).IsSolid())
}

func TestSetCellTypeIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid()
	g.SetCellType(Pt(-3, 2), CellEmpty)
	g.SetCellType(Pt(2, 2), CellItem)

	assert.Equal(t, CellItem, g.CellType(Pt(2, 2)))
	assert.Equal(t, DefaultCellDurability, g.CellType(Pt(2, 3)))
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"north", Pt(5, 5), Pt(5, 4), true},
		{"east", Pt(5, 5), Pt(6, 5), true},
		{"diagonal", Pt(5, 5), Pt(6, 6), false},
		{"same", Pt(5, 5), Pt(5, 5), false},
		{"two away", Pt(5, 5), Pt(5, 7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdjacent(tt.p, tt.q))
		})
	}
}

func TestDirectionRotations(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Left().Right(), d.String())
		assert.Equal(t, d.Opposite(), d.Left().Left(), d.String())
		assert.Equal(t, Pt(3, 3), Pt(3, 3).Step(d, 2).Step(d.Opposite(), 2), d.String())
	}
	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, West.Left())
	assert.Equal(t, East, South.Left())
	assert.Equal(t, North, East.Left())
	assert.Equal(t, North, West.Next())
}

func TestLineOfSight(t *testing.T) {
	g := NewGrid()
	g.Fill(CellEmpty)
	g.SetCellType(Pt(5, 3), DefaultCellDurability)
	clear := func(p Point) bool { return !g.CellType(p).IsSolid() }

	assert.True(t, LineOfSight(Pt(1, 1), Pt(1, 6), 6, clear))
	assert.False(t, LineOfSight(Pt(1, 1), Pt(1, 8), 6, clear), "beyond depth")
	assert.False(t, LineOfSight(Pt(5, 1), Pt(5, 5), 6, clear), "wall between")
	assert.False(t, LineOfSight(Pt(1, 1), Pt(2, 2), 6, clear), "diagonal")
	assert.True(t, LineOfSight(Pt(9, 1), Pt(4, 1), 6, clear))
}

func TestReachable(t *testing.T) {
	g := NewGrid()
	for x := 0; x < 5; x++ {
		g.SetCellType(Pt(x, 2), CellEmpty)
	}
	g.SetCellType(Pt(9, 9), CellEmpty)

	got := Reachable(g, Pt(0, 2))
	require.Equal(t, 5, got.Size())
	assert.True(t, got.Has(Pt(4, 2)))
	assert.False(t, got.Has(Pt(9, 9)))
	assert.Equal(t, 0, Reachable(g, Pt(7, 7)).Size())
}
