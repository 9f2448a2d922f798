package projection

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenterSlots(t *testing.T) {
	table := Build()
	wantTop := []int{16, 30, 42, 52, 60}
	for depth, top := range wantTop {
		s := table.Slot(depth, StraightAhead)
		assert.Equal(t, image.Pt(top, top), s.TL, "depth %d", depth)
		assert.Equal(t, image.Pt(ScreenWidth-top, GraphicsHeight-top), s.BR, "depth %d", depth)
	}
}

func TestLateralSlotsAbut(t *testing.T) {
	table := Build()
	for depth := 0; depth < NumDepths; depth++ {
		for pos := 1; pos < NumSlots; pos++ {
			left, right := table.Slot(depth, pos-1), table.Slot(depth, pos)
			assert.Equal(t, left.BR.X, right.TL.X)
			assert.Equal(t, left.TL.Y, right.TL.Y)
			assert.Equal(t, left.Width(), right.Width())
		}
	}
	assert.Equal(t, image.Pt(16-112, 16), table.Slot(0, 4).TL)
	assert.Equal(t, image.Pt(102, 42), table.Slot(2, 6).TL)
}

func TestSlotOutOfRange(t *testing.T) {
	table := Build()
	assert.Equal(t, Slot{}, table.Slot(NumDepths, 0))
	assert.Equal(t, Slot{}, table.Slot(0, -1))
}

func TestDrawingUnit(t *testing.T) {
	table := Build()
	// Widths are 112, 84, 60, 40 and 24.
	assert.Equal(t, []int{11, 8, 6, 4, 2}, []int{
		table.DrawingUnit(0, StraightAhead),
		table.DrawingUnit(1, StraightAhead),
		table.DrawingUnit(2, StraightAhead),
		table.DrawingUnit(3, StraightAhead),
		table.DrawingUnit(4, StraightAhead),
	})
}

func TestFloorCenter(t *testing.T) {
	table := Build()
	assert.Equal(t, image.Pt(72, GraphicsHeight), table.FloorCenter(0, StraightAhead))
	assert.Equal(t, image.Pt((-40-72)/2, GraphicsHeight), table.FloorCenter(0, 4))
	assert.Equal(t, image.Pt((184+216)/2, GraphicsHeight), table.FloorCenter(0, 6))
	assert.Equal(t, image.Pt(72, (106+120)/2), table.FloorCenter(1, StraightAhead))
}
