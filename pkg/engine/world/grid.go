package world

// Grid dimensions. Every mission location has the same fixed size.
const (
	GridWidth  = 15
	GridHeight = 15
)

// Grid is a mission location. Cells are addressed [x][y].
type Grid struct {
	cells [GridWidth][GridHeight]Cell
}

// NewGrid creates a grid where every cell is a full-strength wall
func NewGrid() *Grid {
	g := &Grid{}
	g.Fill(DefaultCellDurability)
	return g
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for x := 0; x < GridWidth; x++ {
		for y := 0; y < GridHeight; y++ {
			g.cells[x][y] = c
		}
	}
}

// IsOutOfBounds returns true if p is not a cell of the grid.
func IsOutOfBounds(p Point) bool {
	return p.X < 0 || p.X >= GridWidth || p.Y < 0 || p.Y >= GridHeight
}

// CellType returns the cell at p. Anything outside the grid reads as a
// full-strength wall.
func (g *Grid) CellType(p Point) Cell {
	if IsOutOfBounds(p) {
		return DefaultCellDurability
	}
	return g.cells[p.X][p.Y]
}

// SetCellType overwrites the cell at p. Writes outside the grid are dropped.
func (g *Grid) SetCellType(p Point, c Cell) {
	if IsOutOfBounds(p) {
		return
	}
	g.cells[p.X][p.Y] = c
}

// ForEachCell calls fn for every cell, column by column.
func (g *Grid) ForEachCell(fn func(p Point, c Cell)) {
	for x := 0; x < GridWidth; x++ {
		for y := 0; y < GridHeight; y++ {
			fn(Point{X: x, Y: y}, g.cells[x][y])
		}
	}
}

// Cells exposes the raw storage for serialization.
func (g *Grid) Cells() *[GridWidth][GridHeight]Cell {
	return &g.cells
}
