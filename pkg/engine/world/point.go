package world

import "fmt"

// Point is a cell address. It may lie outside the grid.
type Point struct {
	X, Y int
}

// NoPoint is returned by searches that found nothing.
var NoPoint = Point{X: -1, Y: -1}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Step returns the point distance cells away from p in direction d.
func (p Point) Step(d Direction, distance int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*distance, Y: p.Y + dy*distance}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsAdjacent reports whether p and q are orthogonal neighbours.
// Diagonal neighbours do not count.
func IsAdjacent(p, q Point) bool {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	return dx+dy == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
