package world

import "github.com/zyedidia/generic/mapset"

// MaxVisibilityDepth is how many cells ahead a character can see.
const MaxVisibilityDepth = 6

// LineOfSight reports whether from and to share a row or column no more than
// maxDepth steps apart, with every cell strictly between them passing clear.
func LineOfSight(from, to Point, maxDepth int, clear func(Point) bool) bool {
	var d Direction
	switch {
	case from == to:
		return false
	case from.X == to.X && to.Y < from.Y:
		d = North
	case from.X == to.X:
		d = South
	case from.Y == to.Y && to.X > from.X:
		d = East
	case from.Y == to.Y:
		d = West
	default:
		return false
	}

	for i := 1; i <= maxDepth; i++ {
		p := from.Step(d, i)
		if p == to {
			return true
		}
		if !clear(p) {
			return false
		}
	}
	return false
}

// Reachable returns every non-solid cell 4-connected to start.
func Reachable(g *Grid, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if g.CellType(start).IsSolid() {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range AllDirections() {
			n := current.Step(d, 1)
			if visited.Has(n) || g.CellType(n).IsSolid() {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
