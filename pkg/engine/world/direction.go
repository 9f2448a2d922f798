package world

// Direction represents a cardinal direction. The numeric order is part of the
// saved mission and player layout, so new values must only ever be appended.
type Direction int

// Direction constants
const (
	North Direction = iota
	South
	East
	West
)

// NumDirections is the number of cardinal directions.
const NumDirections = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Left returns the direction a quarter turn counter-clockwise from d.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return d
	}
}

// Right returns the direction a quarter turn clockwise from d.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// Next returns the following direction in enum order, wrapping West to North.
func (d Direction) Next() Direction {
	if d >= West || d < North {
		return North
	}
	return d + 1
}

// Delta returns the x and y offsets for one step in this direction.
// Screen convention: y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
