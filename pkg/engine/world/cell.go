package world

// Cell is the content of one grid square. Values of CellSolid and above are
// solid walls whose value is the remaining durability.
type Cell int16

const (
	CellHuman Cell = -2
	CellItem  Cell = -1
	CellEmpty Cell = 0
	CellSolid Cell = 1

	// DefaultCellDurability is the value every wall starts with.
	DefaultCellDurability Cell = 50
)

// IsSolid returns true for walls of any durability.
func (c Cell) IsSolid() bool {
	return c >= CellSolid
}

// IsObjective returns true for the consumable mission payload cells.
func (c Cell) IsObjective() bool {
	return c == CellHuman || c == CellItem
}

// String returns a short label, mostly for logs and test failures
func (c Cell) String() string {
	switch {
	case c == CellHuman:
		return "Human"
	case c == CellItem:
		return "Item"
	case c == CellEmpty:
		return "Empty"
	case c.IsSolid():
		return "Solid"
	default:
		return "Unknown"
	}
}
