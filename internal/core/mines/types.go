package mines

import "fmt"

// Position addresses one cell by zero-based row and column.
type Position struct {
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Cell holds the state of one grid position.
type Cell struct {
	Position
	// Mine reports whether revealing the cell loses the game.
	Mine bool
	// AdjacentMines counts mines among the up to eight neighbours.
	// It is zero and unused for mine cells.
	AdjacentMines int
	Revealed      bool
	Flagged       bool
}

// Dimensions is a resolved (rows, columns, bombs) triple.
type Dimensions struct {
	Rows    int
	Columns int
	Bombs   int
}

// Cells returns the total number of cells.
func (d Dimensions) Cells() int {
	return d.Rows * d.Columns
}

// SafeCells returns the number of cells without a mine.
func (d Dimensions) SafeCells() int {
	return d.Cells() - d.Bombs
}

// Overrides carries optional caller-supplied dimension fields.
// A nil field keeps the preset value.
type Overrides struct {
	Rows    *int
	Columns *int
	Bombs   *int
}

// IntPtr returns a pointer to v. It is a convenience for building Overrides.
func IntPtr(v int) *int {
	return &v
}
