package mines

import (
	"errors"
	"math/rand"
	"strconv"
)

// neighborOffsets lists the eight Chebyshev-distance-1 offsets as (row, column).
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// errMissingRandomSource indicates Generate was called without a random source.
var errMissingRandomSource = errors.New("random source is required")

// Board is a rectangular matrix of cells stored in row-major order.
type Board struct {
	dims  Dimensions
	cells []Cell
}

// Generate builds a board with bombs mines placed uniformly at random.
//
// Mine positions are drawn with a partial Fisher-Yates shuffle over all cell
// indices, so every subset of the requested size is equally likely and the
// layout is fully determined by the state of rng.
//
// Rows and columns must be at least 1 and bombs must satisfy
// 0 < bombs < rows*columns; otherwise ErrInvalidConfiguration is returned
// and no board is produced. There is no first-click safety.
func Generate(rows, columns, bombs int, rng *rand.Rand) (*Board, error) {
	dims := Dimensions{Rows: rows, Columns: columns, Bombs: bombs}
	if err := ValidateDimensions(dims); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errMissingRandomSource
	}
	return layoutBoard(dims, sampleMines(dims.Cells(), bombs, rng)), nil
}

// NewBoardFromLayout builds a board with mines at the given positions.
// Positions must be on the board and distinct.
func NewBoardFromLayout(rows, columns int, mines []Position) (*Board, error) {
	dims := Dimensions{Rows: rows, Columns: columns, Bombs: len(mines)}
	if err := ValidateDimensions(dims); err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(mines))
	seen := make(map[int]struct{}, len(mines))
	for _, p := range mines {
		if p.Row < 0 || p.Row >= rows || p.Column < 0 || p.Column >= columns {
			return nil, configurationError("mine", p.String(), ReasonOutsideBoard)
		}
		idx := p.Row*columns + p.Column
		if _, dup := seen[idx]; dup {
			return nil, configurationError("mine", p.String(), ReasonDuplicate)
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}
	return layoutBoard(dims, indices), nil
}

// sampleMines picks k distinct indices from [0, n).
func sampleMines(n, k int, rng *rand.Rand) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func layoutBoard(dims Dimensions, mineIndices []int) *Board {
	b := &Board{
		dims:  dims,
		cells: make([]Cell, dims.Cells()),
	}
	for i := range b.cells {
		b.cells[i].Position = Position{Row: i / dims.Columns, Column: i % dims.Columns}
	}
	for _, idx := range mineIndices {
		b.cells[idx].Mine = true
	}
	b.countAdjacentMines()
	return b
}

func (b *Board) countAdjacentMines() {
	var buf [8]int
	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		count := 0
		for _, n := range b.neighbors(i, buf[:0]) {
			if b.cells[n].Mine {
				count++
			}
		}
		b.cells[i].AdjacentMines = count
	}
}

// neighbors appends the in-bounds neighbour indices of cell i to dst.
func (b *Board) neighbors(i int, dst []int) []int {
	row, col := i/b.dims.Columns, i%b.dims.Columns
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if b.Contains(r, c) {
			dst = append(dst, r*b.dims.Columns+c)
		}
	}
	return dst
}

// Contains reports whether (row, column) lies on the board.
func (b *Board) Contains(row, column int) bool {
	return row >= 0 && row < b.dims.Rows && column >= 0 && column < b.dims.Columns
}

// Cell returns a copy of the cell at (row, column).
func (b *Board) Cell(row, column int) (Cell, error) {
	if !b.Contains(row, column) {
		return Cell{}, outOfBoundsError(row, column, b.dims)
	}
	return b.cells[b.index(row, column)], nil
}

func (b *Board) index(row, column int) int {
	return row*b.dims.Columns + column
}

// String renders the full layout: '*' for mines, adjacency digits otherwise.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.dims.Columns+1)*b.dims.Rows)
	for i, c := range b.cells {
		if c.Mine {
			buf = append(buf, '*')
		} else {
			buf = strconv.AppendInt(buf, int64(c.AdjacentMines), 10)
		}
		if (i+1)%b.dims.Columns == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
