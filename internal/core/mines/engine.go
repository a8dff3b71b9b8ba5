package mines

import (
	"fmt"
	"math/rand"

	"github.com/louisbranch/minesweeper/internal/random"
)

// Engine is the stateful game instance a session owns.
//
// The board is created once at construction and mutated only through
// CheckCell and FlagCell. Status is re-evaluated after every mutation and
// never leaves won or lost.
type Engine struct {
	difficulty Difficulty
	board      *Board
	status     Status
}

// New resolves the difficulty and overrides, then generates a fresh board.
//
// A nil rng is replaced by one seeded from crypto/rand. Pass a seeded
// *rand.Rand for a reproducible layout.
func New(difficulty string, overrides Overrides, rng *rand.Rand) (*Engine, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	dims, err := Resolve(string(d), overrides)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seed mine layout: %w", err)
		}
		rng = random.NewRand(seed)
	}
	board, err := Generate(dims.Rows, dims.Columns, dims.Bombs, rng)
	if err != nil {
		return nil, err
	}
	return newEngine(d, board), nil
}

// NewFromLayout builds a custom engine with mines at fixed positions.
func NewFromLayout(rows, columns int, mines []Position) (*Engine, error) {
	board, err := NewBoardFromLayout(rows, columns, mines)
	if err != nil {
		return nil, err
	}
	return newEngine(DifficultyCustom, board), nil
}

func newEngine(d Difficulty, board *Board) *Engine {
	return &Engine{
		difficulty: d,
		board:      board,
		status:     StatusInProgress,
	}
}

// CheckCell reveals the cell at (row, column).
//
// Revealing a mine loses the game and exposes every mine. Revealing a cell
// with no adjacent mines cascades through the connected zero region and its
// border. An already revealed cell is a no-op. A flagged cell must be
// unflagged first.
func (e *Engine) CheckCell(row, column int) error {
	i, err := e.locate(row, column)
	if err != nil {
		return err
	}
	if err := e.requireInProgress(OperationReveal); err != nil {
		return err
	}

	c := e.board.cells[i]
	switch {
	case c.Flagged:
		return flaggedCellError(row, column)
	case c.Revealed:
		return nil
	case c.Mine:
		e.board.revealMines()
	default:
		e.board.reveal(i)
	}
	return e.settle()
}

// FlagCell toggles the flag on a hidden cell. It is a no-op on a revealed
// cell and never affects any other cell.
func (e *Engine) FlagCell(row, column int) error {
	i, err := e.locate(row, column)
	if err != nil {
		return err
	}
	if err := e.requireInProgress(OperationFlag); err != nil {
		return err
	}
	e.board.toggleFlag(i)
	return e.settle()
}

// CellIsFlagged reports whether the cell at (row, column) carries a flag.
// Queries are allowed in every status.
func (e *Engine) CellIsFlagged(row, column int) (bool, error) {
	cell, err := e.board.Cell(row, column)
	if err != nil {
		return false, err
	}
	return cell.Flagged, nil
}

// DisplayGrid returns a fresh snapshot of the board for presentation.
func (e *Engine) DisplayGrid() DisplayGrid {
	return e.board.display()
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Difficulty returns the difficulty the engine was built from.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Dimensions returns the resolved board geometry and mine count.
func (e *Engine) Dimensions() Dimensions {
	return e.board.dims
}

// NumRows returns the number of board rows.
func (e *Engine) NumRows() int { return e.board.dims.Rows }

// NumColumns returns the number of board columns.
func (e *Engine) NumColumns() int { return e.board.dims.Columns }

// NumBombs returns the number of mines placed on the board.
func (e *Engine) NumBombs() int { return e.board.dims.Bombs }

// Layout renders the hidden mine layout, one line per row: '*' for mines and
// adjacency digits elsewhere. It reveals the answer, so hosts should only show
// it once the game is over.
func (e *Engine) Layout() string {
	return e.board.String()
}

// RemainingMines returns the bomb count minus placed flags. It goes negative
// when more cells are flagged than there are mines.
func (e *Engine) RemainingMines() int {
	return e.board.dims.Bombs - e.board.flagCount()
}

func (e *Engine) locate(row, column int) (int, error) {
	if !e.board.Contains(row, column) {
		return 0, outOfBoundsError(row, column, e.board.dims)
	}
	return e.board.index(row, column), nil
}

func (e *Engine) requireInProgress(op Operation) error {
	if e.status != StatusInProgress {
		return gameOverError(op, e.status)
	}
	return nil
}

// settle re-derives the status after a mutation.
func (e *Engine) settle() error {
	next, err := transitionStatus(e.status, Evaluate(e.board))
	if err != nil {
		return err
	}
	e.status = next
	return nil
}
