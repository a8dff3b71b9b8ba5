package mines

import "strconv"

// Token is the presentation value of one cell.
type Token string

const (
	TokenHidden  Token = "hidden"
	TokenFlagged Token = "flagged"
	TokenMine    Token = "mine"
)

// CountToken returns the token for a revealed safe cell with n adjacent mines.
func CountToken(n int) Token {
	return Token(strconv.Itoa(n))
}

// Count returns the adjacency count carried by a revealed safe cell token.
func (t Token) Count() (int, bool) {
	switch t {
	case TokenHidden, TokenFlagged, TokenMine:
		return 0, false
	}
	n, err := strconv.Atoi(string(t))
	if err != nil || n < 0 || n > 8 {
		return 0, false
	}
	return n, true
}

// DisplayGrid is a read-only projection of the board, indexed [row][column].
type DisplayGrid [][]Token

// At returns the token at (row, column), or TokenHidden when out of range.
func (g DisplayGrid) At(row, column int) Token {
	if row < 0 || row >= len(g) || column < 0 || column >= len(g[row]) {
		return TokenHidden
	}
	return g[row][column]
}

// display builds a fresh DisplayGrid from the board.
func (b *Board) display() DisplayGrid {
	grid := make(DisplayGrid, b.dims.Rows)
	for r := range grid {
		row := make([]Token, b.dims.Columns)
		for c := range row {
			row[c] = cellToken(b.cells[b.index(r, c)])
		}
		grid[r] = row
	}
	return grid
}

func cellToken(c Cell) Token {
	switch {
	case c.Revealed && c.Mine:
		return TokenMine
	case c.Revealed:
		return CountToken(c.AdjacentMines)
	case c.Flagged:
		return TokenFlagged
	default:
		return TokenHidden
	}
}
