package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/minesweeper/internal/core/mines"
)

// Symbol returns the single-character glyph drawn for a token.
func Symbol(t mines.Token) string {
	switch t {
	case mines.TokenHidden:
		return "#"
	case mines.TokenFlagged:
		return "F"
	case mines.TokenMine:
		return "*"
	}
	n, ok := t.Count()
	if !ok {
		return "?"
	}
	if n == 0 {
		return "."
	}
	return strconv.Itoa(n)
}

// RenderGrid writes the grid with row indices on the left and column
// indices (mod 10) on top. The first row sets the width; short rows are
// padded with hidden cells.
func RenderGrid(w io.Writer, grid mines.DisplayGrid) error {
	if len(grid) == 0 {
		return nil
	}
	width := len(strconv.Itoa(len(grid) - 1))
	pad := strings.Repeat(" ", width)

	var b strings.Builder
	b.WriteString(pad)
	for c := range grid[0] {
		fmt.Fprintf(&b, " %d", c%10)
	}
	b.WriteByte('\n')
	for r := range grid {
		fmt.Fprintf(&b, "%*d", width, r)
		for c := range grid[0] {
			b.WriteByte(' ')
			b.WriteString(Symbol(grid.At(r, c)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
