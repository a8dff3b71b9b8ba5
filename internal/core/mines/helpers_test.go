package mines

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/minesweeper/internal/platform/errors"
)

func fieldOf(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Metadata["Field"]
	}
	return ""
}

func reasonOf(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Metadata["Reason"]
	}
	return ""
}

func mustLayout(t *testing.T, rows, columns int, mines ...Position) *Engine {
	t.Helper()
	e, err := NewFromLayout(rows, columns, mines)
	if err != nil {
		t.Fatalf("NewFromLayout() error = %v", err)
	}
	return e
}

func revealedCount(b *Board) int {
	n := 0
	for _, c := range b.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// minesOf returns the mine positions of b in row-major order.
func minesOf(b *Board) []Position {
	var out []Position
	for _, c := range b.cells {
		if c.Mine {
			out = append(out, c.Position)
		}
	}
	return out
}
