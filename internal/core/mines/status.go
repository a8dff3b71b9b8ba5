package mines

import (
	"fmt"

	apperrors "github.com/louisbranch/minesweeper/internal/platform/errors"
)

// Status describes the lifecycle of a game.
type Status int

const (
	// StatusUnspecified represents an invalid status value.
	StatusUnspecified Status = iota
	// StatusInProgress indicates the game accepts moves.
	StatusInProgress
	// StatusWon indicates every safe cell is revealed.
	StatusWon
	// StatusLost indicates a mine was revealed.
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unspecified"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Evaluate derives the status from board state alone.
//
// A revealed mine means lost. Otherwise the game is won once the number of
// revealed cells equals rows*columns - bombs. The loss check runs first.
func Evaluate(b *Board) Status {
	revealed := 0
	for _, c := range b.cells {
		if !c.Revealed {
			continue
		}
		if c.Mine {
			return StatusLost
		}
		revealed++
	}
	if revealed == b.dims.SafeCells() {
		return StatusWon
	}
	return StatusInProgress
}

// transitionStatus validates a status change. Terminal states only map to
// themselves.
func transitionStatus(from, to Status) (Status, error) {
	if !isStatusTransitionAllowed(from, to) {
		return from, apperrors.WithMetadata(
			apperrors.CodeMinesIllegalState,
			fmt.Sprintf("status transition not allowed: %s -> %s", from, to),
			map[string]string{"FromStatus": from.String(), "ToStatus": to.String(), "Reason": ReasonTransition},
		)
	}
	return to, nil
}

func isStatusTransitionAllowed(from, to Status) bool {
	switch from {
	case StatusInProgress:
		return to == StatusInProgress || to == StatusWon || to == StatusLost
	case StatusWon, StatusLost:
		return to == from
	default:
		return false
	}
}
