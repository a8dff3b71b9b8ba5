package mines

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/minesweeper/internal/platform/errors"
)

// Operation names a mutating engine operation for error reporting.
type Operation string

const (
	// OperationReveal is CheckCell.
	OperationReveal Operation = "reveal"
	// OperationFlag is FlagCell.
	OperationFlag Operation = "flag"
)

// Reasons attached to error metadata under the "Reason" key.
const (
	ReasonGameOver    = "game_over"
	ReasonCellFlagged = "cell_flagged"
	ReasonTransition  = "transition"

	ReasonUnknown      = "unknown"
	ReasonRequired     = "required"
	ReasonTooLarge     = "too_large"
	ReasonNotPositive  = "not_positive"
	ReasonNoSafeCell   = "no_safe_cell"
	ReasonOutsideBoard = "outside_board"
	ReasonDuplicate    = "duplicate"
)

var reasonText = map[string]string{
	ReasonUnknown:      "unknown difficulty",
	ReasonRequired:     "required for custom difficulty",
	ReasonTooLarge:     "board has too many cells",
	ReasonNotPositive:  "must be positive",
	ReasonNoSafeCell:   "must leave at least one safe cell",
	ReasonOutsideBoard: "position is outside the board",
	ReasonDuplicate:    "duplicate position",
}

var (
	// ErrInvalidConfiguration indicates an unknown difficulty or an invalid
	// dimension or bomb count. No engine is produced.
	ErrInvalidConfiguration = apperrors.New(apperrors.CodeMinesInvalidConfiguration, "invalid game configuration")
	// ErrOutOfBounds indicates a row or column outside the board.
	ErrOutOfBounds = apperrors.New(apperrors.CodeMinesOutOfBounds, "cell is out of bounds")
	// ErrIllegalState indicates a mutation the current game state forbids.
	ErrIllegalState = apperrors.New(apperrors.CodeMinesIllegalState, "operation not allowed in current state")
)

func configurationError(field string, value string, reason string) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeMinesInvalidConfiguration,
		fmt.Sprintf("invalid %s %q: %s", field, value, reasonText[reason]),
		map[string]string{
			"Field":  field,
			"Value":  value,
			"Reason": reason,
		},
	)
}

func outOfBoundsError(row, column int, dims Dimensions) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeMinesOutOfBounds,
		fmt.Sprintf("cell (%d, %d) is outside a %dx%d board", row, column, dims.Rows, dims.Columns),
		map[string]string{
			"Row":     strconv.Itoa(row),
			"Column":  strconv.Itoa(column),
			"Rows":    strconv.Itoa(dims.Rows),
			"Columns": strconv.Itoa(dims.Columns),
		},
	)
}

func gameOverError(op Operation, status Status) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeMinesIllegalState,
		fmt.Sprintf("cannot %s: game is %s", op, status),
		map[string]string{"Operation": string(op), "Status": status.String(), "Reason": ReasonGameOver},
	)
}

func flaggedCellError(row, column int) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeMinesIllegalState,
		fmt.Sprintf("cannot reveal flagged cell (%d, %d)", row, column),
		map[string]string{
			"Operation": string(OperationReveal),
			"Row":       strconv.Itoa(row),
			"Column":    strconv.Itoa(column),
			"Reason":    ReasonCellFlagged,
		},
	)
}
