// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Game configuration errors: unknown difficulty, bad dimensions or bomb count.
	CodeMinesInvalidConfiguration Code = "MINES_INVALID_CONFIGURATION"

	// Coordinate errors
	CodeMinesOutOfBounds Code = "MINES_OUT_OF_BOUNDS"

	// State errors: move after the game ended, reveal on a flagged cell.
	CodeMinesIllegalState Code = "MINES_ILLEGAL_STATE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeMinesInvalidConfiguration:
		return codes.InvalidArgument

	// OutOfRange - coordinates past the board edge
	case CodeMinesOutOfBounds:
		return codes.OutOfRange

	// FailedPrecondition - state doesn't allow operation
	case CodeMinesIllegalState:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
