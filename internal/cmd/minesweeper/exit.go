package minesweeper

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/minesweeper/internal/platform/config"
	apperrors "github.com/louisbranch/minesweeper/internal/platform/errors"
)

// Failure maps a run error to a process exit code and the message printed
// before exiting. Engine errors go through their gRPC status, so the exit
// code follows the status code and the text is the localized detail.
func Failure(err error, locale string) (int, string) {
	if err == nil {
		return 0, ""
	}
	st := status.Convert(apperrors.HandleError(err, locale))
	message := fmt.Sprintf("minesweeper: %v", err)
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok {
			message = localized.GetMessage()
		}
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return config.ExitUsage, message
	default:
		return config.ExitFailure, message
	}
}
