// internal/common/errors/handler.go
package errors

import (
	"context"
	goerrors "errors"
)

// Classify maps an arbitrary error to a StandardError. Already-standard
// errors pass through; context deadline errors become gateway timeouts;
// everything else becomes a generic gateway error.
func Classify(err error) *StandardError {
	var std *StandardError
	if goerrors.As(err, &std) {
		return std
	}
	if goerrors.Is(err, context.DeadlineExceeded) {
		return NewGatewayTimeoutError()
	}
	return NewGatewayError(err)
}

// UserMessage returns the message shown to the end user for an error.
// Internal details stay in logs.
func UserMessage(err error) string {
	std := Classify(err)
	switch std.Code {
	case ErrCodeGatewayTimeout:
		return "The AI service took too long to respond. Please try again."
	case ErrCodeGatewayError:
		return "Error generating content: " + std.Details
	case ErrCodeEmptyResponse:
		return "Received empty response from AI."
	case ErrCodeTemplateError:
		return "This tool is misconfigured. Please try another tool."
	default:
		return std.Message
	}
}

// IsRetryable reports whether retrying the operation could succeed.
func IsRetryable(err error) bool {
	return Classify(err).Retryable
}
