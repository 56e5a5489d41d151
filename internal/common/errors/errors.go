// Package errors provides standardized error handling for the generation pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeTemplateError    ErrorCode = "TEMPLATE_ERROR"

	ErrCodeGatewayError   ErrorCode = "GATEWAY_ERROR"
	ErrCodeGatewayTimeout ErrorCode = "GATEWAY_TIMEOUT"
	ErrCodeEmptyResponse  ErrorCode = "EMPTY_RESPONSE"

	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"
	ErrCodeRenderError    ErrorCode = "RENDER_ERROR"

	ErrCodeHistoryWriteFailed ErrorCode = "HISTORY_WRITE_FAILED"
	ErrCodeAuditIndexFailed   ErrorCode = "AUDIT_INDEX_FAILED"
	ErrCodeCacheUnavailable   ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateError creates a non-retryable prompt template error. A template
// referencing a field absent from the inputs is a configuration bug, so this
// should be loud in logs while still degrading gracefully to the user.
func NewTemplateError(placeholder string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateError,
		Message:   "Prompt template references an unknown field",
		Details:   fmt.Sprintf("placeholder: %s", placeholder),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGatewayError creates a retryable LLM gateway error.
func NewGatewayError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGatewayError,
		Message:   "Language model request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGatewayTimeoutError creates a retryable gateway timeout error.
func NewGatewayTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGatewayTimeout,
		Message:   "Language model request timed out",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyResponseError signals the model returned no usable content.
func NewEmptyResponseError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyResponse,
		Message:   "Received empty response from AI",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaMismatchError records a structured parse failure. Recoverable:
// the normalizer downgrades to unstructured handling, never the user.
func NewSchemaMismatchError(schemaName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaMismatch,
		Message:   "Structured output did not match the expected schema",
		Details:   fmt.Sprintf("schema: %s, error: %s", schemaName, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderError creates a non-retryable results rendering error.
func NewRenderError(toolID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderError,
		Message:   "Failed to render results page",
		Details:   fmt.Sprintf("toolId: %s, error: %s", toolID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistoryWriteFailedError creates a retryable history store error.
func NewHistoryWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryWriteFailed,
		Message:   "Failed to persist generation record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditIndexFailedError creates a retryable audit indexing error.
func NewAuditIndexFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditIndexFailed,
		Message:   "Failed to index generation record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
