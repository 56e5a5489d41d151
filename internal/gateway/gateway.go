// Package gateway is the boundary component that calls the external LLM
// completion API (OpenRouter). Everything provider-shaped stays behind it:
// request bodies, response attribute guessing, structured-output plumbing.
package gateway

import (
	"context"

	"bit-tools/internal/schema"
)

// Request is one completion request.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	// Schema, when set, asks the provider for structured output and is used
	// to decode it. Nil means freeform text.
	Schema *schema.Definition
}

// Response carries exactly one of: a decoded structured value, plain text,
// or an error. When Err is set nothing else may be trusted.
type Response struct {
	Structured schema.Structured
	Text       string
	Err        error
}

// Generator sends a completion request. Implementations report failures in
// Response.Err rather than returning an error, so callers have a single
// result shape to thread through normalization.
type Generator interface {
	Generate(ctx context.Context, req Request) *Response
}
