// internal/models/result.go
package models

// ValidationError describes one failed input constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the normalized outcome of one generation request. It is the
// single shape every results view consumes. Created per request, never
// persisted past the response that renders it.
//
// Titles is always populated on success, even as a single-element fallback.
// Error is set exclusively on failure; when present no other field should
// be trusted. RawText is retained only on the unstructured fallback path.
type Result struct {
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	Titles           []string               `json:"titles,omitempty"`
	Error            string                 `json:"error,omitempty"`
	ValidationErrors []ValidationError      `json:"validation_errors,omitempty"`
	IsStructured     bool                   `json:"is_structured"`
	RawText          string                 `json:"raw_text,omitempty"`

	// Transformation family.
	OriginalText    string `json:"original_text,omitempty"`
	TransformedText string `json:"transformed_text,omitempty"`

	// Thumbnail family.
	Ideas []ThumbnailIdea `json:"ideas,omitempty"`

	// Script family.
	Script            string   `json:"script,omitempty"`
	Hooks             []string `json:"hooks,omitempty"`
	InputBias         []string `json:"input_bias,omitempty"`
	OpenLoopQuestions []string `json:"open_loop_questions,omitempty"`

	// Outline family.
	Introduction *OutlineSection  `json:"introduction,omitempty"`
	MainSections []OutlineSection `json:"main_sections,omitempty"`
	Conclusion   *OutlineSection  `json:"conclusion,omitempty"`
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// ErrorResult builds a failure result.
func ErrorResult(msg string) Result {
	return Result{Error: msg}
}
