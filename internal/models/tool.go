// internal/models/tool.go
package models

import (
	"context"
	"strings"
)

// Family is the rendering category a tool belongs to. It is set at
// registration time and drives results-view selection.
type Family string

const (
	FamilyTitles         Family = "titles"
	FamilyTransformation Family = "transformation"
	FamilyOutline        Family = "outline"
	FamilyThumbnail      Family = "thumbnail"
	FamilyScript         Family = "script"
)

// FieldOption is one choice of a select field.
type FieldOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// Field describes one input form field of a tool.
type Field struct {
	Type        string        `json:"type"` // "text", "textarea", "select"
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder,omitempty"`
	Required    bool          `json:"required,omitempty"`
	Rows        int           `json:"rows,omitempty"`
	MinLength   int           `json:"minLength,omitempty"`
	MaxLength   int           `json:"maxLength,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// ToolConfig is the declarative configuration a pipeline is built from.
// One value of this type fully describes a tool; there is no per-tool code.
type ToolConfig struct {
	Name               string
	Description        string
	Icon               string // inline SVG markup
	Family             Family
	SystemPrompt       string
	UserPromptTemplate string
	Fields             map[string]Field
	FieldOrder         []string
	ResponseSchema     string // schema name, "" for freeform text
	Tips               []string
	Benefits           []string
}

// Processor runs one generation request end to end. Implementations must
// never return an error or panic; every failure terminates in Result.Error.
type Processor interface {
	Process(ctx context.Context, inputs map[string]string) Result
}

// Tool is a registered tool: its descriptor plus processing pipeline.
// Constructed once at startup, immutable afterwards.
type Tool struct {
	ToolConfig
	Processor Processor
}

// ID returns the registry key, derived deterministically from the name.
func (t *Tool) ID() string {
	return ToolID(t.Name)
}

// Route returns the URL path the tool is served under.
func (t *Tool) Route() string {
	return "/tools/" + t.ID()
}

// ToolID derives a tool id from a display name (lowercased, spaces to hyphens).
func ToolID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
