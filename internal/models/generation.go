// internal/models/generation.go
package models

import "time"

// GenerationRecord is the persisted trace of one processed request, written
// to the history store and the audit index.
type GenerationRecord struct {
	ID           string        `json:"id"`
	ToolID       string        `json:"toolId"`
	Inputs       Metadata      `json:"inputs,omitempty"`
	IsStructured bool          `json:"isStructured"`
	TitleCount   int           `json:"titleCount"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"durationMs"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Metadata is a loose string-keyed map, used for input echoes.
type Metadata map[string]interface{}
