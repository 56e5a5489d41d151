// internal/common/validation/fields.go
package validation

import (
	"fmt"
	"sort"

	"bit-tools/internal/models"
)

// Error codes attached to field validation failures.
const (
	CodeRequired  = "required"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodeBadOption = "invalid_option"
)

// ValidateFields checks form inputs against a tool's field specs and returns
// detailed error triples in the tool's declared field order, so error lists
// render stably. Fields absent from order are checked last, by name. An
// empty slice means the inputs are valid.
func ValidateFields(inputs map[string]string, fields map[string]models.Field, order []string) []models.ValidationError {
	var errs []models.ValidationError

	for _, fieldID := range fieldSequence(fields, order) {
		field := fields[fieldID]
		value := inputs[fieldID]

		if field.Required && value == "" {
			errs = append(errs, models.ValidationError{
				Field:   fieldID,
				Code:    CodeRequired,
				Message: fmt.Sprintf("%s is required", labelOf(fieldID, field)),
			})
			continue
		}

		if value == "" {
			continue
		}

		if field.MinLength > 0 && len(value) < field.MinLength {
			errs = append(errs, models.ValidationError{
				Field:   fieldID,
				Code:    CodeMinLength,
				Message: fmt.Sprintf("%s must be at least %d characters", labelOf(fieldID, field), field.MinLength),
			})
		}
		if field.MaxLength > 0 && len(value) > field.MaxLength {
			errs = append(errs, models.ValidationError{
				Field:   fieldID,
				Code:    CodeMaxLength,
				Message: fmt.Sprintf("%s exceeds maximum length of %d", labelOf(fieldID, field), field.MaxLength),
			})
		}

		if field.Type == "select" && len(field.Options) > 0 && !hasOption(field.Options, value) {
			errs = append(errs, models.ValidationError{
				Field:   fieldID,
				Code:    CodeBadOption,
				Message: fmt.Sprintf("%s has an invalid value", labelOf(fieldID, field)),
			})
		}
	}

	return errs
}

// fieldSequence lists the field IDs to check: declared order first, then any
// remaining fields sorted by name.
func fieldSequence(fields map[string]models.Field, order []string) []string {
	seq := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, fieldID := range order {
		if _, ok := fields[fieldID]; ok && !seen[fieldID] {
			seq = append(seq, fieldID)
			seen[fieldID] = true
		}
	}
	var rest []string
	for fieldID := range fields {
		if !seen[fieldID] {
			rest = append(rest, fieldID)
		}
	}
	sort.Strings(rest)
	return append(seq, rest...)
}

func labelOf(fieldID string, field models.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return fieldID
}

func hasOption(options []models.FieldOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
