// internal/common/validation/fields_test.go
package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/models"
)

func topicFields() map[string]models.Field {
	return map[string]models.Field{
		"topic": {
			Type:      "textarea",
			Label:     "What's your content about?",
			Required:  true,
			MinLength: 3,
			MaxLength: 500,
		},
		"platform": {
			Type:  "select",
			Label: "Platform",
			Options: []models.FieldOption{
				{Value: "YouTube", Label: "YouTube"},
				{Value: "Article", Label: "Article"},
			},
		},
	}
}

func topicFieldOrder() []string {
	return []string{"topic", "platform"}
}

func TestValidateFields_Valid(t *testing.T) {
	errs := ValidateFields(map[string]string{
		"topic":    "gardening for beginners",
		"platform": "YouTube",
	}, topicFields(), topicFieldOrder())
	assert.Empty(t, errs)
}

func TestValidateFields_Required(t *testing.T) {
	errs := ValidateFields(map[string]string{"platform": "YouTube"}, topicFields(), topicFieldOrder())
	require.Len(t, errs, 1)
	assert.Equal(t, "topic", errs[0].Field)
	assert.Equal(t, CodeRequired, errs[0].Code)
	assert.Equal(t, "What's your content about? is required", errs[0].Message)
}

func TestValidateFields_MinLength(t *testing.T) {
	errs := ValidateFields(map[string]string{"topic": "ab"}, topicFields(), topicFieldOrder())
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMinLength, errs[0].Code)
}

func TestValidateFields_MaxLength(t *testing.T) {
	errs := ValidateFields(map[string]string{"topic": strings.Repeat("x", 501)}, topicFields(), topicFieldOrder())
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMaxLength, errs[0].Code)
}

func TestValidateFields_InvalidSelectOption(t *testing.T) {
	errs := ValidateFields(map[string]string{
		"topic":    "gardening for beginners",
		"platform": "MySpace",
	}, topicFields(), topicFieldOrder())
	require.Len(t, errs, 1)
	assert.Equal(t, "platform", errs[0].Field)
	assert.Equal(t, CodeBadOption, errs[0].Code)
}

func TestValidateFields_OptionalEmptySkipsChecks(t *testing.T) {
	errs := ValidateFields(map[string]string{"topic": "a valid topic"}, topicFields(), topicFieldOrder())
	assert.Empty(t, errs)
}

func TestValidateFields_ErrorsFollowFieldOrder(t *testing.T) {
	fields := map[string]models.Field{
		"alpha": {Type: "text", Required: true},
		"beta":  {Type: "text", Required: true},
		"gamma": {Type: "text", Required: true},
		"delta": {Type: "text", Required: true},
	}
	order := []string{"gamma", "alpha"}

	for i := 0; i < 5; i++ {
		errs := ValidateFields(map[string]string{}, fields, order)
		require.Len(t, errs, 4)
		// Declared order first, then remaining fields by name.
		assert.Equal(t, "gamma", errs[0].Field)
		assert.Equal(t, "alpha", errs[1].Field)
		assert.Equal(t, "beta", errs[2].Field)
		assert.Equal(t, "delta", errs[3].Field)
	}
}

func TestValidateFields_LabelFallsBackToFieldID(t *testing.T) {
	fields := map[string]models.Field{
		"tone": {Type: "text", Required: true},
	}
	errs := ValidateFields(map[string]string{}, fields, []string{"tone"})
	require.Len(t, errs, 1)
	assert.Equal(t, "tone is required", errs[0].Message)
}
