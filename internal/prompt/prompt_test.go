// internal/prompt/prompt_test.go
package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/common/errors"
)

func TestFormat(t *testing.T) {
	out, err := Format("Create 10 {platform} titles about: {topic}.", map[string]string{
		"platform": "YouTube",
		"topic":    "sourdough baking",
	})
	require.NoError(t, err)
	assert.Equal(t, "Create 10 YouTube titles about: sourdough baking.", out)
}

func TestFormat_RepeatedPlaceholder(t *testing.T) {
	out, err := Format("{name} said: {name}!", map[string]string{"name": "echo"})
	require.NoError(t, err)
	assert.Equal(t, "echo said: echo!", out)
}

func TestFormat_TrimsWhitespace(t *testing.T) {
	out, err := Format("  {text}  \n", map[string]string{"text": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestFormat_MissingInputIsTemplateError(t *testing.T) {
	_, err := Format("Write about {topic} in {tone} tone.", map[string]string{"topic": "go"})
	require.Error(t, err)

	std := errors.Classify(err)
	assert.Equal(t, errors.ErrCodeTemplateError, std.Code)
	assert.Contains(t, std.Details, "tone")
}

func TestFormat_EmptyValueIsNotMissing(t *testing.T) {
	out, err := Format("Tone: {tone}.", map[string]string{"tone": ""})
	require.NoError(t, err)
	assert.Equal(t, "Tone: .", out)
}

func TestPlaceholders(t *testing.T) {
	names := Placeholders("{a} then {b} then {a} again, and finally {c_2}")
	assert.Equal(t, []string{"a", "b", "c_2"}, names)
}

func TestPlaceholders_NoneFound(t *testing.T) {
	assert.Empty(t, Placeholders("a plain sentence"))
}
