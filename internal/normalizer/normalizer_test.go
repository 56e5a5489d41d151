// internal/normalizer/normalizer_test.go
package normalizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/gateway"
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

func titleToolConfig() models.ToolConfig {
	return models.ToolConfig{
		Name:           "Title Generator",
		Family:         models.FamilyTitles,
		ResponseSchema: schema.GeneratedTitles,
		Fields: map[string]models.Field{
			"topic":    {Type: "text", Label: "Topic", Required: true},
			"platform": {Type: "select", Label: "Platform"},
		},
	}
}

func newTestNormalizer(t *testing.T) *Normalizer {
	return New(logger.NewTestLogger(t))
}

func TestNormalize_GatewayErrorPassesThrough(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Err: errors.NewGatewayTimeoutError()}
	result := n.Normalize("title-generator", titleToolConfig(), map[string]string{"topic": "go"}, resp)

	assert.True(t, result.Failed())
	assert.Equal(t, "The AI service took too long to respond. Please try again.", result.Error)
	assert.Empty(t, result.Titles)
	assert.Nil(t, result.Metadata)
}

func TestNormalize_StructuredTitles(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Structured: &models.GeneratedTitles{
		Titles: []string{"One", "Two", "Three"},
	}}
	inputs := map[string]string{"topic": "go", "platform": "YouTube", "csrf_token": "ignored"}
	result := n.Normalize("title-generator", titleToolConfig(), inputs, resp)

	require.False(t, result.Failed())
	assert.True(t, result.IsStructured)
	assert.Equal(t, []string{"One", "Two", "Three"}, result.Titles)

	// Only declared form fields survive into metadata.
	assert.Equal(t, "go", result.Metadata["topic"])
	assert.Equal(t, "YouTube", result.Metadata["platform"])
	assert.NotContains(t, result.Metadata, "csrf_token")
	assert.Equal(t, 3, result.Metadata["count"])
}

func TestNormalize_TitlesCappedAtTen(t *testing.T) {
	n := newTestNormalizer(t)

	titles := make([]string, 14)
	for i := range titles {
		titles[i] = fmt.Sprintf("Title %d", i+1)
	}
	resp := &gateway.Response{Structured: &models.GeneratedTitles{Titles: titles}}
	result := n.Normalize("title-generator", titleToolConfig(), nil, resp)

	assert.Len(t, result.Titles, 10)
	assert.Equal(t, "Title 10", result.Titles[9])
}

func TestNormalize_FencedJSONRecovered(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Text: "```json\n{\"titles\": [\"Fenced\"]}\n```"}
	result := n.Normalize("title-generator", titleToolConfig(), nil, resp)

	require.False(t, result.Failed())
	assert.True(t, result.IsStructured)
	assert.Equal(t, []string{"Fenced"}, result.Titles)
	assert.Empty(t, result.RawText)
}

func TestNormalize_SchemaFallbackToText(t *testing.T) {
	n := newTestNormalizer(t)

	text := "Here are some titles:\n1. First\n2. Second\n"
	resp := &gateway.Response{Text: text}
	result := n.Normalize("title-generator", titleToolConfig(), nil, resp)

	require.False(t, result.Failed())
	assert.False(t, result.IsStructured)
	assert.Equal(t, []string{"Here are some titles:", "1. First", "2. Second"}, result.Titles)
	assert.Equal(t, text, result.RawText)
}

func TestNormalize_FreeformTool(t *testing.T) {
	n := newTestNormalizer(t)

	cfg := models.ToolConfig{
		Name:   "Text Rewriter",
		Family: models.FamilyTransformation,
		Fields: map[string]models.Field{"text": {Type: "textarea", Label: "Text", Required: true}},
	}
	resp := &gateway.Response{Text: "Rewritten output."}
	result := n.Normalize("text-rewriter", cfg, map[string]string{"text": "original"}, resp)

	require.False(t, result.Failed())
	assert.False(t, result.IsStructured)
	assert.Equal(t, []string{"Rewritten output."}, result.Titles)
	assert.Equal(t, "Rewritten output.", result.RawText)
}

func TestNormalize_SocialPosts(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Structured: &models.SocialPostList{Posts: []models.SocialPost{
		{Platform: "Twitter", Content: "Short and punchy"},
		{Content: "No platform given"},
	}}}
	result := n.Normalize("social-post-generator", models.ToolConfig{Family: models.FamilyTitles}, nil, resp)

	assert.Equal(t, []string{"Twitter: Short and punchy", "No platform given"}, result.Titles)
}

func TestNormalize_ThumbnailIdeas(t *testing.T) {
	n := newTestNormalizer(t)

	ideas := make([]models.ThumbnailIdea, 7)
	for i := range ideas {
		ideas[i] = models.ThumbnailIdea{
			Background: fmt.Sprintf("bg %d", i+1),
			MainImage:  "image",
			Text:       "TEXT",
		}
	}
	ideas[0].AdditionalElements = "arrow overlay"
	resp := &gateway.Response{Structured: &models.ThumbnailIdeas{Ideas: ideas}}
	result := n.Normalize("thumbnail-idea-generator", models.ToolConfig{Family: models.FamilyThumbnail}, nil, resp)

	assert.Len(t, result.Ideas, 5)
	// Each idea is a six-line block: heading, four labeled lines, separator.
	assert.Len(t, result.Titles, 30)
	assert.Equal(t, "**Thumbnail Idea 1:**", result.Titles[0])
	assert.Equal(t, "- **Background:** bg 1", result.Titles[1])
	assert.Equal(t, "- **Main Image:** image", result.Titles[2])
	assert.Equal(t, "- **Text:** TEXT", result.Titles[3])
	assert.Equal(t, "- **Elements:** arrow overlay", result.Titles[4])
	assert.Equal(t, "---", result.Titles[5])
	// The Elements line is always present, with N/A when nothing was given.
	assert.Equal(t, "- **Elements:** N/A", result.Titles[10])
	assert.Equal(t, "**Thumbnail Idea 5:**", result.Titles[24])
}

func TestNormalize_BlogOutline(t *testing.T) {
	n := newTestNormalizer(t)

	outline := &models.BlogOutline{
		Introduction: &models.OutlineSection{Title: "Intro", Points: []string{"hook"}},
		MainSections: []models.OutlineSection{
			{
				Title:  "Body",
				Points: []string{"a", "b"},
				Subsections: []models.OutlineSection{
					{Title: "Deep Dive", Points: []string{"detail"}},
				},
			},
		},
		Conclusion: &models.OutlineSection{Title: "Wrap Up", Points: []string{"cta"}},
	}
	outline.Consolidate()

	resp := &gateway.Response{Structured: outline}
	result := n.Normalize("blog-outline-generator", models.ToolConfig{Family: models.FamilyOutline}, nil, resp)

	assert.Equal(t, []string{
		"## Intro",
		"- hook",
		"## Main Sections",
		"### Body",
		"- a",
		"- b",
		"#### Deep Dive",
		"- detail",
		"## Wrap Up",
		"- cta",
	}, result.Titles)
	require.NotNil(t, result.Introduction)
	assert.Len(t, result.MainSections, 1)
}

func TestNormalize_YoutubeScript(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Structured: &models.YoutubeScript{
		Script:            "Welcome back everyone.",
		Hooks:             []string{"hook one"},
		InputBias:         []string{"after testing this"},
		OpenLoopQuestions: []string{"what happens next?"},
	}}
	result := n.Normalize("youtube-script-generator", models.ToolConfig{Family: models.FamilyScript}, nil, resp)

	// Every section is preceded by a separator.
	assert.Equal(t, []string{
		"### SCRIPT:",
		"Welcome back everyone.",
		"---",
		"### HOOKS:",
		"- hook one",
		"---",
		"### INPUT BIAS:",
		"- after testing this",
		"---",
		"### OPEN LOOP QUESTIONS:",
		"- what happens next?",
	}, result.Titles)
	assert.Equal(t, "Welcome back everyone.", result.Script)
}

type customContent struct {
	Summary string `json:"summary"`
	Score   int    `json:"score"`
}

func (c *customContent) Consolidate() {}

func TestNormalize_UnknownContentType(t *testing.T) {
	n := newTestNormalizer(t)

	resp := &gateway.Response{Structured: &customContent{Summary: "fine", Score: 7}}
	result := n.Normalize("custom", models.ToolConfig{Family: models.FamilyTitles}, nil, resp)

	assert.Equal(t, []string{"score: 7", "summary: fine"}, result.Titles)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{`{"a": 1}`, `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFences(tt.in))
	}
}

func TestNormalize_DefaultsFillEmptyStructures(t *testing.T) {
	n := newTestNormalizer(t)

	ideas := &models.ThumbnailIdeas{}
	ideas.Consolidate()
	resp := &gateway.Response{Structured: ideas}
	result := n.Normalize("thumbnail-idea-generator", models.ToolConfig{Family: models.FamilyThumbnail}, nil, resp)

	require.Len(t, result.Ideas, 1)
	assert.Equal(t, "Default blue gradient background", result.Ideas[0].Background)
	assert.True(t, strings.HasPrefix(result.Titles[0], "**Thumbnail Idea 1:**"))
}
