// Package normalizer converts gateway responses into the single Result
// shape the results views consume. Structured output is flattened into
// display lines per content type; anything that fails schema validation
// degrades to the unstructured text path instead of erroring.
package normalizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/common/metrics"
	"bit-tools/internal/gateway"
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

const (
	maxTitles         = 10
	maxPosts          = 10
	maxThumbnailIdeas = 5
)

// Code fences some models wrap JSON output in despite instructions.
var (
	leadingFence  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	trailingFence = regexp.MustCompile("\\s*```$")
)

// Normalizer builds Results from gateway responses.
type Normalizer struct {
	log logger.Logger
}

// New creates a Normalizer.
func New(log logger.Logger) *Normalizer {
	return &Normalizer{log: log.With(map[string]interface{}{"component": "normalizer"})}
}

// Normalize produces the Result for one generation. A gateway error passes
// through as a user-facing error message and nothing else; otherwise the
// result always carries at least one title.
func (n *Normalizer) Normalize(toolID string, cfg models.ToolConfig, inputs map[string]string, resp *gateway.Response) models.Result {
	if resp.Err != nil {
		return models.ErrorResult(errors.UserMessage(resp.Err))
	}

	var result models.Result

	switch {
	case resp.Structured != nil:
		result = n.flatten(resp.Structured)
		result.IsStructured = true

	case cfg.ResponseSchema != "":
		structured, ok := n.recover(toolID, cfg.ResponseSchema, resp.Text)
		if ok {
			result = n.flatten(structured)
			result.IsStructured = true
			break
		}
		result = unstructured(resp.Text)

	default:
		result = unstructured(resp.Text)
	}

	result.Metadata = buildMetadata(inputs, cfg.Fields, len(result.Titles))
	return result
}

// recover retries the schema decode after stripping markdown code fences.
// Failure is expected often enough that it is a warning, not an error.
func (n *Normalizer) recover(toolID, schemaName, text string) (schema.Structured, bool) {
	def, ok := schema.Lookup(schemaName)
	if !ok {
		n.log.Error("unknown response schema", map[string]interface{}{
			"tool_id": toolID,
			"schema":  schemaName,
		})
		return nil, false
	}

	structured, err := def.Decode(StripFences(text))
	if err != nil {
		metrics.SchemaFallbacksTotal.WithLabelValues(toolID).Inc()
		mismatch := errors.NewSchemaMismatchError(schemaName, err)
		n.log.Warn("structured decode failed, falling back to text", map[string]interface{}{
			"tool_id": toolID,
			"schema":  schemaName,
			"error":   mismatch.Error(),
		})
		return nil, false
	}
	return structured, true
}

// StripFences removes a wrapping markdown code fence, if any.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func unstructured(text string) models.Result {
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}
	if len(titles) == 0 {
		titles = []string{text}
	}
	return models.Result{
		Titles:  titles,
		RawText: text,
	}
}

func (n *Normalizer) flatten(value schema.Structured) models.Result {
	switch v := value.(type) {
	case *models.GeneratedTitles:
		return models.Result{Titles: capAt(v.Titles, maxTitles)}
	case *models.SocialPostList:
		return flattenPosts(v)
	case *models.ThumbnailIdeas:
		return flattenThumbnails(v)
	case *models.BlogOutline:
		return flattenOutline(v)
	case *models.YoutubeScript:
		return flattenScript(v)
	default:
		return flattenGeneric(value)
	}
}

func capAt(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func flattenPosts(list *models.SocialPostList) models.Result {
	titles := make([]string, 0, len(list.Posts))
	for _, post := range list.Posts {
		if post.Platform != "" {
			titles = append(titles, post.Platform+": "+post.Content)
		} else {
			titles = append(titles, post.Content)
		}
	}
	return models.Result{Titles: capAt(titles, maxPosts)}
}

func flattenThumbnails(ideas *models.ThumbnailIdeas) models.Result {
	all := ideas.Ideas
	if len(all) > maxThumbnailIdeas {
		all = all[:maxThumbnailIdeas]
	}
	var titles []string
	for i, idea := range all {
		titles = append(titles, fmt.Sprintf("**Thumbnail Idea %d:**", i+1))
		titles = append(titles, "- **Background:** "+idea.Background)
		titles = append(titles, "- **Main Image:** "+idea.MainImage)
		titles = append(titles, "- **Text:** "+idea.Text)
		elements := idea.AdditionalElements
		if elements == "" {
			elements = "N/A"
		}
		titles = append(titles, "- **Elements:** "+elements)
		titles = append(titles, "---")
	}
	return models.Result{
		Titles: titles,
		Ideas:  all,
	}
}

func flattenOutline(outline *models.BlogOutline) models.Result {
	var titles []string

	var appendSection func(prefix string, sec *models.OutlineSection)
	appendSection = func(prefix string, sec *models.OutlineSection) {
		titles = append(titles, prefix+" "+sec.Title)
		for _, point := range sec.Points {
			titles = append(titles, "- "+point)
		}
		for i := range sec.Subsections {
			appendSection(prefix+"#", &sec.Subsections[i])
		}
	}

	appendSection("##", outline.Introduction)
	titles = append(titles, "## Main Sections")
	for i := range outline.MainSections {
		appendSection("###", &outline.MainSections[i])
	}
	appendSection("##", outline.Conclusion)

	return models.Result{
		Titles:       titles,
		Introduction: outline.Introduction,
		MainSections: outline.MainSections,
		Conclusion:   outline.Conclusion,
	}
}

func flattenScript(script *models.YoutubeScript) models.Result {
	titles := []string{"### SCRIPT:", script.Script, "---", "### HOOKS:"}
	for _, hook := range script.Hooks {
		titles = append(titles, "- "+hook)
	}
	titles = append(titles, "---", "### INPUT BIAS:")
	for _, bias := range script.InputBias {
		titles = append(titles, "- "+bias)
	}
	titles = append(titles, "---", "### OPEN LOOP QUESTIONS:")
	for _, q := range script.OpenLoopQuestions {
		titles = append(titles, "- "+q)
	}
	return models.Result{
		Titles:            titles,
		Script:            script.Script,
		Hooks:             script.Hooks,
		InputBias:         script.InputBias,
		OpenLoopQuestions: script.OpenLoopQuestions,
	}
}

// flattenGeneric renders an unrecognized content type as "field: value"
// lines so a new schema still displays something before it gets a
// dedicated flattener.
func flattenGeneric(value schema.Structured) models.Result {
	raw, err := json.Marshal(value)
	if err != nil {
		return models.Result{Titles: []string{fmt.Sprintf("%v", value)}}
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Result{Titles: []string{string(raw)}}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var titles []string
	for _, k := range keys {
		titles = append(titles, fmt.Sprintf("%s: %v", k, fields[k]))
	}
	if len(titles) == 0 {
		titles = []string{string(raw)}
	}
	return models.Result{Titles: titles}
}

func buildMetadata(inputs map[string]string, fields map[string]models.Field, titleCount int) map[string]interface{} {
	metadata := make(map[string]interface{}, len(inputs)+1)
	for name, value := range inputs {
		if _, ok := fields[name]; ok {
			metadata[name] = value
		}
	}
	if _, ok := metadata["count"]; !ok {
		metadata["count"] = titleCount
	}
	return metadata
}
