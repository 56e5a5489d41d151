// internal/factory/pipeline_test.go
package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/common/logger"
	"bit-tools/internal/gateway"
	"bit-tools/internal/models"
	"bit-tools/internal/schema"
)

type stubGenerator struct {
	resp    *gateway.Response
	calls   int
	lastReq gateway.Request
}

func (s *stubGenerator) Generate(_ context.Context, req gateway.Request) *gateway.Response {
	s.calls++
	s.lastReq = req
	return s.resp
}

type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, gateway.Request) *gateway.Response {
	panic("boom")
}

func titleConfig() models.ToolConfig {
	return models.ToolConfig{
		Name:               "Title Generator",
		Family:             models.FamilyTitles,
		SystemPrompt:       "You write titles.",
		UserPromptTemplate: "Generate titles about {topic} for {platform}.",
		ResponseSchema:     schema.GeneratedTitles,
		Fields: map[string]models.Field{
			"topic":    {Type: "text", Label: "Topic", Required: true, MinLength: 3},
			"platform": {Type: "select", Label: "Platform", Options: []models.FieldOption{{Value: "YouTube"}, {Value: "Article"}}},
		},
		FieldOrder: []string{"topic", "platform"},
	}
}

func rewriterConfig() models.ToolConfig {
	return models.ToolConfig{
		Name:               "Text Rewriter",
		Family:             models.FamilyTransformation,
		SystemPrompt:       "You rewrite text.",
		UserPromptTemplate: "Rewrite the following text:\n\n{text}",
		Fields: map[string]models.Field{
			"text": {Type: "textarea", Label: "Text", Required: true},
		},
		FieldOrder: []string{"text"},
	}
}

func TestProcess_Success(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Structured: &models.GeneratedTitles{
		Titles: []string{"First Title", "Second Title"},
	}}}
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"topic": "testing in go", "platform": "YouTube"})

	require.False(t, result.Failed())
	assert.Equal(t, []string{"First Title", "Second Title"}, result.Titles)
	assert.True(t, result.IsStructured)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "You write titles.", gen.lastReq.SystemPrompt)
	assert.Equal(t, "Generate titles about testing in go for YouTube.", gen.lastReq.UserPrompt)
	require.NotNil(t, gen.lastReq.Schema)
	assert.Equal(t, schema.GeneratedTitles, gen.lastReq.Schema.Name)
}

func TestProcess_ValidationFailureSkipsGateway(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Text: "should not be reached"}}
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"topic": ""})

	assert.Equal(t, "Validation failed", result.Error)
	require.NotEmpty(t, result.ValidationErrors)
	assert.Equal(t, "topic", result.ValidationErrors[0].Field)
	assert.Equal(t, "required", result.ValidationErrors[0].Code)
	assert.Zero(t, gen.calls)
}

func TestProcess_MinLengthViolation(t *testing.T) {
	gen := &stubGenerator{}
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"topic": "go"})

	assert.Equal(t, "Validation failed", result.Error)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "min_length", result.ValidationErrors[0].Code)
	assert.Zero(t, gen.calls)
}

func TestNewPipeline_UndeclaredPlaceholderPanics(t *testing.T) {
	cfg := titleConfig()
	cfg.UserPromptTemplate = "Generate titles about {topic} in {tone} tone."

	assert.Panics(t, func() {
		NewPipeline(cfg, &stubGenerator{}, logger.NewTestLogger(t))
	})
}

func TestProcess_ValidationErrorsFollowFieldOrder(t *testing.T) {
	cfg := titleConfig()
	cfg.Fields["platform"] = models.Field{Type: "select", Label: "Platform", Required: true,
		Options: []models.FieldOption{{Value: "YouTube"}}}
	gen := &stubGenerator{}
	p := NewPipeline(cfg, gen, logger.NewTestLogger(t))

	for i := 0; i < 5; i++ {
		result := p.Process(context.Background(), map[string]string{})
		require.Len(t, result.ValidationErrors, 2)
		assert.Equal(t, "topic", result.ValidationErrors[0].Field)
		assert.Equal(t, "platform", result.ValidationErrors[1].Field)
	}
	assert.Zero(t, gen.calls)
}

func TestProcess_TransformationEmptyText(t *testing.T) {
	gen := &stubGenerator{}
	p := NewPipeline(rewriterConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"text": "   "})

	assert.Equal(t, "Please provide text to transform.", result.Error)
	assert.Zero(t, gen.calls)
}

func TestProcess_Transformation(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Text: "A better version of the text.\n"}}
	p := NewPipeline(rewriterConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"text": "the original text"})

	require.False(t, result.Failed())
	assert.Equal(t, "the original text", result.OriginalText)
	assert.Equal(t, "A better version of the text.", result.TransformedText)
	assert.Equal(t, []string{"A better version of the text."}, result.Titles)
	assert.Equal(t, 1, result.Metadata["count"])
	assert.Nil(t, gen.lastReq.Schema)
}

func TestProcess_GatewayErrorBecomesResultError(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Err: context.DeadlineExceeded}}
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"topic": "testing in go"})

	assert.Equal(t, "The AI service took too long to respond. Please try again.", result.Error)
	assert.Empty(t, result.Titles)
}

func TestProcess_PanicRecovered(t *testing.T) {
	p := NewPipeline(titleConfig(), panicGenerator{}, logger.NewTestLogger(t))

	result := p.Process(context.Background(), map[string]string{"topic": "testing in go"})

	assert.True(t, result.Failed())
	assert.Contains(t, result.Error, "boom")
}

type mapCache struct {
	entries map[string]models.Result
	gets    int
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]models.Result{}}
}

func (m *mapCache) key(toolID string, inputs map[string]string) string {
	return toolID + "|" + inputs["topic"] + "|" + inputs["platform"]
}

func (m *mapCache) Get(_ context.Context, toolID string, inputs map[string]string) (*models.Result, error) {
	m.gets++
	if result, ok := m.entries[m.key(toolID, inputs)]; ok {
		return &result, nil
	}
	return nil, nil
}

func (m *mapCache) Set(_ context.Context, toolID string, inputs map[string]string, result models.Result) error {
	m.sets++
	m.entries[m.key(toolID, inputs)] = result
	return nil
}

func TestProcess_CacheHitSkipsGateway(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Structured: &models.GeneratedTitles{Titles: []string{"Cached Me"}}}}
	cache := newMapCache()
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t), WithCache(cache))

	inputs := map[string]string{"topic": "testing in go", "platform": "YouTube"}

	first := p.Process(context.Background(), inputs)
	require.False(t, first.Failed())
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, cache.sets)

	second := p.Process(context.Background(), inputs)
	require.False(t, second.Failed())
	assert.Equal(t, first.Titles, second.Titles)
	assert.Equal(t, 1, gen.calls)
}

type recordSink struct {
	records []models.GenerationRecord
}

func (r *recordSink) Record(_ context.Context, rec models.GenerationRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func TestProcess_HistoryRecorded(t *testing.T) {
	gen := &stubGenerator{resp: &gateway.Response{Structured: &models.GeneratedTitles{Titles: []string{"One"}}}}
	sink := &recordSink{}
	p := NewPipeline(titleConfig(), gen, logger.NewTestLogger(t), WithHistory(sink))

	p.Process(context.Background(), map[string]string{"topic": "testing in go", "platform": "Article"})

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, "title-generator", rec.ToolID)
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.IsStructured)
	assert.Equal(t, 1, rec.TitleCount)
	assert.Empty(t, rec.Error)
	assert.Equal(t, "testing in go", rec.Inputs["topic"])
}
