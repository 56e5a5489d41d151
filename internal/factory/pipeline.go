// Package factory assembles tool processing pipelines. Every tool runs the
// same Pipeline; the differences between tools live entirely in their
// ToolConfig. Adding a tool means writing configuration, not code.
package factory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/common/metrics"
	"bit-tools/internal/common/observability"
	"bit-tools/internal/common/validation"
	"bit-tools/internal/gateway"
	"bit-tools/internal/models"
	"bit-tools/internal/normalizer"
	"bit-tools/internal/prompt"
	"bit-tools/internal/schema"
)

// ResultCache caches successful results by tool and inputs.
type ResultCache interface {
	Get(ctx context.Context, toolID string, inputs map[string]string) (*models.Result, error)
	Set(ctx context.Context, toolID string, inputs map[string]string, result models.Result) error
}

// HistoryStore persists generation records.
type HistoryStore interface {
	Record(ctx context.Context, rec models.GenerationRecord) error
}

// AuditIndexer indexes generation records for search.
type AuditIndexer interface {
	Index(ctx context.Context, rec models.GenerationRecord) error
}

// Pipeline processes requests for one tool. It implements models.Processor.
type Pipeline struct {
	cfg    models.ToolConfig
	toolID string
	def    *schema.Definition

	gw   gateway.Generator
	norm *normalizer.Normalizer
	log  logger.Logger

	obs     *observability.Observability
	cache   ResultCache
	history HistoryStore
	audit   AuditIndexer
}

// Option configures optional pipeline collaborators.
type Option func(*Pipeline)

// WithObservability attaches the otel generation metrics.
func WithObservability(obs *observability.Observability) Option {
	return func(p *Pipeline) { p.obs = obs }
}

// WithCache attaches a result cache.
func WithCache(cache ResultCache) Option {
	return func(p *Pipeline) { p.cache = cache }
}

// WithHistory attaches a history store.
func WithHistory(history HistoryStore) Option {
	return func(p *Pipeline) { p.history = history }
}

// WithAudit attaches an audit indexer.
func WithAudit(audit AuditIndexer) Option {
	return func(p *Pipeline) { p.audit = audit }
}

// NewPipeline builds the pipeline for one tool configuration.
func NewPipeline(cfg models.ToolConfig, gw gateway.Generator, log logger.Logger, opts ...Option) *Pipeline {
	toolID := models.ToolID(cfg.Name)
	p := &Pipeline{
		cfg:    cfg,
		toolID: toolID,
		gw:     gw,
		norm:   normalizer.New(log),
		log:    log.With(map[string]interface{}{"tool_id": toolID}),
	}
	if cfg.ResponseSchema != "" {
		p.def = schema.MustLookup(cfg.ResponseSchema)
	}
	// A template placeholder with no declared field could never be filled
	// from the form; catch the misconfiguration at startup.
	for _, name := range prompt.Placeholders(cfg.UserPromptTemplate) {
		if _, ok := cfg.Fields[name]; !ok {
			panic(fmt.Sprintf("tool %s: prompt placeholder %q has no declared field", toolID, name))
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTool builds the registered Tool for a configuration.
func NewTool(cfg models.ToolConfig, gw gateway.Generator, log logger.Logger, opts ...Option) *models.Tool {
	return &models.Tool{
		ToolConfig: cfg,
		Processor:  NewPipeline(cfg, gw, log, opts...),
	}
}

// Process runs one generation request. It never returns an error and never
// panics; every failure ends in Result.Error.
func (p *Pipeline) Process(ctx context.Context, inputs map[string]string) (result models.Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("pipeline panic recovered", map[string]interface{}{"panic": fmt.Sprintf("%v", r)})
			result = models.ErrorResult(fmt.Sprintf("Error generating content: %v", r))
		}
		p.finish(ctx, inputs, result, time.Since(start))
	}()

	if p.cfg.Family == models.FamilyTransformation && strings.TrimSpace(inputs["text"]) == "" {
		return models.ErrorResult("Please provide text to transform.")
	}

	if errs := validation.ValidateFields(inputs, p.cfg.Fields, p.cfg.FieldOrder); len(errs) > 0 {
		std := errors.NewValidationFailedError(fmt.Sprintf("%d field(s) failed validation", len(errs)))
		return models.Result{Error: std.Message, ValidationErrors: errs}
	}

	if cached := p.lookupCache(ctx, inputs); cached != nil {
		return *cached
	}

	userPrompt, err := prompt.Format(p.cfg.UserPromptTemplate, inputs)
	if err != nil {
		p.log.Error("prompt formatting failed", map[string]interface{}{"error": err.Error()})
		return models.ErrorResult(errors.UserMessage(err))
	}

	resp := p.gw.Generate(ctx, gateway.Request{
		SystemPrompt: p.cfg.SystemPrompt,
		UserPrompt:   userPrompt,
		Schema:       p.def,
	})

	result = p.norm.Normalize(p.toolID, p.cfg, inputs, resp)

	if p.cfg.Family == models.FamilyTransformation && !result.Failed() {
		result = p.assembleTransformation(inputs, result)
	}

	p.storeCache(ctx, inputs, result)
	return result
}

// assembleTransformation shapes a freeform rewrite into the before/after
// view, keeping Titles populated for the generic list view.
func (p *Pipeline) assembleTransformation(inputs map[string]string, result models.Result) models.Result {
	transformed := strings.TrimSpace(result.RawText)
	if transformed == "" {
		transformed = strings.Join(result.Titles, "\n")
	}
	result.OriginalText = inputs["text"]
	result.TransformedText = transformed
	result.Titles = []string{transformed}
	if result.Metadata != nil {
		result.Metadata["count"] = len(result.Titles)
	}
	return result
}

func (p *Pipeline) lookupCache(ctx context.Context, inputs map[string]string) *models.Result {
	if p.cache == nil {
		return nil
	}
	cached, err := p.cache.Get(ctx, p.toolID, inputs)
	if err != nil {
		metrics.CacheHitsTotal.WithLabelValues("error").Inc()
		p.log.Warn("cache lookup failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if cached == nil {
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
	return cached
}

func (p *Pipeline) storeCache(ctx context.Context, inputs map[string]string, result models.Result) {
	if p.cache == nil || result.Failed() {
		return
	}
	if err := p.cache.Set(ctx, p.toolID, inputs, result); err != nil {
		p.log.Warn("cache store failed", map[string]interface{}{"error": err.Error()})
	}
}

// finish records metrics and persists the generation record. Persistence
// failures are logged and swallowed; they never affect the response.
func (p *Pipeline) finish(ctx context.Context, inputs map[string]string, result models.Result, elapsed time.Duration) {
	status := "success"
	if result.Failed() {
		status = "error"
	}

	metrics.ToolRequestsTotal.WithLabelValues(p.toolID, status).Inc()
	metrics.ToolRequestDuration.WithLabelValues(p.toolID).Observe(elapsed.Seconds())
	if p.obs != nil {
		p.obs.RecordGeneration(ctx, p.toolID, status)
		p.obs.RecordGenerationDuration(ctx, p.toolID, elapsed)
	}

	if p.history == nil && p.audit == nil {
		return
	}

	rec := models.GenerationRecord{
		ID:           uuid.NewString(),
		ToolID:       p.toolID,
		Inputs:       declaredInputs(inputs, p.cfg.Fields),
		IsStructured: result.IsStructured,
		TitleCount:   len(result.Titles),
		Error:        result.Error,
		Duration:     elapsed,
		CreatedAt:    time.Now().UTC(),
	}
	if p.history != nil {
		if err := p.history.Record(ctx, rec); err != nil {
			p.log.Warn("history write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if p.audit != nil {
		if err := p.audit.Index(ctx, rec); err != nil {
			p.log.Warn("audit index failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func declaredInputs(inputs map[string]string, fields map[string]models.Field) models.Metadata {
	md := make(models.Metadata, len(inputs))
	for name, value := range inputs {
		if _, ok := fields[name]; ok {
			md[name] = value
		}
	}
	return md
}
