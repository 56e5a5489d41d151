// internal/gateway/openrouter.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"bit-tools/internal/common/config"
	"bit-tools/internal/common/errors"
	commonhttp "bit-tools/internal/common/http"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/common/metrics"
)

const completionsPath = "/chat/completions"

// Client calls the OpenRouter chat completions API. One outbound call per
// tool invocation; no retries in the core, the request timeout comes from
// configuration.
type Client struct {
	cfg    config.OpenRouterConfig
	client *commonhttp.Client
	log    logger.Logger
	tracer trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTracer sets the tracer used to span gateway calls.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

// NewClient creates an OpenRouter gateway client.
func NewClient(cfg config.OpenRouterConfig, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		// No transport-level timeout; the per-request context deadline below
		// is the single timeout authority.
		client: commonhttp.NewClient(0),
		log:    log.With(map[string]interface{}{"component": "gateway"}),
		tracer: noop.NewTracerProvider().Tracer("gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model          string             `json:"model"`
	Messages       []apiMessage       `json:"messages"`
	MaxTokens      int                `json:"max_tokens"`
	ResponseFormat *apiResponseFormat `json:"response_format,omitempty"`
}

type apiResponseFormat struct {
	Type       string        `json:"type"`
	JSONSchema apiJSONSchema `json:"json_schema"`
}

type apiJSONSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

// Generate sends one completion request and returns the extracted result.
func (c *Client) Generate(ctx context.Context, req Request) *Response {
	ctx, cancel := context.WithTimeout(ctx, config.GetDuration(c.cfg.Timeout))
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "gateway.generate",
		trace.WithAttributes(
			attribute.String("llm.model", c.cfg.Model),
			attribute.Bool("llm.structured", req.Schema != nil),
		))
	defer span.End()

	body := apiRequest{
		Model: c.cfg.Model,
		Messages: []apiMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens: c.cfg.MaxTokens,
	}
	if req.Schema != nil {
		body.ResponseFormat = &apiResponseFormat{
			Type: "json_schema",
			JSONSchema: apiJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(req.Schema.Document),
			},
		}
	}

	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	resp, err := c.client.PostJSON(ctx, c.cfg.BaseURL+completionsPath, body, headers)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return c.fail(errors.NewGatewayTimeoutError())
		}
		return c.fail(errors.NewGatewayError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(errors.NewGatewayError(err))
	}

	if resp.StatusCode != http.StatusOK {
		return c.fail(errors.NewGatewayError(fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 200))))
	}

	text := extractContent(raw)
	if text == "" {
		return c.fail(errors.NewEmptyResponseError())
	}

	metrics.GatewayRequestsTotal.WithLabelValues("success").Inc()

	if req.Schema != nil {
		// The provider was asked for schema-conforming JSON; decode it here
		// so the normalizer sees either a typed value or plain text, never a
		// half-parsed in-between. Decode failures are not errors at this
		// layer, the normalizer owns the fallback.
		if structured, err := req.Schema.Decode(text); err == nil {
			return &Response{Structured: structured}
		}
	}

	return &Response{Text: text}
}

func (c *Client) fail(err error) *Response {
	metrics.GatewayRequestsTotal.WithLabelValues("error").Inc()
	c.log.Error("gateway request failed", map[string]interface{}{
		"error":     err.Error(),
		"retryable": errors.IsRetryable(err),
	})
	return &Response{Err: err}
}

// extractionStrategies locate the completion text inside the provider
// response. The upstream API exposes the completion under different
// attribute names depending on response mode, so each strategy is tried in
// order and the first non-empty result wins.
var extractionStrategies = []func(map[string]interface{}) (string, bool){
	func(m map[string]interface{}) (string, bool) { return choiceField(m, "content") },
	func(m map[string]interface{}) (string, bool) { return choiceText(m) },
	func(m map[string]interface{}) (string, bool) { return stringField(m, "message") },
	func(m map[string]interface{}) (string, bool) { return stringField(m, "text") },
	func(m map[string]interface{}) (string, bool) { return stringField(m, "answer") },
}

func extractContent(raw []byte) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Not JSON at all; surface the body as-is.
		return string(raw)
	}

	for _, strategy := range extractionStrategies {
		if text, ok := strategy(parsed); ok && text != "" {
			return text
		}
	}

	// Last resort: stringify the whole response.
	return string(raw)
}

func choiceField(m map[string]interface{}, field string) (string, bool) {
	choices, ok := m["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", false
	}
	text, ok := message[field].(string)
	return text, ok
}

func choiceText(m map[string]interface{}) (string, bool) {
	choices, ok := m["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	text, ok := choice["text"].(string)
	return text, ok
}

func stringField(m map[string]interface{}, field string) (string, bool) {
	text, ok := m[field].(string)
	return text, ok
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
