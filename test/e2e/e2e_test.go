// test/e2e/e2e_test.go
//
// Full-stack tests: a fake OpenRouter upstream, the real gateway client,
// the registered tools, and the HTTP server rendering real templates.
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bit-tools/internal/common/config"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/gateway"
	"bit-tools/internal/server"
	"bit-tools/internal/tools"
	"bit-tools/pkg/registry"
)

// fakeOpenRouter answers chat completion requests the way the real
// provider does: structured requests get JSON matching the requested
// schema, freeform requests get plain text.
func fakeOpenRouter(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			ResponseFormat *struct {
				JSONSchema struct {
					Name string `json:"name"`
				} `json:"json_schema"`
			} `json:"response_format"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		content := "This is the rewritten version of your text."
		if req.ResponseFormat != nil {
			switch req.ResponseFormat.JSONSchema.Name {
			case "generated_titles":
				content = `{"titles": ["Go Testing Made Simple", "Seven Habits of Fast Test Suites", "Stop Flaky Tests Today"]}`
			default:
				content = `{}`
			}
		}

		body := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
}

// newApp wires the whole application against the given upstream and
// returns a test server for it.
func newApp(t *testing.T, upstreamURL string) *httptest.Server {
	t.Helper()

	log := logger.NewTestLogger(t)
	gw := gateway.NewClient(config.OpenRouterConfig{
		BaseURL:   upstreamURL,
		APIKey:    "test-key",
		Model:     "test-model",
		MaxTokens: 1000,
		Timeout:   5000,
	}, log)

	reg := registry.New()
	tools.RegisterAll(reg, gw, log)

	srv, err := server.New(reg, log)
	require.NoError(t, err)

	app := httptest.NewServer(srv.Routes())
	t.Cleanup(app.Close)
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestHomeListsAllTools(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	upstream := fakeOpenRouter(t)
	defer upstream.Close()
	app := newApp(t, upstream.URL)

	resp, err := http.Get(app.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, name := range []string{
		"AI Title Generator",
		"Social Media Post Generator",
		"Blog Outline Generator",
		"YouTube Thumbnail Ideas Generator",
		"YouTube Script Generator",
		"AI Text Rewriter",
	} {
		assert.Contains(t, body, name)
	}
}

func TestTitleGenerationEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	upstream := fakeOpenRouter(t)
	defer upstream.Close()
	app := newApp(t, upstream.URL)

	form := url.Values{
		"topic":    {"testing in go"},
		"platform": {"YouTube"},
		"style":    {"Professional"},
	}
	resp, err := http.PostForm(app.URL+"/tools/ai-title-generator/process", form)
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "AI Title Generator Results")
	assert.Contains(t, body, "Go Testing Made Simple")
	assert.Contains(t, body, "Stop Flaky Tests Today")
	assert.Contains(t, body, "Copy All Text")
}

func TestTextRewriteEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	upstream := fakeOpenRouter(t)
	defer upstream.Close()
	app := newApp(t, upstream.URL)

	form := url.Values{
		"text":  {"the original clunky sentence"},
		"style": {"More formal"},
	}
	resp, err := http.PostForm(app.URL+"/tools/ai-text-rewriter/process", form)
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "the original clunky sentence")
	assert.Contains(t, body, "This is the rewritten version of your text.")
}

func TestValidationFailureRendersErrorPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	upstream := fakeOpenRouter(t)
	defer upstream.Close()
	app := newApp(t, upstream.URL)

	resp, err := http.PostForm(app.URL+"/tools/ai-title-generator/process", url.Values{})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "Validation failed")
	assert.Contains(t, body, "Try Again")
}

func TestUpstreamFailureShowsUserMessage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "upstream exploded"}`)
	}))
	defer upstream.Close()
	app := newApp(t, upstream.URL)

	form := url.Values{"topic": {"anything at all"}}
	resp, err := http.PostForm(app.URL+"/tools/ai-title-generator/process", form)
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "Error generating content")
}
