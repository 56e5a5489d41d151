// internal/server/render.go
package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Renderer executes page templates against the shared layout. Every page is
// rendered into a buffer first so a template failure can degrade to the
// display-error page instead of a half-written response.
type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
}

var templateFuncs = template.FuncMap{
	"icon": func(svg string) template.HTML {
		return template.HTML(svg)
	},
	"markdown": renderMarkdown,
	"add":      func(a, b int) int { return a + b },
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// NewRenderer parses the embedded templates.
func NewRenderer(log logger.Logger) (*Renderer, error) {
	pageNames := []string{
		"home.html", "tools.html", "tool.html", "results.html",
		"about.html", "contact.html", "error.html",
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{
		pages: pages,
		log:   log.With(map[string]interface{}{"component": "renderer"}),
	}, nil
}

// Render writes one page, falling back to a bare display-error page when
// template execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.fail(w, errors.NewRenderError(page, fmt.Errorf("unknown page %q", page)))
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		r.fail(w, errors.NewRenderError(page, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (r *Renderer) fail(w http.ResponseWriter, err *errors.StandardError) {
	r.log.Error("page render failed", map[string]interface{}{"error": err.Error()})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprint(w, `<!DOCTYPE html><html><head><title>Display Error - Bit Tools</title></head>`+
		`<body><h1>Display Error</h1><p>The results could not be displayed. Please try again.</p>`+
		`<a href="/tools">Back to Tools</a></body></html>`)
}
