// Package server is the HTTP layer: the tool catalog pages, the per-tool
// form pages and the results pages rendered from pipeline output.
package server

import (
	"net/http"
	"strings"

	"bit-tools/internal/common/logger"
	"bit-tools/internal/models"
	"bit-tools/internal/view"
	"bit-tools/pkg/registry"
)

// Server serves the Bit Tools pages.
type Server struct {
	reg      *registry.Registry
	renderer *Renderer
	log      logger.Logger
}

// New creates the server.
func New(reg *registry.Registry, log logger.Logger) (*Server, error) {
	renderer, err := NewRenderer(log)
	if err != nil {
		return nil, err
	}
	return &Server{
		reg:      reg,
		renderer: renderer,
		log:      log.With(map[string]interface{}{"component": "server"}),
	}, nil
}

// Routes returns the HTTP handler for all pages.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /contact", s.handleContact)
	mux.HandleFunc("POST /submit-contact", s.handleSubmitContact)
	mux.HandleFunc("GET /tools", s.handleToolList)
	mux.HandleFunc("GET /tools/{id}", s.handleToolPage)
	mux.HandleFunc("POST /tools/{id}/process", s.handleProcess)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

type pageData struct {
	Title       string
	CurrentPage string
}

type toolListData struct {
	pageData
	Categories []categoryGroup
}

type categoryGroup struct {
	Name  string
	Tools []*models.Tool
}

type toolPageData struct {
	pageData
	Tool *models.Tool
}

type resultsData struct {
	pageData
	Tool     *models.Tool
	Result   models.Result
	Strategy view.Strategy
	Outline  *models.BlogOutline
	// AllContent feeds the copy-all tab and the markdown tab.
	AllContent string
}

type errorData struct {
	pageData
	Heading          string
	Message          string
	Detail           string
	BackURL          string
	BackLabel        string
	ValidationErrors []models.ValidationError
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, http.StatusOK, "home.html", toolListData{
		pageData:   pageData{Title: "Home - Bit Tools", CurrentPage: "/"},
		Categories: s.categoryGroups(),
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, http.StatusOK, "about.html", pageData{
		Title: "About Us - Bit Tools", CurrentPage: "/about",
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, http.StatusOK, "contact.html", pageData{
		Title: "Contact Us - Bit Tools", CurrentPage: "/contact",
	})
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	s.renderer.Render(w, http.StatusOK, "error.html", errorData{
		pageData:  pageData{Title: "Thank You - Bit Tools", CurrentPage: "/contact"},
		Heading:   "Thank You!",
		Message:   "Hello " + name + ", we've received your message and will respond to " + email + " soon.",
		BackURL:   "/",
		BackLabel: "Return Home",
	})
}

func (s *Server) handleToolList(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, http.StatusOK, "tools.html", toolListData{
		pageData:   pageData{Title: "AI Tools - Bit Tools", CurrentPage: "/tools"},
		Categories: s.categoryGroups(),
	})
}

func (s *Server) categoryGroups() []categoryGroup {
	var groups []categoryGroup
	for _, name := range s.reg.Categories() {
		groups = append(groups, categoryGroup{Name: name, Tools: s.reg.ByCategory(name)})
	}
	return groups
}

func (s *Server) handleToolPage(w http.ResponseWriter, r *http.Request) {
	tool := s.reg.Get(r.PathValue("id"))
	if tool == nil {
		s.renderToolNotFound(w)
		return
	}
	s.renderer.Render(w, http.StatusOK, "tool.html", toolPageData{
		pageData: pageData{Title: tool.Name + " - Bit Tools", CurrentPage: tool.Route()},
		Tool:     tool,
	})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	tool := s.reg.Get(r.PathValue("id"))
	if tool == nil {
		s.renderToolNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	inputs := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		inputs[key] = r.PostFormValue(key)
	}

	result := tool.Processor.Process(r.Context(), inputs)

	if result.Failed() {
		s.renderer.Render(w, http.StatusOK, "error.html", errorData{
			pageData:         pageData{Title: "Error - Bit Tools", CurrentPage: tool.Route()},
			Heading:          "Processing Error",
			Message:          "An error occurred: " + result.Error,
			BackURL:          tool.Route(),
			BackLabel:        "Try Again",
			ValidationErrors: result.ValidationErrors,
		})
		return
	}

	data := resultsData{
		pageData:   pageData{Title: tool.Name + " Results - Bit Tools", CurrentPage: tool.Route()},
		Tool:       tool,
		Result:     result,
		Strategy:   view.Select(tool.Family, result),
		AllContent: strings.Join(result.Titles, "\n"),
	}
	if data.Strategy == view.StrategyOutline {
		if len(result.MainSections) > 0 {
			data.Outline = &models.BlogOutline{
				Introduction: result.Introduction,
				MainSections: result.MainSections,
				Conclusion:   result.Conclusion,
			}
		} else if outline, ok := view.OutlineFromLines(result.Titles); ok {
			data.Outline = outline
		}
	}

	s.renderer.Render(w, http.StatusOK, "results.html", data)
}

func (s *Server) renderToolNotFound(w http.ResponseWriter) {
	s.renderer.Render(w, http.StatusNotFound, "error.html", errorData{
		pageData:  pageData{Title: "Tool Not Found - Bit Tools", CurrentPage: "/tools"},
		Heading:   "Tool Not Found",
		Message:   "Sorry, the requested tool could not be found.",
		BackURL:   "/tools",
		BackLabel: "Back to Tools",
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
