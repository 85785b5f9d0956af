// Package web provides the HTTP server, the form UI and the JSON API.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/layout"
	"github.com/evcraddock/carpet/internal/logging"
	"github.com/evcraddock/carpet/internal/property"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds web server settings.
type Config struct {
	AllowedOrigins []string
}

// Server is the web UI and API HTTP server.
type Server struct {
	store     *property.Store
	templates *template.Template
	router    *mux.Router
	handler   http.Handler
}

// NewServer creates a web server around an already loaded property store.
func NewServer(store *property.Store, cfg Config) (*Server, error) {
	funcMap := template.FuncMap{
		"formatArea": tmplFormatArea,
		"formatFeet": tmplFormatFeet,
		"inlineSVG":  tmplInlineSVG,
		"maxRooms":   func() int { return area.MaxRoomsPerCategory },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		store:     store,
		templates: tmpl,
		router:    mux.NewRouter(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleForm).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleFormPost).Methods(http.MethodPost)
	s.router.HandleFunc("/save", s.handleSavePost).Methods(http.MethodPost)
	s.router.HandleFunc("/summary.csv", s.handleSummaryCSVPost).Methods(http.MethodPost)
	s.router.HandleFunc("/compare", s.handleCompare).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/calculate", s.apiCalculate).Methods(http.MethodPost)
	api.HandleFunc("/summary.csv", s.apiSummaryCSV).Methods(http.MethodPost)
	api.HandleFunc("/compare", s.apiCompare).Methods(http.MethodGet)
	api.HandleFunc("/properties", s.apiListProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties", s.apiSaveProperty).Methods(http.MethodPost)
	api.HandleFunc("/properties/{name}", s.apiGetProperty).Methods(http.MethodGet)
	api.HandleFunc("/properties/{name}/summary.csv", s.apiPropertyCSV).Methods(http.MethodGet)
	api.HandleFunc("/properties/{name}/summary.xlsx", s.apiPropertyXLSX).Methods(http.MethodGet)
	api.HandleFunc("/properties/{name}/layout.svg", s.apiPropertySVG).Methods(http.MethodGet)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiError(w, "not found", http.StatusNotFound)
	})
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader, "Content-Disposition"},
	})

	s.handler = logging.RequestLogger(c.Handler(s.router))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting web UI", "addr", "http://localhost"+addr, "properties", s.store.Len())
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Template helper functions

func tmplFormatArea(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func tmplFormatFeet(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}

func tmplInlineSVG(p *layout.Plan) template.HTML {
	if p == nil {
		return ""
	}
	svg := p.SVG()
	if i := strings.Index(svg, "<svg"); i >= 0 {
		svg = svg[i:]
	}
	return template.HTML(svg)
}
