package api

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/services"
)

// Pinger is the readiness dependency, normally the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	TopicService      services.TopicService
	BlogService       services.BlogService
	StudyService      services.StudyService
	SuggestionService services.SuggestionService
	DB                Pinger
	Templates         *template.Template
	Static            fs.FS
	SiteURL           string
	Version           string
	StartTime         time.Time
	// RequestTimeout bounds each request when positive.
	RequestTimeout time.Duration
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	s.renderStatus(w, r, http.StatusOK, name, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}

	// Render into a buffer so a template error can still become a 500.
	var buf bytes.Buffer
	if err := s.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromContext(r.Context()).Error("failed to render template %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
