package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)
	if s.RequestTimeout > 0 {
		r.Use(timeoutMiddleware(s.RequestTimeout))
	}
	r.NotFound(s.handleNotFound)

	r.Get("/", s.handleHome)
	r.Get("/blog", s.handleBlog)
	r.Post("/blog/suggestions", s.handleBlogSuggestions)
	r.Get("/blog/{slug}", s.handleBlogPost)
	r.Get("/study/sessions/{id}", s.handleStudySession)
	r.Post("/study/sessions/{id}/{action}", s.handleStudyAction)
	r.Get("/study/{exam}/{slug}", s.handleStudyStart)
	r.Post("/study/{exam}/{slug}", s.handleCreateStudy)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/manifest.webmanifest", s.handleManifest)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleAPIHealth)
		r.Get("/topics", s.handleAPITopics)
		r.Get("/topics/{exam}/{slug}", s.handleAPITopic)
		r.Post("/sessions", s.handleAPIStartSession)
		r.Get("/sessions/{id}", s.handleAPIGetSession)
		r.Post("/sessions/{id}/{action}", s.handleAPISessionAction)
		r.Post("/suggestions", s.handleAPISuggestions)
	})

	if s.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.Static))))
	}

	r.Get("/{exam}", s.handleExam)
	r.Get("/{exam}/{slug}", s.handleTopic)

	return r
}
