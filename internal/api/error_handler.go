package api

import (
	"net/http"
	"strings"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr := errors.As(err)

	// Log based on status code
	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if wantsJSON(r) {
		writeJSON(w, r, appErr.Status, map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	http.Error(w, appErr.Message, appErr.Status)
}

// handlePageError is handleError for HTML pages: it renders the error page
// instead of plain text.
func (s *Server) handlePageError(w http.ResponseWriter, r *http.Request, err error) {
	if wantsJSON(r) || s.Templates == nil {
		handleError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())
	appErr := errors.As(err)

	data := pageData{"title": "Error", "heading": "Something went wrong", "message": appErr.Message}
	switch {
	case appErr.Code == errors.ErrCodeNotFound:
		log.Warn("page not found: %v", appErr)
		data["title"] = "Not found"
		data["heading"] = "Page not found"
		data["message"] = "The page you are looking for does not exist or has expired."
	case appErr.Status >= 500:
		log.Error("server error: %v", appErr)
		data["message"] = "Please try again in a moment."
	default:
		log.Warn("client error: %v", appErr)
	}

	s.renderStatus(w, r, appErr.Status, "error.html", data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handlePageError(w, r, errors.NewNotFoundError("page", r.URL.Path))
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}
