package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/services"
)

const maxBodyBytes = 64 << 10

type startSessionRequest struct {
	Exam string `json:"exam"`
	Slug string `json:"slug"`
	Mode string `json:"mode"`
}

type sessionActionRequest struct {
	Option *int `json:"option"`
}

// decodeJSON reads an optional JSON body; an empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func (s *Server) handleAPITopics(w http.ResponseWriter, r *http.Request) {
	exam := r.URL.Query().Get("exam")
	if exam == "" {
		handleError(w, r, errors.NewValidationError("exam", "is required"))
		return
	}

	topics, err := s.TopicService.ListTopics(r.Context(), exam)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"topics": topics})
}

func (s *Server) handleAPITopic(w http.ResponseWriter, r *http.Request) {
	topic, err := s.TopicService.GetTopicWithWords(r.Context(), chi.URLParam(r, "exam"), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, topic)
}

func (s *Server) handleAPIStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.StudyService.StartSession(r.Context(), req.Exam, req.Slug, req.Mode)
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/sessions/"+view.ID)
	writeJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleAPIGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.StudyService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAPISessionAction(w http.ResponseWriter, r *http.Request) {
	action, ok := services.ParseAction(chi.URLParam(r, "action"))
	if !ok {
		handleError(w, r, errors.NewValidationError("action", "unknown action "+chi.URLParam(r, "action")))
		return
	}

	var req sessionActionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	option := -1
	if req.Option != nil {
		option = *req.Option
	}

	view, err := s.StudyService.Apply(r.Context(), chi.URLParam(r, "id"), action, option)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAPISuggestions(w http.ResponseWriter, r *http.Request) {
	var in services.SuggestionInput
	if err := decodeJSON(r, &in); err != nil {
		handleError(w, r, err)
		return
	}

	posts, err := s.SuggestionService.Suggest(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"posts": posts})
}
