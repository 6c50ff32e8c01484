package api

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/practice"
	"github.com/vytor/vocabflash/internal/services"
)

// handleStudyStart renders the mode picker for a topic. It never creates a
// session; handleCreateStudy does, from the form's POST.
func (s *Server) handleStudyStart(w http.ResponseWriter, r *http.Request) {
	exam := chi.URLParam(r, "exam")
	slug := chi.URLParam(r, "slug")

	mode, ok := practice.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		s.handlePageError(w, r, errors.NewValidationError("mode", "must be flashcard or quiz"))
		return
	}

	topic, err := s.TopicService.GetTopicWithWords(r.Context(), exam, slug)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}
	if len(topic.Words) == 0 {
		s.renderEmptyTopic(w, r, topic)
		return
	}

	s.render(w, r, "study_start.html", pageData{
		"title": topic.Name,
		"topic": topic,
		"mode":  string(mode),
	})
}

func (s *Server) handleCreateStudy(w http.ResponseWriter, r *http.Request) {
	exam := chi.URLParam(r, "exam")
	slug := chi.URLParam(r, "slug")
	mode := r.FormValue("mode")
	log := logger.FromContext(r.Context())

	view, err := s.StudyService.StartSession(r.Context(), exam, slug, mode)
	if err != nil {
		if stderrors.Is(err, services.ErrEmptyTopic) {
			log.Info("topic has no words: exam=%s, slug=%s", exam, slug)
			var topic *models.TopicWithWords
			if t, terr := s.TopicService.GetTopicWithWords(r.Context(), exam, slug); terr == nil {
				topic = t
			}
			s.renderEmptyTopic(w, r, topic)
			return
		}
		s.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, sessionPath(view.ID), http.StatusSeeOther)
}

func (s *Server) renderEmptyTopic(w http.ResponseWriter, r *http.Request, topic *models.TopicWithWords) {
	data := pageData{"title": "Nothing to practice"}
	if topic != nil {
		data["topic"] = topic
	}
	s.render(w, r, "study_empty.html", data)
}

func (s *Server) handleStudySession(w http.ResponseWriter, r *http.Request) {
	view, err := s.StudyService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	s.render(w, r, "study.html", pageData{
		"title":   view.TopicName,
		"session": view,
	})
}

func (s *Server) handleStudyAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	action, ok := services.ParseAction(chi.URLParam(r, "action"))
	if !ok {
		s.handlePageError(w, r, errors.NewValidationError("action", "unknown action "+chi.URLParam(r, "action")))
		return
	}

	option := -1
	if raw := strings.TrimSpace(r.FormValue("option")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.handlePageError(w, r, errors.NewValidationError("option", "must be a number"))
			return
		}
		option = n
	}

	if _, err := s.StudyService.Apply(r.Context(), id, action, option); err != nil {
		s.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, sessionPath(id), http.StatusSeeOther)
}

func sessionPath(id string) string {
	return "/study/sessions/" + url.PathEscape(id)
}
