package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
)

const homePostLimit = 3

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	exams, err := s.TopicService.ExamSummaries(r.Context())
	if err != nil {
		log.Warn("failed to load exam summaries: %v", err)
		exams = make([]models.ExamSummary, 0, len(models.Exams))
		for _, e := range models.Exams {
			exams = append(exams, models.ExamSummary{Exam: e})
		}
	}

	posts, err := s.BlogService.ListPosts(r.Context(), "")
	if err != nil {
		log.Warn("failed to load latest posts: %v", err)
	}
	if len(posts) > homePostLimit {
		posts = posts[:homePostLimit]
	}

	s.render(w, r, "home.html", pageData{
		"exams": exams,
		"posts": posts,
	})
}

func (s *Server) handleExam(w http.ResponseWriter, r *http.Request) {
	exam := chi.URLParam(r, "exam")
	log := logger.FromContext(r.Context())
	log.Debug("rendering exam page: exam=%s", exam)

	topics, err := s.TopicService.ListTopics(r.Context(), exam)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	e, _ := models.ParseExam(exam)
	s.render(w, r, "exam.html", pageData{
		"title":       e.Label() + " Vocabulary",
		"description": "Vocabulary topics for the " + e.Label() + " exam.",
		"exam":        e,
		"topics":      topics,
	})
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	exam := chi.URLParam(r, "exam")
	slug := chi.URLParam(r, "slug")

	topic, err := s.TopicService.GetTopicWithWords(r.Context(), exam, slug)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	s.render(w, r, "topic.html", pageData{
		"title":       topic.Name,
		"description": topic.Description,
		"topic":       topic,
	})
}
