package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/services"
)

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	s.renderBlog(w, r, strings.TrimSpace(r.URL.Query().Get("tag")), pageData{})
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.BlogService.GetPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	s.render(w, r, "blog_post.html", pageData{
		"title": post.Title,
		"post":  post,
	})
}

// handleBlogSuggestions renders the blog index with the suggester's answer.
// A failed suggestion is shown inline rather than as an error page.
func (s *Server) handleBlogSuggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	in := services.SuggestionInput{
		PracticeHistory: r.FormValue("practiceHistory"),
		KnowledgeGaps:   r.FormValue("knowledgeGaps"),
	}

	data := pageData{
		"practiceHistory": in.PracticeHistory,
		"knowledgeGaps":   in.KnowledgeGaps,
	}

	posts, err := s.SuggestionService.Suggest(r.Context(), in)
	if err != nil {
		log.Warn("suggestion failed: %v", err)
		data["suggestionError"] = errors.SuggestionFailedMessage
	} else {
		data["suggested"] = posts
		data["suggestedNone"] = len(posts) == 0
	}

	s.renderBlog(w, r, "", data)
}

func (s *Server) renderBlog(w http.ResponseWriter, r *http.Request, tag string, data pageData) {
	posts, err := s.BlogService.ListPosts(r.Context(), tag)
	if err != nil {
		s.handlePageError(w, r, err)
		return
	}

	tags, err := s.BlogService.Tags(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("failed to load tags: %v", err)
	}

	data["title"] = "Blog"
	data["posts"] = posts
	data["tags"] = tags
	data["tag"] = tag
	s.render(w, r, "blog.html", data)
}
