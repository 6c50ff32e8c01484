package api

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// buildSitemap lists the home, exam and blog pages followed by every
// topic page and then every study start page, grouped by exam. Start pages
// only render a form, so listing them creates no sessions.
func buildSitemap(baseURL string, topics map[models.ExamType][]models.Topic, now time.Time) urlSet {
	lastMod := now.UTC().Format("2006-01-02")
	entry := func(path, freq, priority string) sitemapURL {
		return sitemapURL{Loc: baseURL + path, LastMod: lastMod, ChangeFreq: freq, Priority: priority}
	}

	set := urlSet{XMLNS: sitemapNS}
	set.URLs = append(set.URLs, entry("", "daily", "1.0"))
	for _, e := range models.Exams {
		set.URLs = append(set.URLs, entry("/"+string(e), "weekly", "0.9"))
	}
	set.URLs = append(set.URLs, entry("/blog", "daily", "0.8"))

	for _, e := range models.Exams {
		for _, t := range topics[e] {
			set.URLs = append(set.URLs, entry("/"+string(e)+"/"+t.Slug, "weekly", "0.7"))
		}
	}
	for _, e := range models.Exams {
		for _, t := range topics[e] {
			set.URLs = append(set.URLs, entry("/study/"+string(e)+"/"+t.Slug, "monthly", "0.6"))
		}
	}
	return set
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	topics := make(map[models.ExamType][]models.Topic, len(models.Exams))
	for _, e := range models.Exams {
		list, err := s.TopicService.ListTopics(r.Context(), string(e))
		if err != nil {
			handleError(w, r, err)
			return
		}
		topics[e] = list
	}

	set := buildSitemap(s.SiteURL, topics, time.Now())
	log.Debug("sitemap built: urls=%d", len(set.URLs))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		log.Error("failed to encode sitemap: %v", err)
	}
}

type webManifest struct {
	Name            string   `json:"name"`
	ShortName       string   `json:"short_name"`
	Description     string   `json:"description"`
	StartURL        string   `json:"start_url"`
	Display         string   `json:"display"`
	BackgroundColor string   `json:"background_color"`
	ThemeColor      string   `json:"theme_color"`
	Orientation     string   `json:"orientation"`
	Scope           string   `json:"scope"`
	Lang            string   `json:"lang"`
	Categories      []string `json:"categories"`
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	writeJSON(w, r, http.StatusOK, webManifest{
		Name:            "VocabPractice - Master TOEIC & IELTS Vocabulary",
		ShortName:       "VocabPractice",
		Description:     "Master TOEIC and IELTS vocabulary with interactive flashcards, quizzes, and progress tracking.",
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#2563eb",
		Orientation:     "portrait",
		Scope:           "/",
		Lang:            "en",
		Categories:      []string{"education", "productivity"},
	})
}
