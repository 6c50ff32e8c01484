package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/llm"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

// Used when the caller has no practice data of its own.
const (
	DefaultPracticeHistory = "User has practiced 'Business Contracts' (Score: 80%) and 'Marketing' (Score: 65%)."
	DefaultKnowledgeGaps   = "User shows weakness in marketing terminology, specifically related to digital campaigns."
)

const suggestionPromptTemplate = `You are an AI content suggestion agent designed to provide personalized blog content recommendations. Based on the user's practice history, identified knowledge gaps, and available content, determine the most relevant blog content to suggest.

Practice History: {history}
Knowledge Gaps: {gaps}
Available Content: {content}

Suggest blog content IDs that will help the user improve their knowledge and address their gaps. Return the suggested content as a list of IDs.
Respond with a JSON object whose "suggestedContent" field holds the IDs separated by commas.`

var suggestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"suggestedContent": map[string]any{
			"type":        "string",
			"description": "A list of suggested blog content IDs, separated by commas.",
		},
	},
	"required": []string{"suggestedContent"},
}

type SuggestionInput struct {
	PracticeHistory string `json:"practiceHistory"`
	KnowledgeGaps   string `json:"knowledgeGaps"`
}

// SuggestionService recommends blog posts with a language model
type SuggestionService interface {
	Suggest(ctx context.Context, in SuggestionInput) ([]models.BlogPost, error)
}

type suggestionService struct {
	blogRepo repository.BlogRepository
	provider llm.Provider
	timeout  time.Duration
}

// NewSuggestionService creates a new SuggestionService. timeout bounds the
// model call; zero leaves it to the provider's own client.
func NewSuggestionService(blogRepo repository.BlogRepository, provider llm.Provider, timeout time.Duration) SuggestionService {
	return &suggestionService{blogRepo: blogRepo, provider: provider, timeout: timeout}
}

// BuildSuggestionPrompt fills the suggestion template. Each post becomes one
// "ID: x, Title: y, Tags: a, b" line.
func BuildSuggestionPrompt(history, gaps string, posts []models.BlogPost) string {
	lines := make([]string, len(posts))
	for i, p := range posts {
		lines[i] = p.Summary()
	}
	return strings.NewReplacer(
		"{history}", history,
		"{gaps}", gaps,
		"{content}", strings.Join(lines, "\n"),
	).Replace(suggestionPromptTemplate)
}

func (s *suggestionService) Suggest(ctx context.Context, in SuggestionInput) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx).WithPrefix("suggest")

	history := strings.TrimSpace(in.PracticeHistory)
	if history == "" {
		history = DefaultPracticeHistory
	}
	gaps := strings.TrimSpace(in.KnowledgeGaps)
	if gaps == "" {
		gaps = DefaultKnowledgeGaps
	}

	posts, err := s.blogRepo.List(ctx, models.BlogFilter{})
	if err != nil {
		log.Error("failed to list posts: %v", err)
		return nil, errors.NewUpstreamError(errors.SuggestionFailedMessage, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req := llm.UserPrompt(BuildSuggestionPrompt(history, gaps, posts))
	req.JSONSchema = suggestionSchema

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Warn("content suggestion failed: provider=%s", s.provider.Name())
		return nil, errors.NewUpstreamError(errors.SuggestionFailedMessage, err)
	}

	ids := ParseSuggestedIDs(resp.Content)
	log.Debug("model suggested ids: %v", ids)
	if len(ids) == 0 {
		return []models.BlogPost{}, nil
	}

	suggested, err := s.blogRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to load suggested posts: %v", err)
		return nil, errors.NewUpstreamError(errors.SuggestionFailedMessage, err)
	}
	if suggested == nil {
		suggested = []models.BlogPost{}
	}
	return suggested, nil
}

// ParseSuggestedIDs reads the model reply. It accepts the structured
// {"suggestedContent": "1, 3"} form, an array in that field, or a bare
// comma-separated list. Blank and repeated ids are dropped.
func ParseSuggestedIDs(content string) []string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw []string
	var structured struct {
		SuggestedContent json.RawMessage `json:"suggestedContent"`
	}
	if err := json.Unmarshal([]byte(content), &structured); err == nil && len(structured.SuggestedContent) > 0 {
		var list string
		var items []string
		switch {
		case json.Unmarshal(structured.SuggestedContent, &list) == nil:
			raw = strings.Split(list, ",")
		case json.Unmarshal(structured.SuggestedContent, &items) == nil:
			raw = items
		}
	} else {
		raw = strings.Split(content, ",")
	}

	seen := make(map[string]bool, len(raw))
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.Trim(strings.TrimSpace(id), `"'[]`)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
