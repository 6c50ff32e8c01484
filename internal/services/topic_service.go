package services

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

// TopicService handles topic and vocabulary lookups
type TopicService interface {
	ListTopics(ctx context.Context, exam string) ([]models.Topic, error)
	GetTopicWithWords(ctx context.Context, exam, slug string) (*models.TopicWithWords, error)
	DistractorPool(ctx context.Context) ([]models.VocabularyWord, error)
	ExamSummaries(ctx context.Context) ([]models.ExamSummary, error)
}

type topicService struct {
	topicRepo repository.TopicRepository
	wordRepo  repository.WordRepository
}

// NewTopicService creates a new TopicService
func NewTopicService(topicRepo repository.TopicRepository, wordRepo repository.WordRepository) TopicService {
	return &topicService{topicRepo: topicRepo, wordRepo: wordRepo}
}

func parseExam(exam string) (models.ExamType, error) {
	e, ok := models.ParseExam(exam)
	if !ok {
		return "", errors.NewNotFoundError("exam", exam)
	}
	return e, nil
}

func (s *topicService) ListTopics(ctx context.Context, exam string) ([]models.Topic, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing topics: exam=%s", exam)

	e, err := parseExam(exam)
	if err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.List(ctx, models.TopicFilter{Category: e})
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return topics, nil
}

func (s *topicService) GetTopicWithWords(ctx context.Context, exam, slug string) (*models.TopicWithWords, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting topic: exam=%s, slug=%s", exam, slug)

	e, err := parseExam(exam)
	if err != nil {
		return nil, err
	}

	topic, err := s.topicRepo.GetBySlug(ctx, e, slug)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("topic", slug)
		}
		log.Error("failed to get topic: %v", err)
		return nil, errors.NewInternalError(err)
	}

	words, err := s.wordRepo.List(ctx, models.WordFilter{TopicID: topic.ID})
	if err != nil {
		log.Error("failed to list words for topic %s: %v", topic.ID, err)
		return nil, errors.NewInternalError(err)
	}

	return &models.TopicWithWords{Topic: *topic, Words: words}, nil
}

// DistractorPool is every word across all topics.
func (s *topicService) DistractorPool(ctx context.Context) ([]models.VocabularyWord, error) {
	words, err := s.wordRepo.All(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load distractor pool: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

func (s *topicService) ExamSummaries(ctx context.Context) ([]models.ExamSummary, error) {
	counts, err := s.topicRepo.CountByCategory(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to count topics: %v", err)
		return nil, errors.NewInternalError(err)
	}

	summaries := make([]models.ExamSummary, 0, len(models.Exams))
	for _, exam := range models.Exams {
		summaries = append(summaries, models.ExamSummary{Exam: exam, TopicCount: counts[exam]})
	}
	return summaries, nil
}
