package repository

import (
	"context"

	"github.com/vytor/vocabflash/internal/models"
)

// TopicRepository handles topic data access
type TopicRepository interface {
	List(ctx context.Context, filter models.TopicFilter) ([]models.Topic, error)
	GetBySlug(ctx context.Context, category models.ExamType, slug string) (*models.Topic, error)
	CountByCategory(ctx context.Context) (map[models.ExamType]int, error)
}
