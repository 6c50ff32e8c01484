package repository

import (
	"context"

	"github.com/vytor/vocabflash/internal/models"
)

// WordRepository handles vocabulary word data access
type WordRepository interface {
	List(ctx context.Context, filter models.WordFilter) ([]models.VocabularyWord, error)
	All(ctx context.Context) ([]models.VocabularyWord, error)
	Get(ctx context.Context, id string) (*models.VocabularyWord, error)
}
