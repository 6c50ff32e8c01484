package repository

import (
	"context"

	"github.com/vytor/vocabflash/internal/models"
)

// BlogRepository handles blog post data access
type BlogRepository interface {
	List(ctx context.Context, filter models.BlogFilter) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.BlogPost, error)
}
