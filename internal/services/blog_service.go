package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"sort"
	"strings"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

// BlogService handles blog post lookups
type BlogService interface {
	ListPosts(ctx context.Context, tag string) ([]models.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*models.BlogPost, error)
	Tags(ctx context.Context) ([]string, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) ListPosts(ctx context.Context, tag string) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing posts: tag=%s", tag)

	posts, err := s.blogRepo.List(ctx, models.BlogFilter{Tag: strings.TrimSpace(tag)})
	if err != nil {
		log.Error("failed to list posts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting post: slug=%s", slug)

	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("post", slug)
		}
		log.Error("failed to get post: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return post, nil
}

// Tags returns the distinct tags across all posts, sorted case-insensitively.
func (s *blogService) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.ListPosts(ctx, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			key := strings.ToLower(t)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags, nil
}
