package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

var postColumns = []string{"id", "slug", "title", "author", "published_on", "image_url", "content"}

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository implementation
func NewBlogRepository(db *sql.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func scanPost(row interface{ Scan(...any) error }, p *models.BlogPost) error {
	return row.Scan(&p.ID, &p.Slug, &p.Title, &p.Author, &p.PublishedOn, &p.ImageURL, &p.Content)
}

func (r *blogRepository) List(ctx context.Context, filter models.BlogFilter) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx).WithPrefix("blog_repo")
	log.Debug("listing posts: tag=%s, limit=%d", filter.Tag, filter.Limit)

	query := sqlBuilder.Select(postColumns...).From("blog_posts")
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		query = query.Where("id IN (SELECT post_id FROM blog_post_tags WHERE tag = ? COLLATE NOCASE)", tag)
	}
	query = query.OrderBy("position ASC", "id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	posts, err := r.collect(ctx, query)
	if err != nil {
		log.Error("failed to list posts: %v", err)
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	log := logger.FromContext(ctx).WithPrefix("blog_repo")
	log.Debug("getting post: slug=%s", slug)

	posts, err := r.collect(ctx, sqlBuilder.Select(postColumns...).From("blog_posts").Where(squirrel.Eq{"slug": slug}))
	if err != nil {
		log.Error("failed to get post: %v", err)
		return nil, err
	}
	if len(posts) == 0 {
		return nil, sql.ErrNoRows
	}
	return &posts[0], nil
}

// GetByIDs returns the matching posts in catalog order. Unknown ids are skipped.
func (r *blogRepository) GetByIDs(ctx context.Context, ids []string) ([]models.BlogPost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	log := logger.FromContext(ctx).WithPrefix("blog_repo")
	log.Debug("getting posts by ids: %v", ids)

	query := sqlBuilder.Select(postColumns...).From("blog_posts").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("position ASC", "id ASC")

	posts, err := r.collect(ctx, query)
	if err != nil {
		log.Error("failed to get posts by ids: %v", err)
		return nil, err
	}
	return posts, nil
}

// collect runs query and attaches each post's tags.
func (r *blogRepository) collect(ctx context.Context, query squirrel.SelectBuilder) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := queryRows(ctx, r.db, query, func(rows *sql.Rows) error {
		var p models.BlogPost
		if err := scanPost(rows, &p); err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil || len(posts) == 0 {
		return posts, err
	}

	ids := make([]string, len(posts))
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
	}

	tagQuery := sqlBuilder.Select("post_id", "tag").From("blog_post_tags").
		Where(squirrel.Eq{"post_id": ids}).
		OrderBy("post_id", "position ASC")
	err = queryRows(ctx, r.db, tagQuery, func(rows *sql.Rows) error {
		var postID, tag string
		if err := rows.Scan(&postID, &tag); err != nil {
			return err
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, tag)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load post tags: %w", err)
	}
	return posts, nil
}
