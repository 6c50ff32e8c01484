package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

var topicColumns = []string{"id", "name", "description", "category", "difficulty", "word_count", "slug", "image_url"}

type topicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new TopicRepository implementation
func NewTopicRepository(db *sql.DB) repository.TopicRepository {
	return &topicRepository{db: db}
}

func scanTopic(row interface{ Scan(...any) error }, t *models.Topic) error {
	return row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.Difficulty, &t.WordCount, &t.Slug, &t.ImageURL)
}

func (r *topicRepository) List(ctx context.Context, filter models.TopicFilter) ([]models.Topic, error) {
	log := logger.FromContext(ctx).WithPrefix("topic_repo")
	log.Debug("listing topics: category=%s, difficulty=%s", filter.Category, filter.Difficulty)

	query := sqlBuilder.Select(topicColumns...).From("topics")
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	query = query.OrderBy("position ASC", "id ASC")

	var topics []models.Topic
	err := queryRows(ctx, r.db, query, func(rows *sql.Rows) error {
		var t models.Topic
		if err := scanTopic(rows, &t); err != nil {
			return err
		}
		topics = append(topics, t)
		return nil
	})
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, err
	}
	log.Debug("listed %d topics", len(topics))
	return topics, nil
}

func (r *topicRepository) GetBySlug(ctx context.Context, category models.ExamType, slug string) (*models.Topic, error) {
	log := logger.FromContext(ctx).WithPrefix("topic_repo")
	log.Debug("getting topic: category=%s, slug=%s", category, slug)

	q, args, err := sqlBuilder.Select(topicColumns...).From("topics").
		Where(squirrel.Eq{"category": category, "slug": slug}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Topic
	if err := scanTopic(r.db.QueryRowContext(ctx, q, args...), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("topic not found: %s/%s", category, slug)
		} else {
			log.Error("failed to get topic: %v", err)
		}
		return nil, err
	}
	return &t, nil
}

func (r *topicRepository) CountByCategory(ctx context.Context) (map[models.ExamType]int, error) {
	log := logger.FromContext(ctx).WithPrefix("topic_repo")

	query := sqlBuilder.Select("category", "COUNT(*)").From("topics").GroupBy("category")

	counts := make(map[models.ExamType]int)
	err := queryRows(ctx, r.db, query, func(rows *sql.Rows) error {
		var category models.ExamType
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return err
		}
		counts[category] = n
		return nil
	})
	if err != nil {
		log.Error("failed to count topics: %v", err)
		return nil, err
	}
	return counts, nil
}
