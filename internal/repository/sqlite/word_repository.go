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

var wordColumns = []string{"id", "word", "pronunciation", "part_of_speech", "definition", "example", "translation", "difficulty", "topic_id"}

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func scanWord(row interface{ Scan(...any) error }, w *models.VocabularyWord) error {
	return row.Scan(&w.ID, &w.Word, &w.Pronunciation, &w.PartOfSpeech, &w.Definition, &w.Example, &w.Translation, &w.Difficulty, &w.TopicID)
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.VocabularyWord, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: topic_id=%s, difficulty=%s, limit=%d", filter.TopicID, filter.Difficulty, filter.Limit)

	query := sqlBuilder.Select(wordColumns...).From("words")
	if filter.TopicID != "" {
		query = query.Where(squirrel.Eq{"topic_id": filter.TopicID})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	query = query.OrderBy("position ASC", "id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	words, err := r.collect(ctx, query)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	log.Debug("listed %d words", len(words))
	return words, nil
}

// All returns every word across topics, the pool quiz distractors are drawn from.
func (r *wordRepository) All(ctx context.Context) ([]models.VocabularyWord, error) {
	return r.List(ctx, models.WordFilter{})
}

func (r *wordRepository) Get(ctx context.Context, id string) (*models.VocabularyWord, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	q, args, err := sqlBuilder.Select(wordColumns...).From("words").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var w models.VocabularyWord
	if err := scanWord(r.db.QueryRowContext(ctx, q, args...), &w); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to get word: %v", err)
		}
		return nil, err
	}
	return &w, nil
}

func (r *wordRepository) collect(ctx context.Context, query squirrel.SelectBuilder) ([]models.VocabularyWord, error) {
	var words []models.VocabularyWord
	err := queryRows(ctx, r.db, query, func(rows *sql.Rows) error {
		var w models.VocabularyWord
		if err := scanWord(rows, &w); err != nil {
			return err
		}
		words = append(words, w)
		return nil
	})
	return words, err
}
