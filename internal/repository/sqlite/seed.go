package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vytor/vocabflash/internal/catalog"
	"github.com/vytor/vocabflash/internal/logger"
)

// SeedCatalog upserts the catalog in one transaction. Rows keep the
// catalog's order through their position column.
func SeedCatalog(ctx context.Context, db *sql.DB, c *catalog.Catalog) error {
	log := logger.FromContext(ctx).WithPrefix("seed")
	log.Info("seeding catalog: %d topics, %d words, %d posts", len(c.Topics), len(c.Words), len(c.Posts))

	return tx(ctx, db, func(tx *sql.Tx) error {
		for i, t := range c.Topics {
			q, args, err := sqlBuilder.Insert("topics").
				Columns("id", "name", "description", "category", "difficulty", "word_count", "slug", "image_url", "position").
				Values(t.ID, t.Name, t.Description, t.Category, t.Difficulty, t.WordCount, t.Slug, t.ImageURL, i).
				Suffix(`ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description,
category = excluded.category, difficulty = excluded.difficulty, word_count = excluded.word_count,
slug = excluded.slug, image_url = excluded.image_url, position = excluded.position`).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return fmt.Errorf("seed topic %s: %w", t.ID, err)
			}
		}

		for i, w := range c.Words {
			q, args, err := sqlBuilder.Insert("words").
				Columns("id", "topic_id", "word", "pronunciation", "part_of_speech", "definition", "example", "translation", "difficulty", "position").
				Values(w.ID, w.TopicID, w.Word, w.Pronunciation, w.PartOfSpeech, w.Definition, w.Example, w.Translation, w.Difficulty, i).
				Suffix(`ON CONFLICT(id) DO UPDATE SET topic_id = excluded.topic_id, word = excluded.word,
pronunciation = excluded.pronunciation, part_of_speech = excluded.part_of_speech,
definition = excluded.definition, example = excluded.example, translation = excluded.translation,
difficulty = excluded.difficulty, position = excluded.position`).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return fmt.Errorf("seed word %s: %w", w.ID, err)
			}
		}

		for i, p := range c.Posts {
			q, args, err := sqlBuilder.Insert("blog_posts").
				Columns("id", "slug", "title", "author", "published_on", "image_url", "content", "position").
				Values(p.ID, p.Slug, p.Title, p.Author, p.PublishedOn, p.ImageURL, p.Content, i).
				Suffix(`ON CONFLICT(id) DO UPDATE SET slug = excluded.slug, title = excluded.title,
author = excluded.author, published_on = excluded.published_on, image_url = excluded.image_url,
content = excluded.content, position = excluded.position`).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return fmt.Errorf("seed post %s: %w", p.ID, err)
			}

			if _, err := tx.ExecContext(ctx, `DELETE FROM blog_post_tags WHERE post_id = ?`, p.ID); err != nil {
				return err
			}
			if len(p.Tags) == 0 {
				continue
			}
			insert := sqlBuilder.Insert("blog_post_tags").Columns("post_id", "tag", "position")
			for j, tag := range p.Tags {
				insert = insert.Values(p.ID, tag, j)
			}
			q, args, err = insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return fmt.Errorf("seed tags for post %s: %w", p.ID, err)
			}
		}
		return nil
	})
}
