// Package catalog holds the built-in vocabulary and blog content that is
// seeded into the database at startup.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/vytor/vocabflash/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

type Catalog struct {
	Topics []models.Topic          `yaml:"topics"`
	Words  []models.VocabularyWord `yaml:"words"`
	Posts  []models.BlogPost       `yaml:"posts"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS reads topics.yaml, words.yaml and posts.yaml from fsys and
// validates the result.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var c Catalog
	for _, name := range []string{"topics.yaml", "words.yaml", "posts.yaml"} {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var part Catalog
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.Topics = append(c.Topics, part.Topics...)
		c.Words = append(c.Words, part.Words...)
		c.Posts = append(c.Posts, part.Posts...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks identifiers are unique and every word belongs to a known topic.
func (c *Catalog) Validate() error {
	topicIDs := make(map[string]bool, len(c.Topics))
	slugs := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if t.ID == "" || t.Slug == "" {
			return fmt.Errorf("topic %q: id and slug are required", t.Name)
		}
		if _, ok := models.ParseExam(string(t.Category)); !ok {
			return fmt.Errorf("topic %s: unknown category %q", t.ID, t.Category)
		}
		if !t.Difficulty.Valid() {
			return fmt.Errorf("topic %s: unknown difficulty %q", t.ID, t.Difficulty)
		}
		if topicIDs[t.ID] {
			return fmt.Errorf("duplicate topic id %s", t.ID)
		}
		key := string(t.Category) + "/" + t.Slug
		if slugs[key] {
			return fmt.Errorf("duplicate topic slug %s", key)
		}
		topicIDs[t.ID] = true
		slugs[key] = true
	}

	wordIDs := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		if w.ID == "" || w.Definition == "" {
			return fmt.Errorf("word %q: id and definition are required", w.Word)
		}
		if wordIDs[w.ID] {
			return fmt.Errorf("duplicate word id %s", w.ID)
		}
		if !topicIDs[w.TopicID] {
			return fmt.Errorf("word %s: unknown topic %s", w.ID, w.TopicID)
		}
		if !w.Difficulty.Valid() {
			return fmt.Errorf("word %s: unknown difficulty %q", w.ID, w.Difficulty)
		}
		wordIDs[w.ID] = true
	}

	postIDs := make(map[string]bool, len(c.Posts))
	postSlugs := make(map[string]bool, len(c.Posts))
	for _, p := range c.Posts {
		if p.ID == "" || p.Slug == "" {
			return fmt.Errorf("post %q: id and slug are required", p.Title)
		}
		if postIDs[p.ID] || postSlugs[p.Slug] {
			return fmt.Errorf("duplicate post %s (%s)", p.ID, p.Slug)
		}
		postIDs[p.ID] = true
		postSlugs[p.Slug] = true
	}
	return nil
}
