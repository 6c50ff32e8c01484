package models

import (
	"fmt"
	"strings"
)

type BlogPost struct {
	ID          string   `json:"id" yaml:"id"`
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Author      string   `json:"author" yaml:"author"`
	PublishedOn string   `json:"published_on" yaml:"published_on"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Content     string   `json:"content" yaml:"content"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Summary is the one-line description offered to the content suggester.
func (p BlogPost) Summary() string {
	return fmt.Sprintf("ID: %s, Title: %s, Tags: %s", p.ID, p.Title, strings.Join(p.Tags, ", "))
}

// HasTag matches case-insensitively.
func (p BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type BlogFilter struct {
	Tag   string
	Limit int
}
