package models

import "strings"

// ExamType is the exam a topic prepares for.
type ExamType string

const (
	ExamTOEIC ExamType = "toeic"
	ExamIELTS ExamType = "ielts"
)

// Exams lists the supported exams in display order.
var Exams = []ExamType{ExamTOEIC, ExamIELTS}

// ParseExam accepts an exam identifier in any letter case.
func ParseExam(s string) (ExamType, bool) {
	switch ExamType(strings.ToLower(strings.TrimSpace(s))) {
	case ExamTOEIC:
		return ExamTOEIC, true
	case ExamIELTS:
		return ExamIELTS, true
	default:
		return "", false
	}
}

// Label is the upper-case name shown to users.
func (e ExamType) Label() string {
	return strings.ToUpper(string(e))
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type VocabularyWord struct {
	ID            string     `json:"id" yaml:"id"`
	Word          string     `json:"word" yaml:"word"`
	Pronunciation string     `json:"pronunciation" yaml:"pronunciation"`
	PartOfSpeech  string     `json:"part_of_speech" yaml:"part_of_speech"`
	Definition    string     `json:"definition" yaml:"definition"`
	Example       string     `json:"example" yaml:"example"`
	Translation   string     `json:"translation,omitempty" yaml:"translation"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	TopicID       string     `json:"topic_id" yaml:"topic_id"`
}

type Topic struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Category    ExamType   `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	WordCount   int        `json:"word_count" yaml:"word_count"`
	Slug        string     `json:"slug" yaml:"slug"`
	ImageURL    string     `json:"image_url,omitempty" yaml:"image_url"`
}

// TopicWithWords is a topic joined with its member words.
type TopicWithWords struct {
	Topic
	Words []VocabularyWord `json:"words"`
}

type TopicFilter struct {
	Category   ExamType
	Difficulty Difficulty
}

type WordFilter struct {
	TopicID    string
	Difficulty Difficulty
	Limit      int
}

// ExamSummary is the per-exam card on the home page.
type ExamSummary struct {
	Exam       ExamType `json:"exam"`
	TopicCount int      `json:"topic_count"`
}
