// Package practice drives one run-through of a topic's word list, either as
// flashcards or as a multiple-choice quiz.
//
// A Session is owned by a single caller and is not safe for concurrent use;
// Store serializes access when sessions are shared across HTTP requests.
package practice

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/vytor/vocabflash/internal/models"
)

// Mode is fixed for the lifetime of a session.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeQuiz      Mode = "quiz"
)

// ParseMode accepts "flashcard" or "quiz"; an empty string means flashcard.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFlashcard:
		return ModeFlashcard, true
	case ModeQuiz:
		return ModeQuiz, true
	default:
		return "", false
	}
}

// State is the observable position in the mode's two-state cycle.
type State string

const (
	StateFlashcardFront State = "flashcard.front"
	StateFlashcardBack  State = "flashcard.back"
	StateQuizUnanswered State = "quiz.unanswered"
	StateQuizAnswered   State = "quiz.answered"
)

var (
	ErrEmptyWords  = errors.New("practice: word list is empty")
	ErrInvalidMode = errors.New("practice: invalid mode")
)

// Score counts submitted quiz answers. Correct never exceeds Total.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percent is the rounded share of correct answers, 0 before any answer.
func (s Score) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Correct*100 + s.Total/2) / s.Total
}

// Shuffler is the randomness a session needs. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns an independently seeded source for one session.
func NewShuffler() Shuffler {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

type SessionOption func(*Session)

// WithShuffler injects the randomness used for quiz options.
func WithShuffler(r Shuffler) SessionOption {
	return func(s *Session) {
		s.rng = r
	}
}

type Session struct {
	words   []models.VocabularyWord
	pool    []models.VocabularyWord
	mode    Mode
	rng     Shuffler
	index   int
	reveal  bool
	score   Score
	picked  int
	options []string
	studied map[string]struct{}
}

// NewSession starts at the first word. In quiz mode pool supplies the
// distractor definitions; a nil pool falls back to the session's own words.
// Callers are expected to present an empty state instead of passing no words.
func NewSession(words []models.VocabularyWord, mode Mode, pool []models.VocabularyWord, opts ...SessionOption) (*Session, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWords
	}
	if mode != ModeFlashcard && mode != ModeQuiz {
		return nil, ErrInvalidMode
	}

	s := &Session{
		words:   append([]models.VocabularyWord(nil), words...),
		mode:    mode,
		picked:  -1,
		studied: make(map[string]struct{}),
	}
	if mode == ModeQuiz {
		if pool == nil {
			pool = words
		}
		s.pool = append([]models.VocabularyWord(nil), pool...)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewShuffler()
	}

	s.regenerate()
	return s, nil
}

// Advance moves to the next word once the current one has been revealed or
// answered. It reports false and changes nothing otherwise, or on the last word.
func (s *Session) Advance() bool {
	if !s.reveal || s.IsLast() {
		return false
	}
	s.studied[s.words[s.index].ID] = struct{}{}
	s.index++
	s.startTurn()
	return true
}

// Retreat moves to the previous word. Recorded answers are kept.
func (s *Session) Retreat() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	s.startTurn()
	return true
}

// Reveal shows the back of the current flashcard.
func (s *Session) Reveal() bool {
	if s.mode != ModeFlashcard {
		return false
	}
	s.reveal = true
	return true
}

// SubmitAnswer records the option picked for the current quiz word. An
// answer is final until the session navigates or resets.
func (s *Session) SubmitAnswer(option int) bool {
	if s.mode != ModeQuiz || s.reveal {
		return false
	}
	if option < 0 || option >= len(s.options) {
		return false
	}
	s.picked = option
	s.score.Total++
	if s.options[option] == s.words[s.index].Definition {
		s.score.Correct++
	}
	s.reveal = true
	return true
}

// Reset returns to the first word and clears score and studied words.
func (s *Session) Reset() {
	s.index = 0
	s.score = Score{}
	s.studied = make(map[string]struct{})
	s.startTurn()
}

func (s *Session) startTurn() {
	s.reveal = false
	s.picked = -1
	s.regenerate()
}

func (s *Session) regenerate() {
	if s.mode != ModeQuiz {
		s.options = nil
		return
	}
	s.options = BuildOptions(s.words[s.index], s.pool, s.rng)
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Index() int { return s.index }

func (s *Session) Len() int { return len(s.words) }

func (s *Session) IsLast() bool { return s.index == len(s.words)-1 }

func (s *Session) CurrentWord() models.VocabularyWord { return s.words[s.index] }

func (s *Session) Revealed() bool { return s.reveal }

func (s *Session) Score() Score { return s.score }

// QuizOptions returns a copy of the current options; nil in flashcard mode.
func (s *Session) QuizOptions() []string {
	if s.options == nil {
		return nil
	}
	return append([]string(nil), s.options...)
}

// SelectedOption returns the submitted option index, if any.
func (s *Session) SelectedOption() (int, bool) {
	return s.picked, s.picked >= 0
}

// StudiedCount is the number of distinct words moved past with Advance.
func (s *Session) StudiedCount() int { return len(s.studied) }

func (s *Session) State() State {
	switch {
	case s.mode == ModeFlashcard && s.reveal:
		return StateFlashcardBack
	case s.mode == ModeFlashcard:
		return StateFlashcardFront
	case s.reveal:
		return StateQuizAnswered
	default:
		return StateQuizUnanswered
	}
}

// ProgressPercent is (index+1)/len*100, exactly 100 on the last word.
func (s *Session) ProgressPercent() float64 {
	return float64(s.index+1) * 100 / float64(len(s.words))
}
