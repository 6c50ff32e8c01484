package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/practice"
)

// ErrEmptyTopic is wrapped by StartSession when the topic has no words.
var ErrEmptyTopic = stderrors.New("topic has no words")

// Action is a user input applied to a live session.
type Action string

const (
	ActionReveal  Action = "reveal"
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionAnswer  Action = "answer"
	ActionReset   Action = "reset"
)

func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(s)); a {
	case ActionReveal, ActionAdvance, ActionRetreat, ActionAnswer, ActionReset:
		return a, true
	}
	return "", false
}

// SessionView is a session snapshot plus what it is practicing. Applied is
// false when the last action was not permitted in the current state.
type SessionView struct {
	ID        string `json:"id"`
	Exam      string `json:"exam"`
	TopicSlug string `json:"topic_slug"`
	TopicName string `json:"topic_name"`
	Applied   bool   `json:"applied"`
	practice.View
}

// StudyService runs practice sessions
type StudyService interface {
	StartSession(ctx context.Context, exam, slug, mode string) (*SessionView, error)
	GetSession(ctx context.Context, id string) (*SessionView, error)
	Apply(ctx context.Context, id string, action Action, option int) (*SessionView, error)
}

type StudyOption func(*studyService)

// WithShufflerFactory sets where each new session gets its randomness.
func WithShufflerFactory(fn func() practice.Shuffler) StudyOption {
	return func(s *studyService) {
		s.newShuffler = fn
	}
}

type studyService struct {
	topics      TopicService
	store       *practice.Store
	newShuffler func() practice.Shuffler
}

// NewStudyService creates a new StudyService
func NewStudyService(topics TopicService, store *practice.Store, opts ...StudyOption) StudyService {
	s := &studyService{
		topics:      topics,
		store:       store,
		newShuffler: practice.NewShuffler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *studyService) StartSession(ctx context.Context, exam, slug, mode string) (*SessionView, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting session: exam=%s, slug=%s, mode=%s", exam, slug, mode)

	m, ok := practice.ParseMode(mode)
	if !ok {
		return nil, errors.NewValidationError("mode", "must be flashcard or quiz")
	}

	topic, err := s.topics.GetTopicWithWords(ctx, exam, slug)
	if err != nil {
		return nil, err
	}
	if len(topic.Words) == 0 {
		appErr := errors.NewBadRequestError("topic has no words to practice")
		appErr.Err = ErrEmptyTopic
		return nil, appErr
	}

	var pool = topic.Words
	if m == practice.ModeQuiz {
		pool, err = s.topics.DistractorPool(ctx)
		if err != nil {
			return nil, err
		}
	}

	session, err := practice.NewSession(topic.Words, m, pool, practice.WithShuffler(s.newShuffler()))
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	meta := practice.Meta{Exam: string(topic.Category), TopicSlug: topic.Slug, TopicName: topic.Name}
	id := s.store.Put(meta, session)
	log.Info("session started: id=%s, topic=%s, mode=%s, words=%d", id, topic.ID, m, len(topic.Words))

	return newSessionView(id, meta, session, true), nil
}

func (s *studyService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	var view *SessionView
	ok := s.store.With(id, func(meta practice.Meta, session *practice.Session) {
		view = newSessionView(id, meta, session, true)
	})
	if !ok {
		logger.FromContext(ctx).Debug("session not found: id=%s", id)
		return nil, errors.NewNotFoundError("session", id)
	}
	return view, nil
}

func (s *studyService) Apply(ctx context.Context, id string, action Action, option int) (*SessionView, error) {
	log := logger.FromContext(ctx)

	var view *SessionView
	var unknown bool
	ok := s.store.With(id, func(meta practice.Meta, session *practice.Session) {
		var applied bool
		switch action {
		case ActionReveal:
			applied = session.Reveal()
		case ActionAdvance:
			applied = session.Advance()
		case ActionRetreat:
			applied = session.Retreat()
		case ActionAnswer:
			applied = session.SubmitAnswer(option)
		case ActionReset:
			session.Reset()
			applied = true
		default:
			unknown = true
			return
		}
		view = newSessionView(id, meta, session, applied)
	})
	if !ok {
		return nil, errors.NewNotFoundError("session", id)
	}
	if unknown {
		return nil, errors.NewValidationError("action", "unknown action "+string(action))
	}

	log.Debug("session action: id=%s, action=%s, applied=%t, index=%d", id, action, view.Applied, view.Index)
	return view, nil
}

func newSessionView(id string, meta practice.Meta, session *practice.Session, applied bool) *SessionView {
	return &SessionView{
		ID:        id,
		Exam:      meta.Exam,
		TopicSlug: meta.TopicSlug,
		TopicName: meta.TopicName,
		Applied:   applied,
		View:      session.View(),
	}
}
