package services_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/practice"
	"github.com/vytor/vocabflash/internal/repository/sqlite"
	"github.com/vytor/vocabflash/internal/services"
	"github.com/vytor/vocabflash/internal/testutil"
)

// keepOrder is a Shuffler that leaves every slice untouched.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

type StudyServiceSuite struct {
	suite.Suite
	svc   services.StudyService
	store *practice.Store
	ctx   context.Context
}

func (s *StudyServiceSuite) SetupTest() {
	db := testutil.NewSeededTestDB(s.T())
	s.T().Cleanup(func() { testutil.MustClose(s.T(), db) })

	topics := services.NewTopicService(sqlite.NewTopicRepository(db), sqlite.NewWordRepository(db))
	s.store = practice.NewStore(time.Hour)
	s.svc = services.NewStudyService(topics, s.store,
		services.WithShufflerFactory(func() practice.Shuffler { return keepOrder{} }))
	s.ctx = context.Background()
}

func (s *StudyServiceSuite) TestStartSession_Flashcard() {
	view, err := s.svc.StartSession(s.ctx, "toeic", "business-communication", "")
	s.Require().NoError(err)

	s.Assert().NotEmpty(view.ID)
	s.Assert().Equal("toeic", view.Exam)
	s.Assert().Equal("Business Communication", view.TopicName)
	s.Assert().Equal(practice.ModeFlashcard, view.Mode)
	s.Assert().Equal(practice.StateFlashcardFront, view.State)
	s.Assert().Equal(5, view.Total)
	s.Assert().Equal("agenda", view.Word.Word)
	s.Assert().Empty(view.Options)
	s.Assert().Equal(1, s.store.Len())
}

func (s *StudyServiceSuite) TestStartSession_QuizUsesCrossTopicPool() {
	view, err := s.svc.StartSession(s.ctx, "ielts", "academic-writing", "quiz")
	s.Require().NoError(err)

	// with order preserved the pool's first three other definitions follow the answer
	s.Require().Len(view.Options, 4)
	s.Assert().Equal(view.Word.Definition, view.Options[0])
	s.Assert().Equal("A list of items to be discussed at a formal meeting", view.Options[1])
}

func (s *StudyServiceSuite) TestStartSession_Errors() {
	_, err := s.svc.StartSession(s.ctx, "toeic", "business-communication", "matching")
	s.Assert().Equal(errors.ErrCodeValidation, errors.As(err).Code)

	_, err = s.svc.StartSession(s.ctx, "gre", "business-communication", "quiz")
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.svc.StartSession(s.ctx, "toeic", "missing", "quiz")
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.svc.StartSession(s.ctx, "toeic", "travel-transportation", "flashcard")
	s.Assert().True(stderrors.Is(err, services.ErrEmptyTopic))
	s.Assert().Equal(0, s.store.Len())
}

func (s *StudyServiceSuite) TestApply_FlashcardFlow() {
	view, err := s.svc.StartSession(s.ctx, "toeic", "business-communication", "flashcard")
	s.Require().NoError(err)
	id := view.ID

	view, err = s.svc.Apply(s.ctx, id, services.ActionAdvance, 0)
	s.Require().NoError(err)
	s.Assert().False(view.Applied, "advance before reveal is rejected")
	s.Assert().Equal(0, view.Index)

	view, err = s.svc.Apply(s.ctx, id, services.ActionReveal, 0)
	s.Require().NoError(err)
	s.Assert().True(view.Applied)
	s.Assert().Equal(practice.StateFlashcardBack, view.State)

	view, err = s.svc.Apply(s.ctx, id, services.ActionAdvance, 0)
	s.Require().NoError(err)
	s.Assert().Equal(1, view.Index)
	s.Assert().Equal(1, view.StudiedCount)

	got, err := s.svc.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal(1, got.Index)

	view, err = s.svc.Apply(s.ctx, id, services.ActionReset, 0)
	s.Require().NoError(err)
	s.Assert().Equal(0, view.Index)
	s.Assert().Equal(0, view.StudiedCount)
}

func (s *StudyServiceSuite) TestApply_QuizAnswer() {
	view, err := s.svc.StartSession(s.ctx, "toeic", "business-communication", "quiz")
	s.Require().NoError(err)

	view, err = s.svc.Apply(s.ctx, view.ID, services.ActionAnswer, 0)
	s.Require().NoError(err)
	s.Assert().True(view.Applied)
	s.Assert().Equal(practice.Score{Correct: 1, Total: 1}, view.Score)
	s.Require().NotNil(view.CorrectOption)
	s.Assert().Equal(0, *view.CorrectOption)

	view, err = s.svc.Apply(s.ctx, view.ID, services.ActionAnswer, 1)
	s.Require().NoError(err)
	s.Assert().False(view.Applied, "second answer is rejected")
	s.Assert().Equal(practice.Score{Correct: 1, Total: 1}, view.Score)
}

func (s *StudyServiceSuite) TestApply_Errors() {
	_, err := s.svc.Apply(s.ctx, "missing", services.ActionReveal, 0)
	s.Assert().True(errors.IsNotFound(err))

	view, err := s.svc.StartSession(s.ctx, "toeic", "business-communication", "")
	s.Require().NoError(err)
	_, err = s.svc.Apply(s.ctx, view.ID, services.Action("skip"), 0)
	s.Assert().Equal(errors.ErrCodeValidation, errors.As(err).Code)

	_, err = s.svc.GetSession(s.ctx, "missing")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *StudyServiceSuite) TestParseAction() {
	a, ok := services.ParseAction("ANSWER")
	s.Assert().True(ok)
	s.Assert().Equal(services.ActionAnswer, a)

	_, ok = services.ParseAction("skip")
	s.Assert().False(ok)
}

func TestStudyServiceSuite(t *testing.T) {
	suite.Run(t, new(StudyServiceSuite))
}
