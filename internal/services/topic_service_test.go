package services_test

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/services"
	"github.com/vytor/vocabflash/internal/testutil/mocks"
)

func TestTopicService_ListTopics(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepository)
	wordRepo := new(mocks.MockWordRepository)
	svc := services.NewTopicService(topicRepo, wordRepo)
	ctx := context.Background()

	topics := []models.Topic{{ID: "t1", Category: models.ExamIELTS}}
	topicRepo.On("List", ctx, models.TopicFilter{Category: models.ExamIELTS}).Return(topics, nil)

	got, err := svc.ListTopics(ctx, "IELTS")
	require.NoError(t, err)
	assert.Equal(t, topics, got)
	topicRepo.AssertExpectations(t)
}

func TestTopicService_UnknownExamIsNotFound(t *testing.T) {
	svc := services.NewTopicService(new(mocks.MockTopicRepository), new(mocks.MockWordRepository))

	_, err := svc.ListTopics(context.Background(), "gre")
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.GetTopicWithWords(context.Background(), "gre", "anything")
	assert.True(t, errors.IsNotFound(err))
}

func TestTopicService_GetTopicWithWords(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepository)
	wordRepo := new(mocks.MockWordRepository)
	svc := services.NewTopicService(topicRepo, wordRepo)
	ctx := context.Background()

	topic := &models.Topic{ID: "toeic-business-1", Slug: "business-communication", Category: models.ExamTOEIC}
	words := []models.VocabularyWord{{ID: "word-1", TopicID: topic.ID}}
	topicRepo.On("GetBySlug", ctx, models.ExamTOEIC, "business-communication").Return(topic, nil)
	wordRepo.On("List", ctx, models.WordFilter{TopicID: topic.ID}).Return(words, nil)

	got, err := svc.GetTopicWithWords(ctx, "toeic", "business-communication")
	require.NoError(t, err)
	assert.Equal(t, *topic, got.Topic)
	assert.Equal(t, words, got.Words)
}

func TestTopicService_GetTopicWithWords_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing topic", func(t *testing.T) {
		topicRepo := new(mocks.MockTopicRepository)
		topicRepo.On("GetBySlug", ctx, models.ExamTOEIC, "nope").Return(nil, sql.ErrNoRows)
		svc := services.NewTopicService(topicRepo, new(mocks.MockWordRepository))

		_, err := svc.GetTopicWithWords(ctx, "toeic", "nope")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("word query fails", func(t *testing.T) {
		topicRepo := new(mocks.MockTopicRepository)
		wordRepo := new(mocks.MockWordRepository)
		topicRepo.On("GetBySlug", ctx, models.ExamTOEIC, "x").Return(&models.Topic{ID: "t"}, nil)
		wordRepo.On("List", ctx, mock.Anything).Return(nil, stderrors.New("disk"))
		svc := services.NewTopicService(topicRepo, wordRepo)

		_, err := svc.GetTopicWithWords(ctx, "toeic", "x")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInternal, errors.As(err).Code)
	})
}

func TestTopicService_ExamSummaries(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepository)
	svc := services.NewTopicService(topicRepo, new(mocks.MockWordRepository))
	ctx := context.Background()

	topicRepo.On("CountByCategory", ctx).Return(map[models.ExamType]int{models.ExamIELTS: 4}, nil)

	got, err := svc.ExamSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ExamSummary{
		{Exam: models.ExamTOEIC, TopicCount: 0},
		{Exam: models.ExamIELTS, TopicCount: 4},
	}, got)
}

func TestBlogService(t *testing.T) {
	blogRepo := new(mocks.MockBlogRepository)
	svc := services.NewBlogService(blogRepo)
	ctx := context.Background()

	posts := []models.BlogPost{
		{ID: "1", Tags: []string{"TOEIC", "Vocabulary"}},
		{ID: "2", Tags: []string{"IELTS", "vocabulary", "Speaking"}},
	}
	blogRepo.On("List", ctx, models.BlogFilter{}).Return(posts, nil)
	blogRepo.On("List", ctx, models.BlogFilter{Tag: "IELTS"}).Return(posts[1:], nil)
	blogRepo.On("GetBySlug", ctx, "missing").Return(nil, sql.ErrNoRows)

	got, err := svc.ListPosts(ctx, " IELTS ")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"IELTS", "Speaking", "TOEIC", "Vocabulary"}, tags)

	_, err = svc.GetPost(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}
