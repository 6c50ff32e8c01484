package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/practice"
	"github.com/vytor/vocabflash/internal/worker"
)

type funcJob struct {
	name string
	fn   func(context.Context) error
}

func (j funcJob) Name() string                  { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.fn(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())
	defer pool.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ran := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := pool.Submit(funcJob{name: "count", fn: func(context.Context) error {
			defer wg.Done()
			mu.Lock()
			ran++
			mu.Unlock()
			return nil
		}})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, 5, ran)
}

func TestPool_FailingAndPanickingJobsDoNotKillWorkers(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Submit(funcJob{name: "fail", fn: func(context.Context) error {
		return errors.New("boom")
	}}))
	require.NoError(t, pool.Submit(funcJob{name: "panic", fn: func(context.Context) error {
		panic("boom")
	}}))

	done := make(chan struct{})
	require.NoError(t, pool.Submit(funcJob{name: "ok", fn: func(context.Context) error {
		close(done)
		return nil
	}}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive failing jobs")
	}
}

func TestPool_SubmitIsNonBlocking(t *testing.T) {
	pool := worker.NewPool(1, 1)
	defer pool.Stop()

	noop := funcJob{name: "noop", fn: func(context.Context) error { return nil }}
	require.NoError(t, pool.Submit(noop))
	assert.ErrorIs(t, pool.Submit(noop), worker.ErrQueueFull)
	assert.Equal(t, 1, pool.QueueSize())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Submit(funcJob{name: "late", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

func TestSweepSessionsJob(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := practice.NewStore(time.Minute)
	store.SetClock(func() time.Time { return now })

	s, err := practice.NewSession([]models.VocabularyWord{{ID: "w1", Definition: "d"}}, practice.ModeFlashcard, nil)
	require.NoError(t, err)
	store.Put(practice.Meta{}, s)

	job := &worker.SweepSessionsJob{Store: store}
	assert.Equal(t, "sweep_sessions", job.Name())

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 0, store.Len())
}

func TestSweepSessionsJob_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := &worker.SweepSessionsJob{Store: practice.NewStore(time.Minute)}
	assert.ErrorIs(t, job.Run(ctx), context.Canceled)
}
