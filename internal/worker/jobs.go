package worker

import (
	"context"

	"github.com/vytor/vocabflash/internal/logger"
)

// SessionSweeper is satisfied by practice.Store.
type SessionSweeper interface {
	Sweep() int
	Len() int
}

// SweepSessionsJob evicts practice sessions idle for longer than the store's TTL.
type SweepSessionsJob struct {
	Store SessionSweeper
}

func (j *SweepSessionsJob) Name() string { return "sweep_sessions" }

func (j *SweepSessionsJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	removed := j.Store.Sweep()
	if removed > 0 {
		log.Info("evicted %d idle sessions, %d remain", removed, j.Store.Len())
	}
	return nil
}
