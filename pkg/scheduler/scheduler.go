package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const cleanupTimeout = time.Minute

// SessionCleaner dipenuhi oleh repository.SessionRepository
type SessionCleaner interface {
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type Scheduler struct {
	inner gocron.Scheduler
	log   *zap.Logger
}

func New(log *zap.Logger) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("init scheduler: %w", err)
	}
	return &Scheduler{
		inner: inner,
		log:   log.With(zap.String("component", "scheduler")),
	}, nil
}

// RegisterSessionCleanup hapus session login yang expired sesuai jadwal cron (5 field)
func (s *Scheduler) RegisterSessionCleanup(cron string, cleaner SessionCleaner) error {
	job, err := s.inner.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
			defer cancel()
			s.cleanSessions(ctx, cleaner)
		}),
		gocron.WithName("session-cleanup"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register session cleanup %q: %w", cron, err)
	}

	s.log.Info("Job registered",
		zap.String("job", job.Name()),
		zap.String("job_id", job.ID().String()),
		zap.String("cron", cron))
	return nil
}

func (s *Scheduler) cleanSessions(ctx context.Context, cleaner SessionCleaner) {
	removed, err := cleaner.CleanExpiredSessions(ctx)
	if err != nil {
		s.log.Error("Session cleanup failed", zap.Error(err))
		return
	}
	s.log.Info("Expired sessions removed", zap.Int64("count", removed))
}

func (s *Scheduler) Jobs() int {
	return len(s.inner.Jobs())
}

func (s *Scheduler) Start() {
	s.inner.Start()
	s.log.Info("Scheduler started", zap.Int("jobs", s.Jobs()))
}

func (s *Scheduler) Shutdown() error {
	return s.inner.Shutdown()
}
