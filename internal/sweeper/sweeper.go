package sweeper

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinledger/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SessionRepo interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type TokenRepo interface {
	DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}

type job struct {
	name string
	run  func(ctx context.Context, now time.Time) (int64, error)
}

// Service periodically deactivates expired sessions and purges expired
// ad tokens. Neither job touches balances.
type Service struct {
	jobs       []job
	workerPool WorkerPoolI
	interval   time.Duration
	now        func() time.Time
}

func New(cfg *config.Config, sessions SessionRepo, tokens TokenRepo) *Service {
	jobs := []job{
		{name: "expired sessions", run: sessions.DeactivateExpired},
		{name: "expired ad tokens", run: tokens.DeleteExpiredTokens},
	}
	return &Service{
		jobs:       jobs,
		workerPool: NewWorkerPool(len(jobs)),
		interval:   cfg.SweepInterval,
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := s.now()

	var g errgroup.Group
	for _, j := range s.jobs {
		j := j
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.runJob(ctx, j, now)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling sweep", zap.Error(err))
	}
}

func (s *Service) runJob(ctx context.Context, j job, now time.Time) error {
	n, err := j.run(ctx, now)
	if err != nil {
		return fmt.Errorf("sweep %s: %w", j.name, err)
	}
	if n > 0 {
		zap.L().Info("Sweep completed", zap.String("job", j.name), zap.Int64("rows", n))
	}
	return nil
}
