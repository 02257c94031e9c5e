// Package expiry fails pending purchase transactions whose payment link
// was never verified before the expiry window closed. The sweeper keeps
// abandoned payments from pinning exams in limbo forever.
package expiry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/config"
	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=expiry.go -destination=expiry_mock.go -package=expiry

type Repo interface {
	FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}

var sweepingTransactions sync.Map

type Service struct {
	repo          Repo
	limit         int32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:          repo,
		limit:         1000,
		workerPool:    NewWorkerPool(cfg.SweepWorkers),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Expiry sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping expiry sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	transactions, err := s.repo.FindExpiredPending(ctx, time.Now(), int(atomic.LoadInt32(&s.limit)))
	if err != nil {
		zap.L().Error("Failed to fetch expired transactions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, transaction := range transactions {
		transaction := transaction

		if _, loaded := sweepingTransactions.LoadOrStore(transaction.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingTransactions.Delete(transaction.ID)
				return s.expire(ctx, transaction)
			})
			if err != nil {
				sweepingTransactions.Delete(transaction.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping expired transactions", zap.Error(err))
	}
}

// expire flips a stale pending transaction to failed. A lost status race
// means the buyer verified at the last moment, which is fine.
func (s *Service) expire(ctx context.Context, transaction domain.Transaction) error {
	ok, err := s.repo.UpdateStatus(ctx, transaction.ID, domain.PendingStatus, domain.FailedStatus)
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Info("Transaction settled before sweep", zap.String("transactionID", transaction.ID.String()))
		return nil
	}
	zap.L().Info("Expired pending transaction",
		zap.String("transactionID", transaction.ID.String()),
		zap.Int64("amount", transaction.Amount),
	)
	return nil
}
