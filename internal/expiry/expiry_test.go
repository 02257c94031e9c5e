package expiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/config"
	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	cfg := &config.Config{SweepInterval: time.Minute, SweepWorkers: 4}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(cfg, repo)
	return service, repo
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func waitForTasks(wg *sync.WaitGroup, t *testing.T) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep tasks did not finish in time")
	}
}

func TestService_sweep(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	t.Run("expires every stale transaction", func(t *testing.T) {
		service, repo := NewMock(t)

		repo.EXPECT().FindExpiredPending(gomock.Any(), gomock.Any(), 1000).Return([]domain.Transaction{
			{ID: first, Status: domain.PendingStatus, Amount: 800},
			{ID: second, Status: domain.PendingStatus, Amount: 1200},
		}, nil)

		var wg sync.WaitGroup
		wg.Add(2)
		repo.EXPECT().UpdateStatus(gomock.Any(), first, domain.PendingStatus, domain.FailedStatus).DoAndReturn(
			func(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
				defer wg.Done()
				return true, nil
			},
		)
		repo.EXPECT().UpdateStatus(gomock.Any(), second, domain.PendingStatus, domain.FailedStatus).DoAndReturn(
			func(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
				defer wg.Done()
				return false, nil
			},
		)

		service.sweep(context.Background())
		waitForTasks(&wg, t)
	})

	t.Run("fetch failure aborts the sweep", func(t *testing.T) {
		service, repo := NewMock(t)

		repo.EXPECT().FindExpiredPending(gomock.Any(), gomock.Any(), 1000).Return(nil, errors.New("database error"))
		service.sweep(context.Background())
	})
}

func TestService_expire(t *testing.T) {
	service, repo := NewMock(t)
	transactionID := uuid.New()
	transaction := domain.Transaction{ID: transactionID, Status: domain.PendingStatus}

	repo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(true, nil)
	assert.NoError(t, service.expire(context.Background(), transaction))

	repo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(false, nil)
	assert.NoError(t, service.expire(context.Background(), transaction))

	repo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(false, errors.New("database error"))
	assert.Error(t, service.expire(context.Background(), transaction))
}
