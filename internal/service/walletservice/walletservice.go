package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	// Update is a compare-and-swap on the wallet version; it returns
	// ErrVersionConflict when another writer got there first.
	Update(ctx context.Context, wallet *domain.Wallet) error
}

type WithdrawalRepo interface {
	CreateRequest(ctx context.Context, request *domain.WithdrawalRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to, adminNotes string, processedAt time.Time) (bool, error)
	ListRequestsByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	ListRequestsByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type Service struct {
	walletRepo     WalletRepo
	withdrawalRepo WithdrawalRepo
	ledgerRepo     LedgerRepo
	txManager      pg.TXManager
}

func New(walletRepo WalletRepo, withdrawalRepo WithdrawalRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
		ledgerRepo:     ledgerRepo,
		txManager:      txManager,
	}
}

const (
	ApproveAction string = "APPROVE"
	RejectAction  string = "REJECT"
)

// maxCASAttempts bounds the retries on wallet version conflicts.
const maxCASAttempts = 3

var (
	ErrVersionConflict     = errors.New("wallet version conflict")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidAction       = errors.New("unknown action")
	ErrRequestNotFound     = errors.New("withdrawal request not found")
	ErrAlreadyProcessed    = errors.New("withdrawal request already processed")
)

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.ledgerRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Credit adds an earning to the wallet balance.
func (s *Service) Credit(ctx context.Context, userID int, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withRetry(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}
		wallet.Balance += amount
		wallet.TotalEarnings += amount
		return s.walletRepo.Update(ctx, wallet)
	})
}

// Debit removes funds from the available balance; it never lets the
// available balance go negative.
func (s *Service) Debit(ctx context.Context, userID int, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withRetry(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}
		if wallet.Available() < amount {
			return ErrInsufficientBalance
		}
		wallet.Balance -= amount
		return s.walletRepo.Update(ctx, wallet)
	})
}

// RequestWithdrawal moves amount into pendingWithdrawals and records a
// pending WITHDRAWAL transaction plus the admin-facing request, all in one
// database transaction.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount int64, cardNumber string) (*domain.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var request *domain.WithdrawalRequest
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.GetByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrWalletNotFound
			}
			if wallet.Available() < amount {
				return ErrInsufficientBalance
			}

			wallet.PendingWithdrawals += amount
			if err := s.walletRepo.Update(ctx, wallet); err != nil {
				return err
			}

			now := time.Now()
			transaction := &domain.Transaction{
				ID:        uuid.New(),
				UserID:    userID,
				Type:      domain.WithdrawalTransaction,
				Status:    domain.PendingStatus,
				Amount:    amount,
				CreatedAt: now,
			}
			if err := s.ledgerRepo.Create(ctx, transaction); err != nil {
				zap.L().Error("can't save withdrawal transaction", zap.Error(err))
				return err
			}

			request = &domain.WithdrawalRequest{
				ID:            uuid.New(),
				UserID:        userID,
				TransactionID: transaction.ID,
				Amount:        amount,
				CardNumber:    cardNumber,
				Status:        domain.WithdrawalPending,
				CreatedAt:     now,
			}
			if err := s.withdrawalRepo.CreateRequest(ctx, request); err != nil {
				zap.L().Error("can't save withdrawal request", zap.Error(err))
				return err
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ProcessWithdrawal settles a pending request. APPROVE moves the amount
// out of balance and pendingWithdrawals and into totalWithdrawals; REJECT
// only releases pendingWithdrawals, returning the funds to the available
// balance. Double-processing fails.
func (s *Service) ProcessWithdrawal(ctx context.Context, requestID uuid.UUID, action, adminNotes string) (*domain.WithdrawalRequest, error) {
	if action != ApproveAction && action != RejectAction {
		return nil, ErrInvalidAction
	}

	var processed *domain.WithdrawalRequest
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			request, err := s.withdrawalRepo.GetRequestByID(ctx, requestID)
			if err != nil {
				return err
			}
			if request == nil {
				return ErrRequestNotFound
			}
			if request.Status != domain.WithdrawalPending {
				return ErrAlreadyProcessed
			}

			wallet, err := s.walletRepo.GetByUserID(ctx, request.UserID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrWalletNotFound
			}
			if wallet.PendingWithdrawals < request.Amount {
				return ErrInsufficientBalance
			}

			requestStatus := domain.WithdrawalRejected
			transactionStatus := domain.FailedStatus
			if action == ApproveAction {
				if wallet.Balance < request.Amount {
					return ErrInsufficientBalance
				}
				wallet.Balance -= request.Amount
				wallet.TotalWithdrawals += request.Amount
				requestStatus = domain.WithdrawalApproved
				transactionStatus = domain.CompletedStatus
			}
			wallet.PendingWithdrawals -= request.Amount

			if err := s.walletRepo.Update(ctx, wallet); err != nil {
				return err
			}

			now := time.Now()
			ok, err := s.withdrawalRepo.UpdateRequestStatus(ctx, requestID, domain.WithdrawalPending, requestStatus, adminNotes, now)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}

			if _, err := s.ledgerRepo.UpdateStatus(ctx, request.TransactionID, domain.PendingStatus, transactionStatus); err != nil {
				return err
			}

			request.Status = requestStatus
			request.AdminNotes = adminNotes
			request.ProcessedAt = &now
			processed = request
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal request processed",
		zap.String("requestID", requestID.String()),
		zap.String("action", action),
	)
	return processed, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListRequestsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListWithdrawalRequests(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListRequestsByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		err = fn(ctx)
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
		zap.L().Warn("wallet version conflict, retrying", zap.Int("attempt", attempt))
	}
	return err
}
