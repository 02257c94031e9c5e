package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/gateway"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
	SetReference(ctx context.Context, id uuid.UUID, reference string) error
	CountCompletedPurchases(ctx context.Context, userID int) (int, error)
	FindEarningByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type PricingService interface {
	ExamPricing(ctx context.Context, examID int, userType string, isFirstPurchase bool) (*domain.Exam, *domain.PricingResult, error)
}

type RevenueService interface {
	CalculateSharing(ctx context.Context, amount int64, examID *int) (*domain.RevenueShare, error)
}

type WalletService interface {
	Credit(ctx context.Context, userID int, amount int64) error
	Debit(ctx context.Context, userID int, amount int64) error
}

type Gateway interface {
	CreatePaymentLink(ctx context.Context, amount int64, callbackURL string) (*gateway.PaymentLink, error)
	VerifyPayment(ctx context.Context, token, reference string) (string, error)
}

type Service struct {
	transactionRepo TransactionRepo
	userRepo        UserRepo
	pricingService  PricingService
	revenueService  RevenueService
	walletService   WalletService
	gateway         Gateway
	txManager       pg.TXManager
	paymentExpiry   time.Duration
}

func New(
	transactionRepo TransactionRepo,
	userRepo UserRepo,
	pricingService PricingService,
	revenueService RevenueService,
	walletService WalletService,
	gw Gateway,
	txManager pg.TXManager,
	paymentExpiry time.Duration,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		pricingService:  pricingService,
		revenueService:  revenueService,
		walletService:   walletService,
		gateway:         gw,
		txManager:       txManager,
		paymentExpiry:   paymentExpiry,
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotPending          = errors.New("transaction is not pending")
	ErrPaymentExpired      = errors.New("payment link expired")
	ErrVerificationFailed  = errors.New("gateway verification failed")
	ErrNotRefundable       = errors.New("transaction is not refundable")
)

type CreatedPayment struct {
	Transaction *domain.Transaction
	PaymentURL  string
}

// IsFirstPurchase reports whether the user has no completed purchases in
// the ledger. The ledger is the single source of truth here, not a
// purchase-history list on the user profile.
func (s *Service) IsFirstPurchase(ctx context.Context, userID int) (bool, error) {
	count, err := s.transactionRepo.CountCompletedPurchases(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count completed purchases", zap.Error(err))
		return false, err
	}
	return count == 0, nil
}

// CreatePayment prices the exam for the buyer, registers a pending
// PURCHASE transaction and hands back the gateway payment link. The link
// is void after the configured expiry window.
func (s *Service) CreatePayment(ctx context.Context, userID, examID int, returnURL string) (*CreatedPayment, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	isFirst, err := s.IsFirstPurchase(ctx, userID)
	if err != nil {
		return nil, err
	}

	exam, pricing, err := s.pricingService.ExamPricing(ctx, examID, user.UserType, isFirst)
	if err != nil {
		return nil, err
	}

	link, err := s.gateway.CreatePaymentLink(ctx, pricing.FinalPrice, returnURL)
	if err != nil {
		zap.L().Error("failed to create payment link", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.paymentExpiry)
	transaction := &domain.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         domain.PurchaseTransaction,
		Status:       domain.PendingStatus,
		Amount:       pricing.FinalPrice,
		GatewayToken: link.Token,
		ExamID:       &exam.ID,
		DesignerID:   &exam.DesignerID,
		ExpiresAt:    &expiresAt,
		CreatedAt:    now,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}

	return &CreatedPayment{Transaction: transaction, PaymentURL: link.URL}, nil
}

// VerifyPayment settles a pending PURCHASE transaction after the buyer
// returns from the gateway. On verification failure the transaction is
// marked failed and no wallet is touched. On success the completion, the
// purchase grant, the paired EARNING transaction and the designer wallet
// credit happen inside one database transaction.
func (s *Service) VerifyPayment(ctx context.Context, transactionID uuid.UUID, reference string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	if transaction.Type != domain.PurchaseTransaction || transaction.Status != domain.PendingStatus {
		return nil, ErrNotPending
	}
	if transaction.ExpiresAt != nil && time.Now().After(*transaction.ExpiresAt) {
		if _, err := s.transactionRepo.UpdateStatus(ctx, transaction.ID, domain.PendingStatus, domain.FailedStatus); err != nil {
			zap.L().Error("failed to expire transaction", zap.Error(err))
		}
		return nil, ErrPaymentExpired
	}

	refID, err := s.gateway.VerifyPayment(ctx, transaction.GatewayToken, reference)
	if err != nil {
		zap.L().Info("payment verification failed",
			zap.String("transactionID", transaction.ID.String()),
			zap.Error(err),
		)
		if _, err := s.transactionRepo.UpdateStatus(ctx, transaction.ID, domain.PendingStatus, domain.FailedStatus); err != nil {
			zap.L().Error("failed to mark transaction failed", zap.Error(err))
		}
		return nil, ErrVerificationFailed
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.transactionRepo.UpdateStatus(ctx, transaction.ID, domain.PendingStatus, domain.CompletedStatus)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotPending
		}
		if err := s.transactionRepo.SetReference(ctx, transaction.ID, refID); err != nil {
			return err
		}

		if err := s.transactionRepo.CreatePurchase(ctx, &domain.Purchase{
			UserID:        transaction.UserID,
			ExamID:        *transaction.ExamID,
			TransactionID: transaction.ID,
			CreatedAt:     time.Now(),
		}); err != nil {
			return err
		}

		share, err := s.revenueService.CalculateSharing(ctx, transaction.Amount, transaction.ExamID)
		if err != nil {
			return err
		}
		if share.DesignerShare > 0 {
			earning := &domain.Transaction{
				ID:          uuid.New(),
				UserID:      *transaction.DesignerID,
				Type:        domain.EarningTransaction,
				Status:      domain.CompletedStatus,
				Amount:      share.DesignerShare,
				ReferenceID: transaction.ID.String(),
				ExamID:      transaction.ExamID,
				CreatedAt:   time.Now(),
			}
			if err := s.transactionRepo.Create(ctx, earning); err != nil {
				return err
			}
			if err := s.walletService.Credit(ctx, *transaction.DesignerID, share.DesignerShare); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transaction.Status = domain.CompletedStatus
	transaction.ReferenceID = refID
	zap.L().Info("payment completed",
		zap.String("transactionID", transaction.ID.String()),
		zap.Int64("amount", transaction.Amount),
	)
	return transaction, nil
}

// Refund compensates a completed purchase. The designer must still have
// the earning available; the original transaction flips to refunded and a
// separate REFUND transaction records the compensation.
func (s *Service) Refund(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	if transaction.Type != domain.PurchaseTransaction || transaction.Status != domain.CompletedStatus {
		return nil, ErrNotRefundable
	}

	earning, err := s.transactionRepo.FindEarningByReference(ctx, transaction.ID.String())
	if err != nil {
		return nil, err
	}

	var refund *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.transactionRepo.UpdateStatus(ctx, transaction.ID, domain.CompletedStatus, domain.RefundedStatus)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotRefundable
		}

		if earning != nil {
			if err := s.walletService.Debit(ctx, earning.UserID, earning.Amount); err != nil {
				return err
			}
		}

		refund = &domain.Transaction{
			ID:          uuid.New(),
			UserID:      transaction.UserID,
			Type:        domain.RefundTransaction,
			Status:      domain.CompletedStatus,
			Amount:      transaction.Amount,
			ReferenceID: transaction.ID.String(),
			ExamID:      transaction.ExamID,
			DesignerID:  transaction.DesignerID,
			CreatedAt:   time.Now(),
		}
		return s.transactionRepo.Create(ctx, refund)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("transaction refunded", zap.String("transactionID", transaction.ID.String()))
	return refund, nil
}
