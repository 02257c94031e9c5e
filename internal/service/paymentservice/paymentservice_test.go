package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/gateway"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/ab65ed/soaledu-finance/internal/service/walletservice"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	transactionRepo *MockTransactionRepo
	userRepo        *MockUserRepo
	pricingService  *MockPricingService
	revenueService  *MockRevenueService
	walletService   *MockWalletService
	gateway         *MockGateway
	txManager       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		transactionRepo: NewMockTransactionRepo(ctrl),
		userRepo:        NewMockUserRepo(ctrl),
		pricingService:  NewMockPricingService(ctrl),
		revenueService:  NewMockRevenueService(ctrl),
		walletService:   NewMockWalletService(ctrl),
		gateway:         NewMockGateway(ctrl),
		txManager:       pg.NewMockTXManager(ctrl),
	}
	service := New(
		m.transactionRepo,
		m.userRepo,
		m.pricingService,
		m.revenueService,
		m.walletService,
		m.gateway,
		m.txManager,
		15*time.Minute,
	)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func intPtr(v int) *int { return &v }

func TestIsFirstPurchase(t *testing.T) {
	service, m := NewMock(t)

	m.transactionRepo.EXPECT().CountCompletedPurchases(gomock.Any(), 1).Return(0, nil)
	first, err := service.IsFirstPurchase(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, first)

	m.transactionRepo.EXPECT().CountCompletedPurchases(gomock.Any(), 2).Return(3, nil)
	first, err = service.IsFirstPurchase(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, first)
}

func TestCreatePayment(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Successful payment creation",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID:       1,
					UserType: domain.UserTypeStudent,
				}, nil)
				m.transactionRepo.EXPECT().CountCompletedPurchases(gomock.Any(), 1).Return(0, nil)
				m.pricingService.EXPECT().ExamPricing(gomock.Any(), 10, domain.UserTypeStudent, true).Return(
					&domain.Exam{ID: 10, DesignerID: 7, QuestionCount: 25},
					&domain.PricingResult{BasePrice: 1000, FinalPrice: 700},
					nil,
				)
				m.gateway.EXPECT().CreatePaymentLink(gomock.Any(), int64(700), "https://soaledu.ir/return").Return(
					&gateway.PaymentLink{Token: "tok-1", URL: "https://gw/pay/tok-1"}, nil,
				)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) error {
						assert.Equal(t, domain.PurchaseTransaction, tr.Type)
						assert.Equal(t, domain.PendingStatus, tr.Status)
						assert.Equal(t, int64(700), tr.Amount)
						assert.Equal(t, "tok-1", tr.GatewayToken)
						assert.Equal(t, 10, *tr.ExamID)
						assert.Equal(t, 7, *tr.DesignerID)
						assert.NotNil(t, tr.ExpiresAt)
						return nil
					},
				)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Gateway refuses the link",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, UserType: domain.UserTypeRegular,
				}, nil)
				m.transactionRepo.EXPECT().CountCompletedPurchases(gomock.Any(), 1).Return(2, nil)
				m.pricingService.EXPECT().ExamPricing(gomock.Any(), 10, domain.UserTypeRegular, false).Return(
					&domain.Exam{ID: 10, DesignerID: 7, QuestionCount: 25},
					&domain.PricingResult{BasePrice: 1000, FinalPrice: 1000},
					nil,
				)
				m.gateway.EXPECT().CreatePaymentLink(gomock.Any(), int64(1000), "https://soaledu.ir/return").Return(
					nil, errors.New("gateway unavailable"),
				)
			},
			expectedError: errors.New("gateway unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			created, err := service.CreatePayment(context.Background(), 1, 10, "https://soaledu.ir/return")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "https://gw/pay/tok-1", created.PaymentURL)
				assert.Equal(t, domain.PendingStatus, created.Transaction.Status)
			}
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	transactionID := uuid.New()
	future := time.Now().Add(10 * time.Minute)
	past := time.Now().Add(-time.Minute)

	pendingTx := func(expiresAt *time.Time) *domain.Transaction {
		return &domain.Transaction{
			ID:           transactionID,
			UserID:       1,
			Type:         domain.PurchaseTransaction,
			Status:       domain.PendingStatus,
			Amount:       1000,
			GatewayToken: "tok-1",
			ExamID:       intPtr(10),
			DesignerID:   intPtr(7),
			ExpiresAt:    expiresAt,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Successful verification credits the designer",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pendingTx(&future), nil)
				m.gateway.EXPECT().VerifyPayment(gomock.Any(), "tok-1", "ref-9").Return("GW-9", nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.CompletedStatus).Return(true, nil)
				m.transactionRepo.EXPECT().SetReference(gomock.Any(), transactionID, "GW-9").Return(nil)
				m.transactionRepo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Purchase) error {
						assert.Equal(t, 1, p.UserID)
						assert.Equal(t, 10, p.ExamID)
						assert.Equal(t, transactionID, p.TransactionID)
						return nil
					},
				)
				m.revenueService.EXPECT().CalculateSharing(gomock.Any(), int64(1000), intPtr(10)).Return(
					&domain.RevenueShare{Amount: 1000, DesignerShare: 700, PlatformFee: 300}, nil,
				)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) error {
						assert.Equal(t, domain.EarningTransaction, tr.Type)
						assert.Equal(t, domain.CompletedStatus, tr.Status)
						assert.Equal(t, int64(700), tr.Amount)
						assert.Equal(t, 7, tr.UserID)
						assert.Equal(t, transactionID.String(), tr.ReferenceID)
						return nil
					},
				)
				m.walletService.EXPECT().Credit(gomock.Any(), 7, int64(700)).Return(nil)
			},
		},
		{
			name: "Zero designer share skips the wallet",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pendingTx(&future), nil)
				m.gateway.EXPECT().VerifyPayment(gomock.Any(), "tok-1", "ref-9").Return("GW-9", nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.CompletedStatus).Return(true, nil)
				m.transactionRepo.EXPECT().SetReference(gomock.Any(), transactionID, "GW-9").Return(nil)
				m.transactionRepo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil)
				m.revenueService.EXPECT().CalculateSharing(gomock.Any(), int64(1000), intPtr(10)).Return(
					&domain.RevenueShare{Amount: 1000, DesignerShare: 0, PlatformFee: 1000}, nil,
				)
			},
		},
		{
			name: "Gateway rejects the payment",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pendingTx(&future), nil)
				m.gateway.EXPECT().VerifyPayment(gomock.Any(), "tok-1", "ref-9").Return("", gateway.ErrPaymentRejected)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(true, nil)
			},
			expectedError: ErrVerificationFailed,
		},
		{
			name: "Expired link fails the transaction",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pendingTx(&past), nil)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(true, nil)
			},
			expectedError: ErrPaymentExpired,
		},
		{
			name: "Already completed transaction",
			prepareMock: func(m *mocks) {
				completed := pendingTx(&future)
				completed.Status = domain.CompletedStatus
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(completed, nil)
			},
			expectedError: ErrNotPending,
		},
		{
			name: "Unknown transaction",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Concurrent settlement loses the status race",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pendingTx(&future), nil)
				m.gateway.EXPECT().VerifyPayment(gomock.Any(), "tok-1", "ref-9").Return("GW-9", nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.CompletedStatus).Return(false, nil)
			},
			expectedError: ErrNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			transaction, err := service.VerifyPayment(context.Background(), transactionID, "ref-9")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.CompletedStatus, transaction.Status)
				assert.Equal(t, "GW-9", transaction.ReferenceID)
			}
		})
	}
}

func TestRefund(t *testing.T) {
	transactionID := uuid.New()

	completedTx := func() *domain.Transaction {
		return &domain.Transaction{
			ID:         transactionID,
			UserID:     1,
			Type:       domain.PurchaseTransaction,
			Status:     domain.CompletedStatus,
			Amount:     1000,
			ExamID:     intPtr(10),
			DesignerID: intPtr(7),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Refund reverses the recorded earning",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(completedTx(), nil)
				m.transactionRepo.EXPECT().FindEarningByReference(gomock.Any(), transactionID.String()).Return(&domain.Transaction{
					UserID: 7,
					Type:   domain.EarningTransaction,
					Amount: 700,
				}, nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.CompletedStatus, domain.RefundedStatus).Return(true, nil)
				m.walletService.EXPECT().Debit(gomock.Any(), 7, int64(700)).Return(nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) error {
						assert.Equal(t, domain.RefundTransaction, tr.Type)
						assert.Equal(t, domain.CompletedStatus, tr.Status)
						assert.Equal(t, int64(1000), tr.Amount)
						assert.Equal(t, transactionID.String(), tr.ReferenceID)
						return nil
					},
				)
			},
		},
		{
			name: "No recorded earning still refunds the buyer",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(completedTx(), nil)
				m.transactionRepo.EXPECT().FindEarningByReference(gomock.Any(), transactionID.String()).Return(nil, nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.CompletedStatus, domain.RefundedStatus).Return(true, nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Second refund of the same transaction",
			prepareMock: func(m *mocks) {
				refunded := completedTx()
				refunded.Status = domain.RefundedStatus
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(refunded, nil)
			},
			expectedError: ErrNotRefundable,
		},
		{
			name: "Pending transaction is not refundable",
			prepareMock: func(m *mocks) {
				pending := completedTx()
				pending.Status = domain.PendingStatus
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(pending, nil)
			},
			expectedError: ErrNotRefundable,
		},
		{
			name: "Insufficient designer balance aborts the refund",
			prepareMock: func(m *mocks) {
				m.transactionRepo.EXPECT().GetByID(gomock.Any(), transactionID).Return(completedTx(), nil)
				m.transactionRepo.EXPECT().FindEarningByReference(gomock.Any(), transactionID.String()).Return(&domain.Transaction{
					UserID: 7,
					Amount: 700,
				}, nil)
				passthroughTx(m.txManager)
				m.transactionRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.CompletedStatus, domain.RefundedStatus).Return(true, nil)
				m.walletService.EXPECT().Debit(gomock.Any(), 7, int64(700)).Return(walletservice.ErrInsufficientBalance)
			},
			expectedError: walletservice.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			refund, err := service.Refund(context.Background(), transactionID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, refund)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.RefundTransaction, refund.Type)
			}
		})
	}
}
