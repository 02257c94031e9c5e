package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockWithdrawalRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(walletRepo, withdrawalRepo, ledgerRepo, txManager)
	defer ctrl.Finish()
	return service, walletRepo, withdrawalRepo, ledgerRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _, _, _ := NewMock(t)

	walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
		UserID:  1,
		Balance: 1000,
	}, nil)
	wallet, err := service.GetWallet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), wallet.Balance)

	walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
	wallet, err = service.GetWallet(context.Background(), 2)
	assert.ErrorIs(t, err, ErrWalletNotFound)
	assert.Nil(t, wallet)
}

func TestCredit(t *testing.T) {
	service, walletRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Credit updates balance and earnings",
			amount: 700,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:        1,
					Balance:       300,
					TotalEarnings: 100,
					Version:       2,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID:        1,
					Balance:       1000,
					TotalEarnings: 800,
					Version:       2,
				}).Return(nil)
			},
		},
		{
			name:          "Non-positive amount rejected",
			amount:        0,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Retries on version conflict",
			amount: 100,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID: 1, Balance: 300, Version: 2,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(ErrVersionConflict)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID: 1, Balance: 350, Version: 3,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID: 1, Balance: 450, TotalEarnings: 100, Version: 3,
				}).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Credit(context.Background(), 1, tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, walletRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Debit within available balance",
			amount: 200,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Balance: 1000,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID:  1,
					Balance: 800,
				}).Return(nil)
			},
		},
		{
			name:   "Pending withdrawals reduce available balance",
			amount: 500,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:             1,
					Balance:            1000,
					PendingWithdrawals: 600,
				}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Frozen funds reduce available balance",
			amount: 500,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:       1,
					Balance:      1000,
					FreezeAmount: 600,
				}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Debit(context.Background(), 1, tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	service, walletRepo, withdrawalRepo, ledgerRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful request moves amount to pending",
			amount: 400,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Balance: 1000,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID:             1,
					Balance:            1000,
					PendingWithdrawals: 400,
				}).Return(nil)
				ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction *domain.Transaction) error {
						assert.Equal(t, domain.WithdrawalTransaction, transaction.Type)
						assert.Equal(t, domain.PendingStatus, transaction.Status)
						assert.Equal(t, int64(400), transaction.Amount)
						return nil
					},
				)
				withdrawalRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, request *domain.WithdrawalRequest) error {
						assert.Equal(t, domain.WithdrawalPending, request.Status)
						assert.Equal(t, "6037998000000000", request.CardNumber)
						return nil
					},
				)
			},
		},
		{
			name:   "Insufficient available balance",
			amount: 2000,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Balance: 1000,
				}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:          "Non-positive amount",
			amount:        -1,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			request, err := service.RequestWithdrawal(context.Background(), 1, tt.amount, "6037998000000000")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, tt.amount, request.Amount)
			}
		})
	}
}

func TestProcessWithdrawal(t *testing.T) {
	service, walletRepo, withdrawalRepo, ledgerRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	requestID := uuid.New()
	transactionID := uuid.New()
	pendingRequest := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{
			ID:            requestID,
			UserID:        1,
			TransactionID: transactionID,
			Amount:        400,
			Status:        domain.WithdrawalPending,
		}
	}

	tests := []struct {
		name          string
		action        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Approve moves funds out of balance and pending",
			action: ApproveAction,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(pendingRequest(), nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:             1,
					Balance:            1000,
					PendingWithdrawals: 400,
					TotalWithdrawals:   100,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID:             1,
					Balance:            600,
					PendingWithdrawals: 0,
					TotalWithdrawals:   500,
				}).Return(nil)
				withdrawalRepo.EXPECT().UpdateRequestStatus(gomock.Any(), requestID, domain.WithdrawalPending, domain.WithdrawalApproved, "ok", gomock.Any()).Return(true, nil)
				ledgerRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.CompletedStatus).Return(true, nil)
			},
		},
		{
			name:   "Reject only releases pending",
			action: RejectAction,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(pendingRequest(), nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:             1,
					Balance:            1000,
					PendingWithdrawals: 400,
				}, nil)
				walletRepo.EXPECT().Update(gomock.Any(), &domain.Wallet{
					UserID:             1,
					Balance:            1000,
					PendingWithdrawals: 0,
				}).Return(nil)
				withdrawalRepo.EXPECT().UpdateRequestStatus(gomock.Any(), requestID, domain.WithdrawalPending, domain.WithdrawalRejected, "ok", gomock.Any()).Return(true, nil)
				ledgerRepo.EXPECT().UpdateStatus(gomock.Any(), transactionID, domain.PendingStatus, domain.FailedStatus).Return(true, nil)
			},
		},
		{
			name:   "Already processed request",
			action: ApproveAction,
			prepareMock: func() {
				request := pendingRequest()
				request.Status = domain.WithdrawalApproved
				withdrawalRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(request, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:   "Unknown request",
			action: RejectAction,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:          "Unknown action",
			action:        "HOLD",
			expectedError: ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			request, err := service.ProcessWithdrawal(context.Background(), requestID, tt.action, "ok")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.NotNil(t, request.ProcessedAt)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, _, _, ledgerRepo, _ := NewMock(t)

	ledgerRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.Transaction{
		{UserID: 1, Type: domain.PurchaseTransaction, Amount: 1000},
	}, nil)
	transactions, err := service.GetTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)

	ledgerRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
	_, err = service.GetTransactions(context.Background(), 1)
	assert.Error(t, err)
}
