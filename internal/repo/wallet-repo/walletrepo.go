package walletrepo

import (
	"context"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/ab65ed/soaledu-finance/internal/service/walletservice"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, total_earnings, total_withdrawals, pending_withdrawals, freeze_amount, version
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Balance,
		&wallet.TotalEarnings,
		&wallet.TotalWithdrawals,
		&wallet.PendingWithdrawals,
		&wallet.FreezeAmount,
		&wallet.Version,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        RETURNING id, user_id, balance, total_earnings, total_withdrawals, pending_withdrawals, freeze_amount, version
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Balance,
		&wallet.TotalEarnings,
		&wallet.TotalWithdrawals,
		&wallet.PendingWithdrawals,
		&wallet.FreezeAmount,
		&wallet.Version,
	)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Update writes the wallet back only when nobody bumped the version since
// it was read. A lost race surfaces as ErrVersionConflict so the service
// can re-read and retry.
func (r *Repository) Update(ctx context.Context, wallet *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET balance = $1,
            total_earnings = $2,
            total_withdrawals = $3,
            pending_withdrawals = $4,
            freeze_amount = $5,
            version = version + 1
        WHERE user_id = $6 AND version = $7
    `
	tag, err := r.db.Exec(ctx, query,
		wallet.Balance,
		wallet.TotalEarnings,
		wallet.TotalWithdrawals,
		wallet.PendingWithdrawals,
		wallet.FreezeAmount,
		wallet.UserID,
		wallet.Version,
	)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return walletservice.ErrVersionConflict
	}
	return nil
}
