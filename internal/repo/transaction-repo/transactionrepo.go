package transactionrepo

import (
	"context"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/google/uuid"
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

const transactionColumns = "id, user_id, type, status, amount, reference_id, gateway_token, exam_id, designer_id, expires_at, created_at"

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.Type,
		&transaction.Status,
		&transaction.Amount,
		&transaction.ReferenceID,
		&transaction.GatewayToken,
		&transaction.ExamID,
		&transaction.DesignerID,
		&transaction.ExpiresAt,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, user_id, type, status, amount, reference_id, gateway_token, exam_id, designer_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query,
		transaction.ID,
		transaction.UserID,
		transaction.Type,
		transaction.Status,
		transaction.Amount,
		transaction.ReferenceID,
		transaction.GatewayToken,
		transaction.ExamID,
		transaction.DesignerID,
		transaction.ExpiresAt,
		transaction.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// UpdateStatus moves a transaction from one status to another. It reports
// false when the row was no longer in the expected status, which is how
// concurrent settlements lose the race cleanly.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	query := `UPDATE transactions SET status = $1 WHERE id = $2 AND status = $3`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetReference(ctx context.Context, id uuid.UUID, reference string) error {
	query := `UPDATE transactions SET reference_id = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, reference, id); err != nil {
		zap.L().Error("failed to set transaction reference", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountCompletedPurchases(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND type = $2 AND status = $3`
	var count int
	err := r.db.QueryRow(ctx, query, userID, domain.PurchaseTransaction, domain.CompletedStatus).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count completed purchases", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindEarningByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE type = $1 AND reference_id = $2`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, domain.EarningTransaction, reference))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find earning transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	query := `
        INSERT INTO purchases (user_id, exam_id, transaction_id, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, purchase.UserID, purchase.ExamID, purchase.TransactionID, purchase.CreatedAt).Scan(&purchase.ID)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindExpiredPending returns pending purchase transactions whose payment
// link expired before now, oldest first.
func (r *Repository) FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = $1 AND expires_at IS NOT NULL AND expires_at < $2
        ORDER BY expires_at
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, domain.PendingStatus, now, limit)
	if err != nil {
		zap.L().Error("failed to list expired transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}
