package withdrawalrepo

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

const requestColumns = "id, user_id, transaction_id, amount, card_number, status, admin_notes, created_at, processed_at"

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var request domain.WithdrawalRequest
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.TransactionID,
		&request.Amount,
		&request.CardNumber,
		&request.Status,
		&request.AdminNotes,
		&request.CreatedAt,
		&request.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *Repository) CreateRequest(ctx context.Context, request *domain.WithdrawalRequest) error {
	query := `
        INSERT INTO withdrawal_requests (id, user_id, transaction_id, amount, card_number, status, admin_notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.UserID,
		request.TransactionID,
		request.Amount,
		request.CardNumber,
		request.Status,
		request.AdminNotes,
		request.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetRequestByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM withdrawal_requests WHERE id = $1`
	request, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

// UpdateRequestStatus settles a request only when it is still in the
// expected status; false means another admin processed it first.
func (r *Repository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to, adminNotes string, processedAt time.Time) (bool, error) {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, admin_notes = $2, processed_at = $3
        WHERE id = $4 AND status = $5
    `
	tag, err := r.db.Exec(ctx, query, to, adminNotes, processedAt, id, from)
	if err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListRequestsByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM withdrawal_requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *Repository) ListRequestsByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM withdrawal_requests WHERE status = $1 ORDER BY created_at`
	return r.list(ctx, query, status)
}

func (r *Repository) list(ctx context.Context, query string, arg any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("failed to list withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
