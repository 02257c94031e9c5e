package settingsrepo

import (
	"context"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
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

func (r *Repository) GetGlobal(ctx context.Context) (*domain.RevenueSettings, error) {
	query := `
        SELECT designer_share_percent, platform_fee_percent
        FROM revenue_settings
        ORDER BY id DESC
        LIMIT 1
    `
	var settings domain.RevenueSettings
	err := r.db.QueryRow(ctx, query).Scan(&settings.DesignerSharePercent, &settings.PlatformFeePercent)
	if err != nil {
		zap.L().Error("failed to get revenue settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) UpdateGlobal(ctx context.Context, settings *domain.RevenueSettings) error {
	query := `
        INSERT INTO revenue_settings (designer_share_percent, platform_fee_percent)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, settings.DesignerSharePercent, settings.PlatformFeePercent); err != nil {
		zap.L().Error("failed to update revenue settings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetForExam(ctx context.Context, examID int) (*domain.RevenueSettings, error) {
	query := `
        SELECT designer_share_percent, platform_fee_percent
        FROM exam_revenue_settings
        WHERE exam_id = $1
    `
	var settings domain.RevenueSettings
	err := r.db.QueryRow(ctx, query, examID).Scan(&settings.DesignerSharePercent, &settings.PlatformFeePercent)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get exam revenue settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) UpsertForExam(ctx context.Context, examID int, settings *domain.RevenueSettings) error {
	query := `
        INSERT INTO exam_revenue_settings (exam_id, designer_share_percent, platform_fee_percent)
        VALUES ($1, $2, $3)
        ON CONFLICT (exam_id) DO UPDATE
        SET designer_share_percent = EXCLUDED.designer_share_percent,
            platform_fee_percent = EXCLUDED.platform_fee_percent
    `
	if _, err := r.db.Exec(ctx, query, examID, settings.DesignerSharePercent, settings.PlatformFeePercent); err != nil {
		zap.L().Error("failed to upsert exam revenue settings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteForExam(ctx context.Context, examID int) error {
	query := `DELETE FROM exam_revenue_settings WHERE exam_id = $1`
	if _, err := r.db.Exec(ctx, query, examID); err != nil {
		zap.L().Error("failed to delete exam revenue settings", zap.Error(err))
		return err
	}
	return nil
}
