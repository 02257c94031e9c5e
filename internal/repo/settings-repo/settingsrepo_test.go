package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetGlobal(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT designer_share_percent, platform_fee_percent
        FROM revenue_settings
        ORDER BY id DESC
        LIMIT 1`)

	t.Run("Returns latest settings", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"designer_share_percent", "platform_fee_percent"}).AddRow(70, 30)
		mock.ExpectQuery(query).WillReturnRows(rows)

		settings, err := repo.GetGlobal(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, &domain.RevenueSettings{DesignerSharePercent: 70, PlatformFeePercent: 30}, settings)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		settings, err := repo.GetGlobal(context.Background())
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
}

func TestRepository_UpdateGlobal(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO revenue_settings (designer_share_percent, platform_fee_percent)
        VALUES ($1, $2)`)

	mock.ExpectExec(query).WithArgs(60, 40).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.UpdateGlobal(context.Background(), &domain.RevenueSettings{DesignerSharePercent: 60, PlatformFeePercent: 40}))

	mock.ExpectExec(query).WithArgs(60, 40).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpdateGlobal(context.Background(), &domain.RevenueSettings{DesignerSharePercent: 60, PlatformFeePercent: 40}))
}

func TestRepository_GetForExam(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT designer_share_percent, platform_fee_percent
        FROM exam_revenue_settings
        WHERE exam_id = $1`)

	t.Run("Returns override", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"designer_share_percent", "platform_fee_percent"}).AddRow(80, 20)
		mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)

		settings, err := repo.GetForExam(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 80, settings.DesignerSharePercent)
	})

	t.Run("No override returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(10).WillReturnError(pgx.ErrNoRows)

		settings, err := repo.GetForExam(context.Background(), 10)
		assert.NoError(t, err)
		assert.Nil(t, settings)
	})
}

func TestRepository_UpsertForExam(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO exam_revenue_settings (exam_id, designer_share_percent, platform_fee_percent)
        VALUES ($1, $2, $3)
        ON CONFLICT (exam_id) DO UPDATE
        SET designer_share_percent = EXCLUDED.designer_share_percent,
            platform_fee_percent = EXCLUDED.platform_fee_percent`)

	mock.ExpectExec(query).WithArgs(10, 80, 20).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.UpsertForExam(context.Background(), 10, &domain.RevenueSettings{DesignerSharePercent: 80, PlatformFeePercent: 20}))

	mock.ExpectExec(query).WithArgs(10, 80, 20).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpsertForExam(context.Background(), 10, &domain.RevenueSettings{DesignerSharePercent: 80, PlatformFeePercent: 20}))
}

func TestRepository_DeleteForExam(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`DELETE FROM exam_revenue_settings WHERE exam_id = $1`)

	mock.ExpectExec(query).WithArgs(10).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.DeleteForExam(context.Background(), 10))

	mock.ExpectExec(query).WithArgs(10).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.DeleteForExam(context.Background(), 10))
}
