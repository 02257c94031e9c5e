package repo

import (
	"testing"

	catalogrepo "github.com/ab65ed/soaledu-finance/internal/repo/catalog-repo"
	settingsrepo "github.com/ab65ed/soaledu-finance/internal/repo/settings-repo"
	transactionrepo "github.com/ab65ed/soaledu-finance/internal/repo/transaction-repo"
	userrepo "github.com/ab65ed/soaledu-finance/internal/repo/user-repo"
	walletrepo "github.com/ab65ed/soaledu-finance/internal/repo/wallet-repo"
	withdrawalrepo "github.com/ab65ed/soaledu-finance/internal/repo/withdrawal-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.PaymentUserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.ExpiryRepo)
	assert.NotNil(t, repo.SettingsRepo)
	assert.NotNil(t, repo.CatalogRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
