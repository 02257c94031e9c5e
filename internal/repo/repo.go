package repo

import (
	"github.com/ab65ed/soaledu-finance/internal/expiry"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	catalogrepo "github.com/ab65ed/soaledu-finance/internal/repo/catalog-repo"
	settingsrepo "github.com/ab65ed/soaledu-finance/internal/repo/settings-repo"
	transactionrepo "github.com/ab65ed/soaledu-finance/internal/repo/transaction-repo"
	userrepo "github.com/ab65ed/soaledu-finance/internal/repo/user-repo"
	walletrepo "github.com/ab65ed/soaledu-finance/internal/repo/wallet-repo"
	withdrawalrepo "github.com/ab65ed/soaledu-finance/internal/repo/withdrawal-repo"
	"github.com/ab65ed/soaledu-finance/internal/service/authservice"
	"github.com/ab65ed/soaledu-finance/internal/service/paymentservice"
	"github.com/ab65ed/soaledu-finance/internal/service/pricingservice"
	"github.com/ab65ed/soaledu-finance/internal/service/revenueservice"
	"github.com/ab65ed/soaledu-finance/internal/service/walletservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	PaymentUserRepo paymentservice.UserRepo
	WalletRepo      walletservice.WalletRepo
	WithdrawalRepo  walletservice.WithdrawalRepo
	LedgerRepo      walletservice.LedgerRepo
	TransactionRepo paymentservice.TransactionRepo
	ExpiryRepo      expiry.Repo
	SettingsRepo    revenueservice.SettingsRepo
	CatalogRepo     pricingservice.CatalogRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	settingsRepo := settingsrepo.New(conn)
	catalogRepo := catalogrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		PaymentUserRepo: userRepo,
		WalletRepo:      walletRepo,
		WithdrawalRepo:  withdrawalRepo,
		LedgerRepo:      transactionRepo,
		TransactionRepo: transactionRepo,
		ExpiryRepo:      transactionRepo,
		SettingsRepo:    settingsRepo,
		CatalogRepo:     catalogRepo,
	}
}
