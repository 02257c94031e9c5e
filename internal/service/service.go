package service

import (
	"github.com/ab65ed/soaledu-finance/internal/handlers/auth"
	"github.com/ab65ed/soaledu-finance/internal/handlers/finance"
	"github.com/ab65ed/soaledu-finance/internal/handlers/pricing"
	"github.com/ab65ed/soaledu-finance/internal/handlers/wallet"

	pkgauth "github.com/ab65ed/soaledu-finance/pkg/auth"
	"github.com/ab65ed/soaledu-finance/pkg/clients"

	"github.com/ab65ed/soaledu-finance/internal/config"
	"github.com/ab65ed/soaledu-finance/internal/gateway"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/ab65ed/soaledu-finance/internal/repo"
	authservice "github.com/ab65ed/soaledu-finance/internal/service/authservice"
	paymentservice "github.com/ab65ed/soaledu-finance/internal/service/paymentservice"
	pricingservice "github.com/ab65ed/soaledu-finance/internal/service/pricingservice"
	revenueservice "github.com/ab65ed/soaledu-finance/internal/service/revenueservice"
	walletservice "github.com/ab65ed/soaledu-finance/internal/service/walletservice"
)

type Services struct {
	AuthService    auth.Service
	PricingService pricing.Service
	PaymentService *paymentservice.Service
	WalletService  wallet.Service
	RevenueService finance.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	pricingService := pricingservice.New(pricingservice.DefaultConfig(), repo.CatalogRepo)
	revenueService := revenueservice.New(repo.SettingsRepo)
	walletService := walletservice.New(repo.WalletRepo, repo.WithdrawalRepo, repo.LedgerRepo, txManager)
	gatewayClient := gateway.New(cfg, clients.NewHTTPClient())
	paymentService := paymentservice.New(
		repo.TransactionRepo,
		repo.PaymentUserRepo,
		pricingService,
		revenueService,
		walletService,
		gatewayClient,
		txManager,
		cfg.PaymentExpiry,
	)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		PricingService: pricingService,
		PaymentService: paymentService,
		WalletService:  walletService,
		RevenueService: revenueService,
	}
}
