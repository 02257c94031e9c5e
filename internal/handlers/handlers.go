package handlers

import (
	"net/http"

	_ "github.com/ab65ed/soaledu-finance/docs"
	authhandlers "github.com/ab65ed/soaledu-finance/internal/handlers/auth"
	financehandlers "github.com/ab65ed/soaledu-finance/internal/handlers/finance"
	paymenthandlers "github.com/ab65ed/soaledu-finance/internal/handlers/payment"
	pricinghandlers "github.com/ab65ed/soaledu-finance/internal/handlers/pricing"
	wallethandlers "github.com/ab65ed/soaledu-finance/internal/handlers/wallet"
	"github.com/ab65ed/soaledu-finance/internal/service"
	"github.com/ab65ed/soaledu-finance/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	CalculatePrice(w http.ResponseWriter, r *http.Request)
	CalculateFlashcardPrice(w http.ResponseWriter, r *http.Request)
	ExamPrice(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ListWithdrawalRequests(w http.ResponseWriter, r *http.Request)
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
}

type FinanceHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	GetExamSettings(w http.ResponseWriter, r *http.Request)
	UpdateExamSettings(w http.ResponseWriter, r *http.Request)
	ResetExamSettings(w http.ResponseWriter, r *http.Request)
	CalculateSharing(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PricingHandler PricingHandler
	PaymentHandler PaymentHandler
	WalletHandler  WalletHandler
	FinanceHandler FinanceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PricingHandler: pricinghandlers.New(s.PricingService, s.PaymentService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		FinanceHandler: financehandlers.New(s.RevenueService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/pricing", func(r chi.Router) {
			r.Post("/calculate-price", h.PricingHandler.CalculatePrice)
			r.Post("/calculate-flashcard-price", h.PricingHandler.CalculateFlashcardPrice)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/exam-price/{examID}", h.PricingHandler.ExamPrice)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.CreatePayment)
				r.Post("/verify", h.PaymentHandler.VerifyPayment)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/{transactionID}/refund", h.PaymentHandler.Refund)
				})
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
				r.Post("/withdrawals", h.WalletHandler.RequestWithdrawal)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Route("/admin/withdrawal-requests", func(r chi.Router) {
					r.Get("/", h.WalletHandler.ListWithdrawalRequests)
					r.Put("/{requestID}", h.WalletHandler.ProcessWithdrawal)
				})

				r.Route("/finance-settings", func(r chi.Router) {
					r.Get("/", h.FinanceHandler.GetSettings)
					r.Put("/", h.FinanceHandler.UpdateSettings)
					r.Post("/calculate-sharing", h.FinanceHandler.CalculateSharing)
					r.Route("/exams/{examID}", func(r chi.Router) {
						r.Get("/", h.FinanceHandler.GetExamSettings)
						r.Put("/", h.FinanceHandler.UpdateExamSettings)
						r.Delete("/", h.FinanceHandler.ResetExamSettings)
					})
				})
			})
		})
	})

	return r
}
