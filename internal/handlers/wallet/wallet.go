package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/dto"
	"github.com/ab65ed/soaledu-finance/internal/service/walletservice"
	"github.com/ab65ed/soaledu-finance/pkg/auth"
	"github.com/ab65ed/soaledu-finance/pkg/utils"
	"github.com/ab65ed/soaledu-finance/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, userID int, amount int64, cardNumber string) (*domain.WithdrawalRequest, error)
	ProcessWithdrawal(ctx context.Context, requestID uuid.UUID, action, adminNotes string) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	ListWithdrawalRequests(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func toWithdrawalDTO(request *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		RequestID:   request.ID.String(),
		Amount:      request.Amount,
		CardNumber:  request.CardNumber,
		Status:      request.Status,
		AdminNotes:  request.AdminNotes,
		CreatedAt:   request.CreatedAt,
		ProcessedAt: request.ProcessedAt,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the wallet balances and the currently spendable amount for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "کیف پول یافت نشد")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:            wallet.Balance,
		TotalEarnings:      wallet.TotalEarnings,
		TotalWithdrawals:   wallet.TotalWithdrawals,
		PendingWithdrawals: wallet.PendingWithdrawals,
		FreezeAmount:       wallet.FreezeAmount,
		Available:          wallet.Available(),
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	List the ledger transactions of the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, transaction := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:          transaction.ID.String(),
			Type:        transaction.Type,
			Status:      transaction.Status,
			Amount:      transaction.Amount,
			ReferenceID: transaction.ReferenceID,
			CreatedAt:   transaction.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve part of the available balance for withdrawal to a bank card, pending admin review
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalCreateRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or card number"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	if !validate.IsCardNumber(req.CardNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "شماره کارت نامعتبر است")
		return
	}

	request, err := h.walletService.RequestWithdrawal(r.Context(), userID, req.Amount, req.CardNumber)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, "مبلغ باید بزرگتر از صفر باشد")
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, "موجودی کافی نیست")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	List the withdrawal requests of the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.walletService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = toWithdrawalDTO(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListWithdrawalRequests godoc
//
//	@Summary		List withdrawal requests for review
//	@Description	List withdrawal requests, optionally filtered by status, for the admin review queue
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Request status filter"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawal-requests [get]
func (h *WalletHandler) ListWithdrawalRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.WithdrawalPending
	}

	requests, err := h.walletService.ListWithdrawalRequests(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i := range requests {
		response[i] = toWithdrawalDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ProcessWithdrawal godoc
//
//	@Summary		Approve or reject a withdrawal request
//	@Description	Settle a pending withdrawal request; approval moves the money out, rejection releases the reserve
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string							true	"Withdrawal request ID"
//	@Param			request		body		dto.ProcessWithdrawalRequestDTO	true	"Decision payload"
//	@Success		200			{object}	dto.WithdrawalResponseDTO
//	@Failure		400			{object}	utils.Response	"Unknown action, request already processed, or balance no longer covers the amount"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin role required"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawal-requests/{requestID} [put]
func (h *WalletHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه درخواست نامعتبر است")
		return
	}

	var req dto.ProcessWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	request, err := h.walletService.ProcessWithdrawal(r.Context(), requestID, req.Action, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "درخواست برداشت یافت نشد")
		case errors.Is(err, walletservice.ErrInvalidAction):
			utils.RespondWithError(w, http.StatusBadRequest, "عملیات نامعتبر است")
		case errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusBadRequest, "این درخواست قبلا پردازش شده است")
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "موجودی کیف پول برای برداشت کافی نیست")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(request))
}
