package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/dto"
	"github.com/ab65ed/soaledu-finance/internal/service/paymentservice"
	"github.com/ab65ed/soaledu-finance/internal/service/pricingservice"
	"github.com/ab65ed/soaledu-finance/internal/service/walletservice"
	"github.com/ab65ed/soaledu-finance/pkg/auth"
	"github.com/ab65ed/soaledu-finance/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	CreatePayment(ctx context.Context, userID, examID int, returnURL string) (*paymentservice.CreatedPayment, error)
	VerifyPayment(ctx context.Context, transactionID uuid.UUID, reference string) (*domain.Transaction, error)
	Refund(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
//
//	@Summary		Create an exam payment
//	@Description	Price the exam for the caller, register a pending transaction and return the gateway payment link
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.CreatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Exam not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	created, err := h.paymentService.CreatePayment(r.Context(), userID, req.ExamID, req.ReturnURL)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "کاربر یافت نشد")
		case errors.Is(err, pricingservice.ErrExamNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "آزمون مورد نظر یافت نشد")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreatePaymentResponseDTO{
		TransactionID: created.Transaction.ID.String(),
		PaymentURL:    created.PaymentURL,
		Amount:        created.Transaction.Amount,
		ExpiresAt:     created.Transaction.ExpiresAt,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify a payment
//	@Description	Confirm a pending transaction with the gateway reference; on success the purchase is granted and the designer share credited
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Verification payload"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Verification failed or payment expired"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه تراکنش نامعتبر است")
		return
	}

	transaction, err := h.paymentService.VerifyPayment(r.Context(), transactionID, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "تراکنش یافت نشد")
		case errors.Is(err, paymentservice.ErrPaymentExpired):
			utils.RespondWithError(w, http.StatusBadRequest, "مهلت پرداخت به پایان رسیده است")
		case errors.Is(err, paymentservice.ErrVerificationFailed):
			utils.RespondWithError(w, http.StatusBadRequest, "تایید پرداخت ناموفق بود")
		case errors.Is(err, paymentservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusBadRequest, "تراکنش در وضعیت انتظار نیست")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{
		TransactionID: transaction.ID.String(),
		Status:        transaction.Status,
		ReferenceID:   transaction.ReferenceID,
		Amount:        transaction.Amount,
	})
}

// Refund godoc
//
//	@Summary		Refund a completed purchase
//	@Description	Flip a completed purchase to refunded and claw the designer earning back
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		string	true	"Transaction ID"
//	@Success		200				{object}	dto.RefundResponseDTO
//	@Failure		400				{object}	utils.Response	"Transaction is not refundable or designer balance cannot cover the clawback"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Admin role required"
//	@Failure		404				{object}	utils.Response	"Transaction not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{transactionID}/refund [post]
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	transactionID, err := uuid.Parse(chi.URLParam(r, "transactionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه تراکنش نامعتبر است")
		return
	}

	refund, err := h.paymentService.Refund(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "تراکنش یافت نشد")
		case errors.Is(err, paymentservice.ErrNotRefundable):
			utils.RespondWithError(w, http.StatusBadRequest, "این تراکنش قابل استرداد نیست")
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "موجودی طراح برای استرداد کافی نیست")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RefundResponseDTO{
		RefundID:      refund.ID.String(),
		TransactionID: refund.ReferenceID,
		Amount:        refund.Amount,
	})
}
