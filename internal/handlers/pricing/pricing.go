// Package pricing exposes the price calculation endpoints. They are
// read-only quotes: nothing here reserves an exam or touches a wallet.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/dto"
	"github.com/ab65ed/soaledu-finance/internal/service/pricingservice"
	"github.com/ab65ed/soaledu-finance/pkg/auth"
	"github.com/ab65ed/soaledu-finance/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	QuestionCountValid(questionCount int) bool
	CalculateExamPrice(questionCount int, userType string, isFirstPurchase bool, bulkCount int) (*domain.PricingResult, error)
	CalculateFlashcardPriceByIDs(ctx context.Context, ids []int, userType string, isFirstPurchase bool) (*domain.PricingResult, error)
	ExamPricing(ctx context.Context, examID int, userType string, isFirstPurchase bool) (*domain.Exam, *domain.PricingResult, error)
}

type PaymentService interface {
	IsFirstPurchase(ctx context.Context, userID int) (bool, error)
}

type PricingHandler struct {
	pricingService Service
	paymentService PaymentService
}

func New(pricingService Service, paymentService PaymentService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		paymentService: paymentService,
	}
}

func toPricingDTO(result *domain.PricingResult) dto.PricingResultDTO {
	discounts := make([]dto.DiscountDTO, len(result.Discounts))
	for i, d := range result.Discounts {
		discounts[i] = dto.DiscountDTO{
			Type:   d.Type,
			Rate:   d.Rate,
			Amount: d.Amount,
		}
	}
	return dto.PricingResultDTO{
		BasePrice:     result.BasePrice,
		Discounts:     discounts,
		TotalDiscount: result.TotalDiscount,
		FinalPrice:    result.FinalPrice,
		PriceCategory: result.PriceCategory,
	}
}

// CalculatePrice godoc
//
//	@Summary		Calculate exam price
//	@Description	Quote the price of an exam from its question count, the buyer type and the applicable discounts
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CalculatePriceRequestDTO	true	"Pricing request payload"
//	@Success		200		{object}	dto.PricingResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid question count"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing/calculate-price [post]
func (h *PricingHandler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculatePriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	if !h.pricingService.QuestionCountValid(req.QuestionCount) {
		utils.RespondWithError(w, http.StatusBadRequest, "تعداد سوالات باید بین ۱۰ تا ۵۰ باشد")
		return
	}

	result, err := h.pricingService.CalculateExamPrice(req.QuestionCount, req.UserType, req.IsFirstPurchase, req.BulkCount)
	if err != nil {
		if errors.Is(err, pricingservice.ErrInvalidQuestionCount) {
			utils.RespondWithError(w, http.StatusBadRequest, "تعداد سوالات باید بین ۱۰ تا ۵۰ باشد")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPricingDTO(result))
}

// CalculateFlashcardPrice godoc
//
//	@Summary		Calculate flashcard set price
//	@Description	Quote the total price of a flashcard set, with the bulk discount for large sets
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CalculateFlashcardPriceRequestDTO	true	"Flashcard pricing payload"
//	@Success		200		{object}	dto.PricingResultDTO
//	@Failure		400		{object}	utils.Response	"Empty flashcard list"
//	@Failure		404		{object}	utils.Response	"Flashcards not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing/calculate-flashcard-price [post]
func (h *PricingHandler) CalculateFlashcardPrice(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateFlashcardPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	result, err := h.pricingService.CalculateFlashcardPriceByIDs(r.Context(), req.FlashcardIDs, req.UserType, req.IsFirstPurchase)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrEmptyFlashcards):
			utils.RespondWithError(w, http.StatusBadRequest, "لیست فلش‌کارت‌ها نمی‌تواند خالی باشد")
		case errors.Is(err, pricingservice.ErrFlashcardsNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "فلش‌کارت مورد نظر یافت نشد")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPricingDTO(result))
}

// ExamPrice godoc
//
//	@Summary		Price a specific exam for the authenticated user
//	@Description	Quote the exam price using the stored question count and the caller's user type and purchase history
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			examID	path		int	true	"Exam ID"
//	@Success		200		{object}	dto.ExamPriceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid exam id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Exam not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing/exam-price/{examID} [get]
func (h *PricingHandler) ExamPrice(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	userType, _ := r.Context().Value(auth.UserTypeKey).(string)

	examID, err := strconv.Atoi(chi.URLParam(r, "examID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه آزمون نامعتبر است")
		return
	}

	isFirst, err := h.paymentService.IsFirstPurchase(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	exam, result, err := h.pricingService.ExamPricing(r.Context(), examID, userType, isFirst)
	if err != nil {
		if errors.Is(err, pricingservice.ErrExamNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "آزمون مورد نظر یافت نشد")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ExamPriceResponseDTO{
		ExamID:  exam.ID,
		Title:   exam.Title,
		Pricing: toPricingDTO(result),
	})
}
