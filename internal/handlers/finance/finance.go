package finance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/dto"
	"github.com/ab65ed/soaledu-finance/internal/service/revenueservice"
	"github.com/ab65ed/soaledu-finance/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetGlobalSettings(ctx context.Context) (*domain.RevenueSettings, error)
	UpdateGlobalSettings(ctx context.Context, settings *domain.RevenueSettings) error
	GetExamSettings(ctx context.Context, examID int) (*domain.RevenueSettings, bool, error)
	UpdateExamSettings(ctx context.Context, examID int, settings *domain.RevenueSettings) error
	ResetExamSettings(ctx context.Context, examID int) error
	CalculateSharing(ctx context.Context, amount int64, examID *int) (*domain.RevenueShare, error)
}

type FinanceHandler struct {
	revenueService Service
}

func New(revenueService Service) *FinanceHandler {
	return &FinanceHandler{
		revenueService: revenueService,
	}
}

// GetSettings godoc
//
//	@Summary		Get global revenue settings
//	@Description	Retrieve the platform-wide designer/platform revenue split
//	@Tags			Finance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RevenueSettingsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings [get]
func (h *FinanceHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.revenueService.GetGlobalSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RevenueSettingsDTO{
		DesignerSharePercent: settings.DesignerSharePercent,
		PlatformFeePercent:   settings.PlatformFeePercent,
	})
}

// UpdateSettings godoc
//
//	@Summary		Update global revenue settings
//	@Description	Replace the platform-wide revenue split; the two percentages must sum to 100
//	@Tags			Finance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RevenueSettingsDTO	true	"Revenue split payload"
//	@Success		200		{object}	dto.RevenueSettingsDTO
//	@Failure		400		{object}	utils.Response	"Percentages do not sum to 100"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings [put]
func (h *FinanceHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.RevenueSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	settings := &domain.RevenueSettings{
		DesignerSharePercent: req.DesignerSharePercent,
		PlatformFeePercent:   req.PlatformFeePercent,
	}
	if err := h.revenueService.UpdateGlobalSettings(r.Context(), settings); err != nil {
		if errors.Is(err, revenueservice.ErrInvalidSplit) {
			utils.RespondWithError(w, http.StatusBadRequest, "مجموع سهم‌ها باید ۱۰۰ درصد باشد")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, req)
}

// GetExamSettings godoc
//
//	@Summary		Get revenue settings for an exam
//	@Description	Retrieve the revenue split effective for one exam, with a flag telling whether it is a per-exam override
//	@Tags			Finance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			examID	path		int	true	"Exam ID"
//	@Success		200		{object}	dto.ExamSettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid exam ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings/exams/{examID} [get]
func (h *FinanceHandler) GetExamSettings(w http.ResponseWriter, r *http.Request) {
	examID, err := strconv.Atoi(chi.URLParam(r, "examID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه آزمون نامعتبر است")
		return
	}

	settings, overridden, err := h.revenueService.GetExamSettings(r.Context(), examID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExamSettingsResponseDTO{
		ExamID:               examID,
		DesignerSharePercent: settings.DesignerSharePercent,
		PlatformFeePercent:   settings.PlatformFeePercent,
		Overridden:           overridden,
	})
}

// UpdateExamSettings godoc
//
//	@Summary		Set a per-exam revenue split
//	@Description	Create or replace the revenue split override for one exam
//	@Tags			Finance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			examID	path		int						true	"Exam ID"
//	@Param			request	body		dto.RevenueSettingsDTO	true	"Revenue split payload"
//	@Success		200		{object}	dto.ExamSettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid exam ID or percentages"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings/exams/{examID} [put]
func (h *FinanceHandler) UpdateExamSettings(w http.ResponseWriter, r *http.Request) {
	examID, err := strconv.Atoi(chi.URLParam(r, "examID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه آزمون نامعتبر است")
		return
	}

	var req dto.RevenueSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}

	settings := &domain.RevenueSettings{
		DesignerSharePercent: req.DesignerSharePercent,
		PlatformFeePercent:   req.PlatformFeePercent,
	}
	if err := h.revenueService.UpdateExamSettings(r.Context(), examID, settings); err != nil {
		if errors.Is(err, revenueservice.ErrInvalidSplit) {
			utils.RespondWithError(w, http.StatusBadRequest, "مجموع سهم‌ها باید ۱۰۰ درصد باشد")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExamSettingsResponseDTO{
		ExamID:               examID,
		DesignerSharePercent: req.DesignerSharePercent,
		PlatformFeePercent:   req.PlatformFeePercent,
		Overridden:           true,
	})
}

// ResetExamSettings godoc
//
//	@Summary		Remove a per-exam revenue split
//	@Description	Delete the revenue split override of one exam so it falls back to the global default
//	@Tags			Finance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			examID	path	int	true	"Exam ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid exam ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings/exams/{examID} [delete]
func (h *FinanceHandler) ResetExamSettings(w http.ResponseWriter, r *http.Request) {
	examID, err := strconv.Atoi(chi.URLParam(r, "examID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "شناسه آزمون نامعتبر است")
		return
	}

	if err := h.revenueService.ResetExamSettings(r.Context(), examID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CalculateSharing godoc
//
//	@Summary		Preview a revenue split
//	@Description	Split an amount between designer and platform using the settings effective for the given exam
//	@Tags			Finance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CalculateSharingRequestDTO	true	"Amount and optional exam"
//	@Success		200		{object}	dto.RevenueShareResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/finance-settings/calculate-sharing [post]
func (h *FinanceHandler) CalculateSharing(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateSharingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "درخواست نامعتبر است")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "مبلغ باید بزرگتر از صفر باشد")
		return
	}

	share, err := h.revenueService.CalculateSharing(r.Context(), req.Amount, req.ExamID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RevenueShareResponseDTO{
		Amount:        share.Amount,
		DesignerShare: share.DesignerShare,
		PlatformFee:   share.PlatformFee,
	})
}
