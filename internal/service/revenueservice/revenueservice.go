package revenueservice

import (
	"context"
	"errors"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=revenueservice.go -destination=revenueservice_mock.go -package=revenueservice

type SettingsRepo interface {
	GetGlobal(ctx context.Context) (*domain.RevenueSettings, error)
	UpdateGlobal(ctx context.Context, settings *domain.RevenueSettings) error
	GetForExam(ctx context.Context, examID int) (*domain.RevenueSettings, error)
	UpsertForExam(ctx context.Context, examID int, settings *domain.RevenueSettings) error
	DeleteForExam(ctx context.Context, examID int) error
}

type Service struct {
	settingsRepo SettingsRepo
}

func New(settingsRepo SettingsRepo) *Service {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

var (
	ErrInvalidSplit = errors.New("designer share and platform fee must sum to 100")
)

// Split divides amount according to settings. The platform fee is the
// remainder rather than an independently rounded value, so the two parts
// always sum to amount exactly.
func Split(settings *domain.RevenueSettings, amount int64) *domain.RevenueShare {
	designerShare := amount * int64(settings.DesignerSharePercent) / 100
	return &domain.RevenueShare{
		Amount:        amount,
		DesignerShare: designerShare,
		PlatformFee:   amount - designerShare,
	}
}

// ResolveSettings returns the settings effective for an exam: the per-exam
// override when one exists, the global default otherwise. A nil examID
// always resolves to the global default.
func (s *Service) ResolveSettings(ctx context.Context, examID *int) (*domain.RevenueSettings, error) {
	if examID != nil {
		override, err := s.settingsRepo.GetForExam(ctx, *examID)
		if err != nil {
			zap.L().Error("failed to get exam revenue settings", zap.Error(err))
			return nil, err
		}
		if override != nil {
			return override, nil
		}
	}

	settings, err := s.settingsRepo.GetGlobal(ctx)
	if err != nil {
		zap.L().Error("failed to get global revenue settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *Service) CalculateSharing(ctx context.Context, amount int64, examID *int) (*domain.RevenueShare, error) {
	settings, err := s.ResolveSettings(ctx, examID)
	if err != nil {
		return nil, err
	}
	return Split(settings, amount), nil
}

func (s *Service) GetGlobalSettings(ctx context.Context) (*domain.RevenueSettings, error) {
	return s.settingsRepo.GetGlobal(ctx)
}

func (s *Service) UpdateGlobalSettings(ctx context.Context, settings *domain.RevenueSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := s.settingsRepo.UpdateGlobal(ctx, settings); err != nil {
		zap.L().Error("failed to update global revenue settings", zap.Error(err))
		return err
	}
	return nil
}

// GetExamSettings returns the effective settings for an exam and whether
// they come from a per-exam override.
func (s *Service) GetExamSettings(ctx context.Context, examID int) (*domain.RevenueSettings, bool, error) {
	override, err := s.settingsRepo.GetForExam(ctx, examID)
	if err != nil {
		zap.L().Error("failed to get exam revenue settings", zap.Error(err))
		return nil, false, err
	}
	if override != nil {
		return override, true, nil
	}

	settings, err := s.settingsRepo.GetGlobal(ctx)
	if err != nil {
		return nil, false, err
	}
	return settings, false, nil
}

func (s *Service) UpdateExamSettings(ctx context.Context, examID int, settings *domain.RevenueSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := s.settingsRepo.UpsertForExam(ctx, examID, settings); err != nil {
		zap.L().Error("failed to update exam revenue settings", zap.Error(err))
		return err
	}
	return nil
}

// ResetExamSettings removes the per-exam override entirely, so future
// global changes apply to the exam retroactively.
func (s *Service) ResetExamSettings(ctx context.Context, examID int) error {
	if err := s.settingsRepo.DeleteForExam(ctx, examID); err != nil {
		zap.L().Error("failed to reset exam revenue settings", zap.Error(err))
		return err
	}
	return nil
}

func validateSettings(settings *domain.RevenueSettings) error {
	if settings.DesignerSharePercent < 0 || settings.PlatformFeePercent < 0 {
		return ErrInvalidSplit
	}
	if settings.DesignerSharePercent+settings.PlatformFeePercent != 100 {
		return ErrInvalidSplit
	}
	return nil
}
