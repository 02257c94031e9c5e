package pricingservice

import (
	"context"
	"errors"
	"math"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=pricingservice.go -destination=pricingservice_mock.go -package=pricingservice

type CatalogRepo interface {
	GetExam(ctx context.Context, examID int) (*domain.Exam, error)
	GetFlashcards(ctx context.Context, ids []int) ([]domain.Flashcard, error)
}

type Service struct {
	cfg     Config
	catalog CatalogRepo
}

func New(cfg Config, catalog CatalogRepo) *Service {
	return &Service{
		cfg:     cfg,
		catalog: catalog,
	}
}

var (
	ErrInvalidQuestionCount = errors.New("question count outside supported brackets")
	ErrEmptyFlashcards      = errors.New("empty flashcard set")
	ErrExamNotFound         = errors.New("exam not found")
	ErrFlashcardsNotFound   = errors.New("one or more flashcards not found")
)

// CalculateExamPrice prices a single exam purchase. The computation is
// pure: base price by question-count bracket, then every eligible discount
// stacked additively on the base price, then rounding and clamping.
func (s *Service) CalculateExamPrice(questionCount int, userType string, isFirstPurchase bool, bulkCount int) (*domain.PricingResult, error) {
	tier, ok := s.tierFor(questionCount)
	if !ok {
		return nil, ErrInvalidQuestionCount
	}

	result := &domain.PricingResult{
		BasePrice:     tier.BasePrice,
		PriceCategory: tier.Category,
		Discounts:     []domain.Discount{},
	}

	if isFirstPurchase {
		s.applyDiscount(result, domain.FirstPurchaseDiscount, s.cfg.FirstPurchaseRate)
	}
	if userType == domain.UserTypeStudent {
		s.applyDiscount(result, domain.StudentDiscount, s.cfg.StudentRate)
	}
	if bulkCount >= s.cfg.BulkThreshold {
		s.applyDiscount(result, domain.BulkDiscount, s.cfg.BulkRate)
	}

	result.FinalPrice = clamp(result.BasePrice-result.TotalDiscount, s.cfg.MinPrice, s.cfg.MaxPrice)
	return result, nil
}

// CalculateFlashcardPrice prices a bulk flashcard purchase: the base price
// is the sum of per-card prices (default when unset), the same stacking
// rules apply plus a volume discount, and the final price floors at zero
// before the flashcard bounds clamp.
func (s *Service) CalculateFlashcardPrice(cards []domain.Flashcard, userType string, isFirstPurchase bool) (*domain.PricingResult, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyFlashcards
	}

	var base int64
	for _, card := range cards {
		if card.Price != nil {
			base += *card.Price
		} else {
			base += s.cfg.FlashcardDefaultPrice
		}
	}

	result := &domain.PricingResult{
		BasePrice: base,
		Discounts: []domain.Discount{},
	}

	if isFirstPurchase {
		s.applyDiscount(result, domain.FirstPurchaseDiscount, s.cfg.FirstPurchaseRate)
	}
	if userType == domain.UserTypeStudent {
		s.applyDiscount(result, domain.StudentDiscount, s.cfg.StudentRate)
	}
	if len(cards) >= s.cfg.FlashcardBulkThreshold {
		s.applyDiscount(result, domain.FlashcardBulkDiscount, s.cfg.FlashcardBulkRate)
	}

	price := result.BasePrice - result.TotalDiscount
	if price < 0 {
		price = 0
	}
	result.FinalPrice = clamp(price, s.cfg.FlashcardMinPrice, s.cfg.FlashcardMaxPrice)
	return result, nil
}

// CalculateFlashcardPriceByIDs resolves flashcard ids through the catalog
// and prices them.
func (s *Service) CalculateFlashcardPriceByIDs(ctx context.Context, ids []int, userType string, isFirstPurchase bool) (*domain.PricingResult, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyFlashcards
	}

	cards, err := s.catalog.GetFlashcards(ctx, ids)
	if err != nil {
		zap.L().Error("failed to fetch flashcards", zap.Error(err))
		return nil, err
	}
	if len(cards) != len(ids) {
		return nil, ErrFlashcardsNotFound
	}

	return s.CalculateFlashcardPrice(cards, userType, isFirstPurchase)
}

// ExamPricing resolves an exam through the catalog and prices it for the
// given buyer profile.
func (s *Service) ExamPricing(ctx context.Context, examID int, userType string, isFirstPurchase bool) (*domain.Exam, *domain.PricingResult, error) {
	exam, err := s.catalog.GetExam(ctx, examID)
	if err != nil {
		zap.L().Error("failed to fetch exam", zap.Error(err))
		return nil, nil, err
	}
	if exam == nil {
		return nil, nil, ErrExamNotFound
	}

	pricing, err := s.CalculateExamPrice(exam.QuestionCount, userType, isFirstPurchase, 0)
	if err != nil {
		return nil, nil, err
	}
	return exam, pricing, nil
}

// QuestionCountValid reports whether a question count falls inside the
// configured brackets. Handlers use it to reject bad input with 400
// before the engine runs.
func (s *Service) QuestionCountValid(questionCount int) bool {
	return questionCount >= s.cfg.MinQuestionCount() && questionCount <= s.cfg.MaxQuestionCount()
}

// applyDiscount adds one discount line. Each discount is computed on the
// base price independently of the others, so eligible discounts stack
// instead of compounding.
func (s *Service) applyDiscount(r *domain.PricingResult, discountType string, rate float64) {
	amount := int64(math.Round(float64(r.BasePrice) * rate))
	r.Discounts = append(r.Discounts, domain.Discount{
		Type:   discountType,
		Rate:   rate,
		Amount: amount,
	})
	r.TotalDiscount += amount
}

func (s *Service) tierFor(questionCount int) (Tier, bool) {
	for _, t := range s.cfg.Tiers {
		if questionCount >= t.MinQuestions && questionCount <= t.MaxQuestions {
			return t, true
		}
	}
	return Tier{}, false
}

func clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
