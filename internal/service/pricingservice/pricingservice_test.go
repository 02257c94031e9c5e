package pricingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCatalogRepo) {
	ctrl := gomock.NewController(t)
	catalog := NewMockCatalogRepo(ctrl)
	service := New(DefaultConfig(), catalog)
	defer ctrl.Finish()
	return service, catalog
}

func int64Ptr(v int64) *int64 { return &v }

func TestCalculateExamPrice(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name            string
		questionCount   int
		userType        string
		isFirstPurchase bool
		bulkCount       int
		expectedError   error
		expected        *domain.PricingResult
	}{
		{
			name:          "Category B regular no discounts",
			questionCount: 25,
			userType:      domain.UserTypeRegular,
			expected: &domain.PricingResult{
				BasePrice:     1000,
				Discounts:     []domain.Discount{},
				TotalDiscount: 0,
				FinalPrice:    1000,
				PriceCategory: "B",
			},
		},
		{
			name:            "Category A first-time student stacks both discounts",
			questionCount:   15,
			userType:        domain.UserTypeStudent,
			isFirstPurchase: true,
			expected: &domain.PricingResult{
				BasePrice: 800,
				Discounts: []domain.Discount{
					{Type: domain.FirstPurchaseDiscount, Rate: 0.10, Amount: 80},
					{Type: domain.StudentDiscount, Rate: 0.20, Amount: 160},
				},
				TotalDiscount: 240,
				FinalPrice:    560,
				PriceCategory: "A",
			},
		},
		{
			name:            "All three discounts clamp to floor",
			questionCount:   20,
			userType:        domain.UserTypeStudent,
			isFirstPurchase: true,
			bulkCount:       5,
			expected: &domain.PricingResult{
				BasePrice: 800,
				Discounts: []domain.Discount{
					{Type: domain.FirstPurchaseDiscount, Rate: 0.10, Amount: 80},
					{Type: domain.StudentDiscount, Rate: 0.20, Amount: 160},
					{Type: domain.BulkDiscount, Rate: 0.15, Amount: 120},
				},
				TotalDiscount: 360,
				// 800-360=440 is below the 500 floor
				FinalPrice:    500,
				PriceCategory: "A",
			},
		},
		{
			name:          "Bulk below threshold gets no bulk discount",
			questionCount: 35,
			userType:      domain.UserTypePremium,
			bulkCount:     4,
			expected: &domain.PricingResult{
				BasePrice:     1200,
				Discounts:     []domain.Discount{},
				TotalDiscount: 0,
				FinalPrice:    1200,
				PriceCategory: "C",
			},
		},
		{
			name:          "Question count below range",
			questionCount: 9,
			userType:      domain.UserTypeRegular,
			expectedError: ErrInvalidQuestionCount,
		},
		{
			name:          "Question count above range",
			questionCount: 51,
			userType:      domain.UserTypeRegular,
			expectedError: ErrInvalidQuestionCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.CalculateExamPrice(tt.questionCount, tt.userType, tt.isFirstPurchase, tt.bulkCount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateExamPriceBracketBases(t *testing.T) {
	service, _ := NewMock(t)

	for count := 10; count <= 20; count++ {
		result, err := service.CalculateExamPrice(count, domain.UserTypeRegular, false, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(800), result.BasePrice)
		assert.Equal(t, "A", result.PriceCategory)
	}
	for count := 21; count <= 30; count++ {
		result, err := service.CalculateExamPrice(count, domain.UserTypeRegular, false, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), result.BasePrice)
	}
	for count := 31; count <= 50; count++ {
		result, err := service.CalculateExamPrice(count, domain.UserTypeRegular, false, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1200), result.BasePrice)
	}
}

func TestCalculateExamPriceBounds(t *testing.T) {
	service, _ := NewMock(t)
	cfg := DefaultConfig()

	userTypes := []string{domain.UserTypeRegular, domain.UserTypeStudent, domain.UserTypePremium}
	for count := 10; count <= 50; count++ {
		for _, userType := range userTypes {
			for _, first := range []bool{false, true} {
				for _, bulk := range []int{0, 5} {
					result, err := service.CalculateExamPrice(count, userType, first, bulk)
					assert.NoError(t, err)
					assert.GreaterOrEqual(t, result.FinalPrice, cfg.MinPrice)
					assert.LessOrEqual(t, result.FinalPrice, cfg.MaxPrice)
				}
			}
		}
	}
}

func TestCalculateFlashcardPrice(t *testing.T) {
	service, _ := NewMock(t)

	tenCards := make([]domain.Flashcard, 10)
	for i := range tenCards {
		tenCards[i] = domain.Flashcard{ID: i + 1, Price: int64Ptr(100)}
	}

	tests := []struct {
		name            string
		cards           []domain.Flashcard
		userType        string
		isFirstPurchase bool
		expectedError   error
		expected        *domain.PricingResult
	}{
		{
			name: "Sum of card prices with default fallback",
			cards: []domain.Flashcard{
				{ID: 1, Price: int64Ptr(300)},
				{ID: 2},
				{ID: 3, Price: int64Ptr(250)},
			},
			userType: domain.UserTypeRegular,
			expected: &domain.PricingResult{
				BasePrice:     650,
				Discounts:     []domain.Discount{},
				TotalDiscount: 0,
				FinalPrice:    650,
			},
		},
		{
			name:     "Ten cards unlock bulk discount",
			cards:    tenCards,
			userType: domain.UserTypeRegular,
			expected: &domain.PricingResult{
				BasePrice: 1000,
				Discounts: []domain.Discount{
					{Type: domain.FlashcardBulkDiscount, Rate: 0.15, Amount: 150},
				},
				TotalDiscount: 150,
				FinalPrice:    850,
			},
		},
		{
			name: "Cheap cards clamp up to flashcard floor",
			cards: []domain.Flashcard{
				{ID: 1, Price: int64Ptr(50)},
			},
			userType:        domain.UserTypeStudent,
			isFirstPurchase: true,
			expected: &domain.PricingResult{
				BasePrice: 50,
				Discounts: []domain.Discount{
					{Type: domain.FirstPurchaseDiscount, Rate: 0.10, Amount: 5},
					{Type: domain.StudentDiscount, Rate: 0.20, Amount: 10},
				},
				TotalDiscount: 15,
				// 35 floors at 0 first, then clamps to the 200 minimum
				FinalPrice: 200,
			},
		},
		{
			name:          "Empty set rejected",
			cards:         nil,
			userType:      domain.UserTypeRegular,
			expectedError: ErrEmptyFlashcards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.CalculateFlashcardPrice(tt.cards, tt.userType, tt.isFirstPurchase)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateFlashcardPriceByIDs(t *testing.T) {
	service, catalog := NewMock(t)

	tests := []struct {
		name          string
		ids           []int
		prepareMock   func()
		expectedError error
		expectedFinal int64
	}{
		{
			name: "Resolves ids and prices them",
			ids:  []int{1, 2},
			prepareMock: func() {
				catalog.EXPECT().GetFlashcards(gomock.Any(), []int{1, 2}).Return([]domain.Flashcard{
					{ID: 1, Price: int64Ptr(400)},
					{ID: 2, Price: int64Ptr(350)},
				}, nil)
			},
			expectedFinal: 750,
		},
		{
			name:          "Empty ids rejected before lookup",
			ids:           nil,
			expectedError: ErrEmptyFlashcards,
		},
		{
			name: "Missing card",
			ids:  []int{1, 99},
			prepareMock: func() {
				catalog.EXPECT().GetFlashcards(gomock.Any(), []int{1, 99}).Return([]domain.Flashcard{
					{ID: 1, Price: int64Ptr(400)},
				}, nil)
			},
			expectedError: ErrFlashcardsNotFound,
		},
		{
			name: "Catalog error",
			ids:  []int{1},
			prepareMock: func() {
				catalog.EXPECT().GetFlashcards(gomock.Any(), []int{1}).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.CalculateFlashcardPriceByIDs(context.Background(), tt.ids, domain.UserTypeRegular, false)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFinal, result.FinalPrice)
		})
	}
}

func TestExamPricing(t *testing.T) {
	service, catalog := NewMock(t)

	tests := []struct {
		name          string
		examID        int
		prepareMock   func()
		expectedError error
		expectedBase  int64
	}{
		{
			name:   "Known exam priced with bracket base",
			examID: 1,
			prepareMock: func() {
				catalog.EXPECT().GetExam(gomock.Any(), 1).Return(&domain.Exam{
					ID:            1,
					DesignerID:    7,
					QuestionCount: 25,
				}, nil)
			},
			expectedBase: 1000,
		},
		{
			name:   "Unknown exam",
			examID: 42,
			prepareMock: func() {
				catalog.EXPECT().GetExam(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrExamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			exam, pricing, err := service.ExamPricing(context.Background(), tt.examID, domain.UserTypeRegular, false)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, exam)
				assert.Nil(t, pricing)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.examID, exam.ID)
			assert.Equal(t, tt.expectedBase, pricing.BasePrice)
		})
	}
}

func TestQuestionCountValid(t *testing.T) {
	service, _ := NewMock(t)

	assert.True(t, service.QuestionCountValid(10))
	assert.True(t, service.QuestionCountValid(50))
	assert.False(t, service.QuestionCountValid(9))
	assert.False(t, service.QuestionCountValid(51))
	assert.False(t, service.QuestionCountValid(0))
}
