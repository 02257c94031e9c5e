package finance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/dto"
	"github.com/ab65ed/soaledu-finance/internal/service/revenueservice"
)

func NewMock(t *testing.T) (*FinanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func examRequest(method, examID, body string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("examID", examID)
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)

	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	return httptest.NewRequest(method, "/api/finance-settings/exams/"+examID, buf).WithContext(ctx)
}

func TestGetSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetGlobalSettings(gomock.Any()).
		Return(&domain.RevenueSettings{DesignerSharePercent: 70, PlatformFeePercent: 30}, nil)

	w := httptest.NewRecorder()
	handler.GetSettings(w, httptest.NewRequest(http.MethodGet, "/api/finance-settings", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.RevenueSettingsDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, dto.RevenueSettingsDTO{DesignerSharePercent: 70, PlatformFeePercent: 30}, body)
}

func TestUpdateSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful update",
			body: `{"designer_share_percent":80,"platform_fee_percent":20}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateGlobalSettings(gomock.Any(), &domain.RevenueSettings{DesignerSharePercent: 80, PlatformFeePercent: 20}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"designer_share_percent":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Percentages do not sum to 100",
			body: `{"designer_share_percent":80,"platform_fee_percent":30}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateGlobalSettings(gomock.Any(), &domain.RevenueSettings{DesignerSharePercent: 80, PlatformFeePercent: 30}).
					Return(revenueservice.ErrInvalidSplit)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.UpdateSettings(w, httptest.NewRequest(http.MethodPut, "/api/finance-settings", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetExamSettingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		examID       string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody *dto.ExamSettingsResponseDTO
	}{
		{
			name:   "Override in place",
			examID: "10",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					GetExamSettings(gomock.Any(), 10).
					Return(&domain.RevenueSettings{DesignerSharePercent: 80, PlatformFeePercent: 20}, true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ExamSettingsResponseDTO{ExamID: 10, DesignerSharePercent: 80, PlatformFeePercent: 20, Overridden: true},
		},
		{
			name:   "Falls back to global",
			examID: "11",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					GetExamSettings(gomock.Any(), 11).
					Return(&domain.RevenueSettings{DesignerSharePercent: 70, PlatformFeePercent: 30}, false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ExamSettingsResponseDTO{ExamID: 11, DesignerSharePercent: 70, PlatformFeePercent: 30, Overridden: false},
		},
		{
			name:         "Invalid exam id",
			examID:       "abc",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetExamSettings(w, examRequest(http.MethodGet, tt.examID, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.ExamSettingsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestUpdateExamSettingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		examID       string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:   "Successful override",
			examID: "10",
			body:   `{"designer_share_percent":85,"platform_fee_percent":15}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					UpdateExamSettings(gomock.Any(), 10, &domain.RevenueSettings{DesignerSharePercent: 85, PlatformFeePercent: 15}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid exam id",
			examID:       "abc",
			body:         `{}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Percentages do not sum to 100",
			examID: "10",
			body:   `{"designer_share_percent":85,"platform_fee_percent":25}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					UpdateExamSettings(gomock.Any(), 10, gomock.Any()).
					Return(revenueservice.ErrInvalidSplit)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.UpdateExamSettings(w, examRequest(http.MethodPut, tt.examID, tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestResetExamSettingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		examID       string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:   "Successful reset",
			examID: "10",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ResetExamSettings(gomock.Any(), 10).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Internal server error",
			examID: "10",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ResetExamSettings(gomock.Any(), 10).
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.ResetExamSettings(w, examRequest(http.MethodDelete, tt.examID, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCalculateSharingHandler(t *testing.T) {
	examID := 10

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody *dto.RevenueShareResponseDTO
	}{
		{
			name: "Split with exam override",
			body: `{"amount":1000,"exam_id":10}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CalculateSharing(gomock.Any(), int64(1000), &examID).
					Return(&domain.RevenueShare{Amount: 1000, DesignerShare: 800, PlatformFee: 200}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.RevenueShareResponseDTO{Amount: 1000, DesignerShare: 800, PlatformFee: 200},
		},
		{
			name: "Split with global default",
			body: `{"amount":1001}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CalculateSharing(gomock.Any(), int64(1001), nil).
					Return(&domain.RevenueShare{Amount: 1001, DesignerShare: 700, PlatformFee: 301}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.RevenueShareResponseDTO{Amount: 1001, DesignerShare: 700, PlatformFee: 301},
		},
		{
			name:         "Non-positive amount",
			body:         `{"amount":0}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CalculateSharing(w, httptest.NewRequest(http.MethodPost, "/api/finance-settings/calculate-sharing", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.RevenueShareResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
