package stats

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yigitoz/prayer-times-service/internal/models"
)

// MockService реализует интерфейс stats.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Stats(ctx context.Context) models.CacheStats {
	args := m.Called(ctx)
	return args.Get(0).(models.CacheStats)
}

func TestStatsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name         string
		setupMock    func(*MockService)
		expectedBody string
	}{
		{
			name: "заполненный кеш",
			setupMock: func(m *MockService) {
				m.On("Stats", mock.Anything).Return(models.CacheStats{
					TotalItems: 3,
					TotalSize:  "12.40 KB",
					Cities:     []string{"Istanbul", "Ankara"},
				})
			},
			expectedBody: `{"status":"OK","data":{"total_items":3,"total_size":"12.40 KB","cities":["Istanbul","Ankara"]}}`,
		},
		{
			name: "пустой кеш",
			setupMock: func(m *MockService) {
				m.On("Stats", mock.Anything).Return(models.CacheStats{TotalSize: "0 KB", Cities: []string{}})
			},
			expectedBody: `{"status":"OK","data":{"total_items":0,"total_size":"0 KB","cities":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
