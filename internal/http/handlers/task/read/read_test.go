package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id int, userUID string) (*models.Task, error) {
	args := m.Called(ctx, id, userUID)
	if res := args.Get(0); res != nil {
		return res.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		idParam        string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное чтение задачи",
			idParam: "123",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				task := &models.Task{
					ID:       123,
					Title:    "Write report",
					DueDate:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					Priority: models.PriorityHigh,
					Status:   models.StatusPending,
					Username: "testuser",
					UserUID:  "uid-1",
				}
				m.On("Read", mock.Anything, 123, "uid-1").Return(task, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Title":"Write report"`,
		},
		{
			name:           "некорректный id в URL",
			idParam:        "abc",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid id"`,
		},
		{
			name:    "задача не найдена",
			idParam: "777",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 777, "uid-1").Return(nil, models.ErrTaskNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"task not found"`,
		},
		{
			name:    "чужая задача",
			idParam: "5",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 5, "uid-1").Return(nil, models.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"access denied"`,
		},
		{
			name:    "ошибка сервиса чтения",
			idParam: "9",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 9, "uid-1").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not read task"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/tasks/"+tt.idParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
