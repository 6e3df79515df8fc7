package incomplete

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// MockService реализует интерфейс incomplete.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) MarkIncomplete(ctx context.Context, id int, userUID string) (*models.Task, error) {
	args := m.Called(ctx, id, userUID)
	if res := args.Get(0); res != nil {
		return res.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestIncompleteHandler(t *testing.T) {
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
			name:    "успешный возврат задачи в работу",
			idParam: "123",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				task := &models.Task{
					ID:       123,
					Title:    "Write report",
					Status:   models.StatusPending,
					Username: "testuser",
					UserUID:  "uid-1",
				}
				m.On("MarkIncomplete", mock.Anything, 123, "uid-1").Return(task, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Status":"Pending"`,
		},
		{
			name:    "задача и так в работе",
			idParam: "123",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("MarkIncomplete", mock.Anything, 123, "uid-1").Return(nil, models.ErrAlreadyPending)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"task is already marked as incomplete"`,
		},
		{
			name:    "чужая задача",
			idParam: "5",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("MarkIncomplete", mock.Anything, 5, "uid-1").Return(nil, models.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"access denied"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/tasks/"+tt.idParam+"/incomplete", nil)
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
