package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, email, rawPassword, bio, profilePicture string) (string, error) {
	args := m.Called(ctx, username, email, rawPassword, bio, profilePicture)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"username":"testuser","email":"test@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "secret123", "", "").
					Return("7f9c24e5-2f7a-4b1c-9d35-0b1f6a8a9c11", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"uid":"7f9c24e5-2f7a-4b1c-9d35-0b1f6a8a9c11"`,
		},
		{
			name: "регистрация с полями профиля",
			body: `{"username":"testuser","email":"test@example.com","password":"secret123","bio":"gopher","profile_picture":"http://example.com/a.png"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "secret123", "gopher", "http://example.com/a.png").
					Return("7f9c24e5-2f7a-4b1c-9d35-0b1f6a8a9c11", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"uid"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "слишком короткий пароль",
			body:           `{"username":"testuser","email":"test@example.com","password":"123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name:           "некорректный email",
			body:           `{"username":"testuser","email":"not-an-email","password":"secret123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "имя пользователя занято",
			body: `{"username":"testuser","email":"test@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "secret123", "", "").
					Return("", models.ErrUsernameTaken)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"this username is already taken"`,
		},
		{
			name: "email уже зарегистрирован",
			body: `{"username":"testuser","email":"test@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "secret123", "", "").
					Return("", models.ErrEmailTaken)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"this email is already registered"`,
		},
		{
			name: "ошибка сервиса регистрации",
			body: `{"username":"testuser","email":"test@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "secret123", "", "").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
