// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/task-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/task-tracker/internal/lib/password"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUser возвращает пользователя по UID или ошибку, если не найден.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateUser обновляет данные пользователя по UID.
	UpdateUser(ctx context.Context, user models.User, userUID string) (int, error)

	// RemoveUser удаляет пользователя по UID вместе с его задачами.
	RemoveUser(ctx context.Context, userUID string) (int, error)
}

// AuthService отвечает за регистрацию, авторизацию и управление профилем.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Занятые username или email приводят к доменной ошибке валидации.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword, bio, profilePicture string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if bio != "" {
		user.Bio = &bio
	}
	if profilePicture != "" {
		user.ProfilePicture = &profilePicture
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует пару access/refresh токенов.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token, refresh string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", models.ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", models.ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.jwtMaker.GenerateRefreshToken(user.Username, user.UID)
	if err != nil {
		return "", "", err
	}
	return token, refresh, nil
}

// Refresh выпускает новый access-токен по валидному refresh-токену.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	const op = "auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", fmt.Errorf("%s: token is not a refresh token", op)
	}
	return s.jwtMaker.GenerateToken(claims.Username, claims.UserUID)
}

// UpdateUser обновляет профиль пользователя. Изменять профиль может
// только сам пользователь; новый пароль заменяется свежим хэшем.
// Поля профиля заменяются тем, что прислано: отсутствующие bio и
// profile_picture очищают сохранённые значения.
func (s *AuthService) UpdateUser(ctx context.Context, targetUID, actorUID string, req models.DummyUser) (*models.User, error) {
	if targetUID != actorUID {
		return nil, models.ErrForbidden
	}

	user, err := s.users.GetUser(ctx, targetUID)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Bio = req.Bio
	user.ProfilePicture = req.ProfilePicture
	if req.Password != "" {
		hashed, err := password.GetHash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if _, err := s.users.UpdateUser(ctx, *user, targetUID); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveUser удаляет учётную запись пользователя вместе с его задачами.
// Удалить учётную запись может только сам пользователь.
func (s *AuthService) RemoveUser(ctx context.Context, targetUID, actorUID string) (int, error) {
	if targetUID != actorUID {
		return 0, models.ErrForbidden
	}
	return s.users.RemoveUser(ctx, targetUID)
}
