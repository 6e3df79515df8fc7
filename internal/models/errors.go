// Package models определяет доменные ошибки, по которым HTTP-слой
// подбирает статус ответа.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки бизнес-уровня.
var (
	// ErrTaskNotFound возвращается, если задача не найдена в хранилище.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound возвращается, если пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden возвращается при попытке доступа к чужой записи.
	ErrForbidden = errors.New("access denied")
	// ErrAlreadyCompleted возвращается при повторном завершении задачи.
	ErrAlreadyCompleted = errors.New("task is already marked as complete")
	// ErrAlreadyPending возвращается при повторном возврате задачи в работу.
	ErrAlreadyPending = errors.New("task is already marked as incomplete")
	// ErrUsernameTaken возвращается при регистрации с занятым именем пользователя.
	ErrUsernameTaken = errors.New("this username is already taken")
	// ErrEmailTaken возвращается при регистрации с занятой электронной почтой.
	ErrEmailTaken = errors.New("this email is already registered")
	// ErrInvalidCredentials возвращается при неверном пароле или имени пользователя.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError описывает одно нарушение валидации конкретного поля.
type FieldError struct {
	Field   string // Имя поля в JSON-запросе
	Message string // Человеко-читаемое описание нарушения
}

// ValidationErrors собирает все нарушения кросс-полевой валидации.
// Проверки выполняются целиком: в ответ попадает каждое нарушение,
// а не только первое.
type ValidationErrors []FieldError

// Error реализует интерфейс error, объединяя сообщения через "; ".
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fmt.Sprintf("field %s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Add добавляет нарушение валидации для поля field.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}
