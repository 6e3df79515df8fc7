// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и поля профиля.
// Структура используется в бизнес-логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID            string    // Уникальный идентификатор пользователя
	Username       string    // Имя пользователя (уникальное)
	Email          string    // Электронная почта (уникальная)
	PasswordHash   string    // Хэш пароля, в открытом виде пароль не хранится
	Bio            *string   // Описание профиля (опционально)
	ProfilePicture *string   // Ссылка на изображение профиля (опционально)
	CreatedAt      time.Time // Дата регистрации
}

// DummyUser используется для приёма данных профиля из JSON-запроса
// при обновлении пользователя. Пароль опционален: если он передан,
// бизнес-логика заменяет его свежим хэшем. Bio и ProfilePicture —
// указатели: отсутствующее или null-значение очищает поле профиля.
type DummyUser struct {
	Username       string  `json:"username" validate:"required,min=3,max=50"`     // Имя пользователя
	Email          string  `json:"email" validate:"required,email"`               // Электронная почта
	Password       string  `json:"password,omitempty" validate:"omitempty,min=6"` // Новый пароль (опционально)
	Bio            *string `json:"bio,omitempty"`                                 // Описание профиля
	ProfilePicture *string `json:"profile_picture,omitempty"`                     // Изображение профиля
}
