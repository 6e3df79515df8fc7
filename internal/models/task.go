// Package models содержит доменные структуры задач и пользователей,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Возможные приоритеты задачи.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Возможные статусы задачи.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Task представляет собой основную модель задачи,
// используемую в бизнес-логике и хранилище.
// DueDate хранится с точностью до дня, CompletedAt может быть nil —
// это означает, что задача ещё не завершена.
type Task struct {
	ID          int        // Идентификатор задачи
	Title       string     // Заголовок задачи
	Description string     // Описание задачи
	DueDate     time.Time  // Срок выполнения (календарная дата)
	Priority    string     // Приоритет: Low, Medium или High
	Status      string     // Статус: Pending или Completed
	CompletedAt *time.Time // Момент завершения, nil для незавершённых
	Username    string     // Имя пользователя-владельца
	UserUID     string     // UID пользователя-владельца
}

// DummyTask используется для приёма данных задачи из JSON-запроса,
// прежде чем конвертировать их в Task.
// Даты приходят строками в формате 2006-01-02, чтобы их можно было
// валидировать и парсить вручную.
type DummyTask struct {
	Title       string `json:"title" validate:"required,max=255"`                      // Заголовок
	Description string `json:"description" validate:"required"`                        // Описание
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`       // Срок выполнения
	Priority    string `json:"priority" validate:"required,oneof=Low Medium High"`     // Приоритет
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed"` // Статус (по умолчанию Pending)
	CompletedAt string `json:"completed_at,omitempty" validate:"omitempty,datetime=2006-01-02"` // Дата завершения (опционально)
}

// DummyTaskFilter используется для приёма параметров фильтра из query-строки
// до их валидации и преобразования в TaskFilter. Дата приходит строкой.
type DummyTaskFilter struct {
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed"`   // Фильтр по статусу
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`   // Фильтр по приоритету
	DueDate  string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`     // Фильтр по сроку выполнения
}

// TaskFilter представляет параметры фильтрации списка задач,
// которые передаются в слой доступа к данным.
// Нулевые значения означают отсутствие фильтра по соответствующему полю.
type TaskFilter struct {
	Status   string     // Фильтр по статусу (пустая строка — без фильтра)
	Priority string     // Фильтр по приоритету
	DueDate  *time.Time // Фильтр по точной дате срока выполнения
}
