package services

import (
	"time"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// DateLayout — формат календарных дат во входных данных.
const DateLayout = "2006-01-02"

// Today возвращает текущую дату, усечённую до дня.
// Все проверки дат выполняются с точностью до дня: completed_at,
// равный сегодняшнему дню, считается допустимым.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// validateTaskDates выполняет кросс-полевую валидацию дат и статуса задачи.
// Проверяются все правила сразу, в результат попадает каждое нарушение,
// а не только первое:
//   - срок выполнения должен быть строго позже сегодняшнего дня;
//   - момент завершения не может быть раньше сегодняшнего дня;
//   - момент завершения допустим только для завершённой задачи;
//   - завершённая задача обязана иметь момент завершения.
//
// Возвращает nil, если нарушений нет.
func validateTaskDates(dueDate time.Time, status string, completedAt *time.Time, today time.Time) models.ValidationErrors {
	var verrs models.ValidationErrors

	if !dueDate.After(today) {
		verrs.Add("due_date", "due date must be in the future")
	}
	if completedAt != nil && completedAt.Before(today) {
		verrs.Add("completed_at", "completion date cannot be in the past")
	}
	if completedAt != nil && status != models.StatusCompleted {
		verrs.Add("completed_at", "completion date can only be set if the task is marked as completed")
	}
	if status == models.StatusCompleted && completedAt == nil {
		verrs.Add("completed_at", "completed tasks must have a completion timestamp")
	}

	if len(verrs) == 0 {
		return nil
	}
	return verrs
}
