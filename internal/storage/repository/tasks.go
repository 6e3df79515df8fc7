package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// CreateTask вставляет новую задачу и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (int, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO tasks (title, description, due_date, priority,
			      status, completed_at, username, user_uid)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Priority,
		task.Status, task.CompletedAt, task.Username, task.UserUID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadTask возвращает данные задачи по её ID.
func (s *Storage) ReadTask(ctx context.Context, id int) (*models.Task, error) {
	const op = "storage.ReadTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, due_date, priority, status,
			      completed_at, username, user_uid
			  FROM tasks WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Task
	var completedAt sql.NullTime
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.DueDate,
		&result.Priority, &result.Status, &completedAt, &result.Username, &result.UserUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if completedAt.Valid {
		result.CompletedAt = &completedAt.Time
	}
	return &result, nil
}

// UpdateTask обновляет данные задачи по её ID и возвращает количество изменённых строк.
func (s *Storage) UpdateTask(ctx context.Context, task models.Task, id int) (int, error) {
	const op = "storage.UpdateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks
			  SET title = $1, description = $2, due_date = $3, priority = $4,
			      status = $5, completed_at = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Priority,
		task.Status, task.CompletedAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateTaskStatus меняет статус и момент завершения задачи одним запросом.
func (s *Storage) UpdateTaskStatus(ctx context.Context, id int, status string, completedAt *time.Time) (int, error) {
	const op = "storage.UpdateTaskStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks SET status = $1, completed_at = $2 WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, status, completedAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveTask удаляет задачу по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveTask(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tasks WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListTasks возвращает список задач пользователя с учётом фильтров и пагинации.
// Выборка всегда ограничена записями владельца по его неизменяемому UID.
func (s *Storage) ListTasks(ctx context.Context, userUID string, filter models.TaskFilter, limit, offset int) ([]*models.Task, error) {
	const op = "storage.ListTasks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, due_date, priority, status,
			      completed_at, username, user_uid
			  FROM tasks
			  WHERE user_uid = $1`
	args := []any{userUID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.DueDate != nil {
		args = append(args, *filter.DueDate)
		query += fmt.Sprintf(" AND due_date = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Task
	for rows.Next() {
		var item models.Task
		var completedAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.DueDate,
			&item.Priority, &item.Status, &completedAt, &item.Username, &item.UserUID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if completedAt.Valid {
			item.CompletedAt = &completedAt.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
