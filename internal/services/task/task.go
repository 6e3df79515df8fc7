// Package services содержит бизнес-логику для управления задачами:
// валидацию дат, смену статуса, контроль владельца и кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/task-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask добавляет новую задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (int, error)
	// ReadTask возвращает задачу по ID.
	ReadTask(ctx context.Context, id int) (*models.Task, error)
	// UpdateTask обновляет данные задачи по ID.
	UpdateTask(ctx context.Context, task models.Task, id int) (int, error)
	// UpdateTaskStatus меняет статус и момент завершения задачи.
	UpdateTaskStatus(ctx context.Context, id int, status string, completedAt *time.Time) (int, error)
	// RemoveTask удаляет задачу по ID и возвращает количество удалённых записей.
	RemoveTask(ctx context.Context, id int) (int, error)
	// ListTasks возвращает список задач пользователя с фильтрами и пагинацией.
	ListTasks(ctx context.Context, userUID string, filter models.TaskFilter, limit, offset int) ([]*models.Task, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// TaskService реализует бизнес-логику работы с задачами, включая кеширование.
type TaskService struct {
	repo  TaskRepository
	cache Cache
	log   *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService.
func NewTaskService(repo TaskRepository, cache Cache, log *slog.Logger) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// buildTask парсит и валидирует входные данные, возвращая доменную задачу.
func buildTask(req models.DummyTask, username, userUID string) (models.Task, error) {
	dueDate, err := time.Parse(DateLayout, req.DueDate)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid due date: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	var completedAt *time.Time
	if req.CompletedAt != "" {
		parsed, err := time.Parse(DateLayout, req.CompletedAt)
		if err != nil {
			return models.Task{}, fmt.Errorf("invalid completion date: %w", err)
		}
		completedAt = &parsed
	}

	if verrs := validateTaskDates(dueDate, status, completedAt, Today()); verrs != nil {
		return models.Task{}, verrs
	}

	return models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    req.Priority,
		Status:      status,
		CompletedAt: completedAt,
		Username:    username,
		UserUID:     userUID,
	}, nil
}

// authorize проверяет, что задача принадлежит пользователю с данным UID.
// Сравнение идёт по неизменяемому UID, а не по имени пользователя:
// имя может быть переиспользовано после переименования учётной записи.
func authorize(task *models.Task, userUID string) error {
	if task.UserUID != userUID {
		return models.ErrForbidden
	}
	return nil
}

// Create создает новую задачу для пользователя, кеширует её и возвращает ID.
func (s *TaskService) Create(ctx context.Context, username, userUID string, req models.DummyTask) (int, error) {
	task, err := buildTask(req, username, userUID)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return 0, err
	}
	task.ID = id

	s.log.Info("created new task", slog.Int("id", id))

	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Set(cacheKey, task, time.Hour); err != nil {
		s.log.Warn("failed to cache task", slog.String("key", cacheKey), sl.Err(err))
	}

	return id, nil
}

// Read возвращает задачу по ID, используя кеш или репозиторий.
// Задача возвращается только её владельцу.
func (s *TaskService) Read(ctx context.Context, id int, userUID string) (*models.Task, error) {
	var result *models.Task
	cacheKey := fmt.Sprintf("task:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
		found = false
	}
	if !found {
		result, err = s.repo.ReadTask(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
		}
	}

	if err := authorize(result, userUID); err != nil {
		return nil, err
	}
	return result, nil
}

// Update обновляет задачу владельца и обновляет кеш.
func (s *TaskService) Update(ctx context.Context, req models.DummyTask, id int, userUID string) (*models.Task, error) {
	current, err := s.repo.ReadTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(current, userUID); err != nil {
		return nil, err
	}

	task, err := buildTask(req, current.Username, current.UserUID)
	if err != nil {
		return nil, err
	}
	task.ID = id

	if _, err := s.repo.UpdateTask(ctx, task, id); err != nil {
		return nil, err
	}
	s.log.Info("updated task in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Set(cacheKey, task, time.Hour); err != nil {
		s.log.Warn("failed to cache task", slog.String("key", cacheKey), sl.Err(err))
	}
	return &task, nil
}

// Remove удаляет задачу владельца по ID и инвалидирует кеш.
func (s *TaskService) Remove(ctx context.Context, id int, userUID string) (int, error) {
	current, err := s.repo.ReadTask(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := authorize(current, userUID); err != nil {
		return 0, err
	}

	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), sl.Err(err))
	}

	return s.repo.RemoveTask(ctx, id)
}

// List возвращает список задач пользователя с учётом фильтров.
// Выборка всегда ограничена задачами самого пользователя.
func (s *TaskService) List(ctx context.Context, userUID string, req models.DummyTaskFilter, limit, offset int) ([]*models.Task, error) {
	filter := models.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(DateLayout, req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date filter: %w", err)
		}
		filter.DueDate = &dueDate
	}

	return s.repo.ListTasks(ctx, userUID, filter, limit, offset)
}

// MarkComplete переводит задачу владельца в статус Completed,
// проставляя момент завершения. Повторное завершение отклоняется.
func (s *TaskService) MarkComplete(ctx context.Context, id int, userUID string) (*models.Task, error) {
	return s.setStatus(ctx, id, userUID, models.StatusCompleted)
}

// MarkIncomplete возвращает задачу владельца в статус Pending,
// сбрасывая момент завершения. Повторный возврат отклоняется.
func (s *TaskService) MarkIncomplete(ctx context.Context, id int, userUID string) (*models.Task, error) {
	return s.setStatus(ctx, id, userUID, models.StatusPending)
}

// setStatus выполняет переход между двумя статусами задачи.
// Переходы-ноопы отклоняются с ошибкой конфликта, статус и момент
// завершения меняются всегда вместе.
func (s *TaskService) setStatus(ctx context.Context, id int, userUID, status string) (*models.Task, error) {
	task, err := s.repo.ReadTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(task, userUID); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	switch status {
	case models.StatusCompleted:
		if task.Status == models.StatusCompleted {
			return nil, models.ErrAlreadyCompleted
		}
		now := time.Now().UTC()
		completedAt = &now
	case models.StatusPending:
		if task.Status == models.StatusPending {
			return nil, models.ErrAlreadyPending
		}
	}

	if _, err := s.repo.UpdateTaskStatus(ctx, id, status, completedAt); err != nil {
		return nil, err
	}
	task.Status = status
	task.CompletedAt = completedAt

	s.log.Info("changed task status", slog.Int("id", id), slog.String("status", status))

	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Set(cacheKey, task, time.Hour); err != nil {
		s.log.Warn("failed to cache task", slog.String("key", cacheKey), sl.Err(err))
	}
	return task, nil
}
