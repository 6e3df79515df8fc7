package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

func TestStorage_ListTasks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dueDate := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.TaskFilter
		wantCount int
		setup     func(t *testing.T, factory *TestDataFactory) string
	}{
		{
			name:      "список задач пользователя с пагинацией",
			filter:    models.TaskFilter{},
			wantCount: 2,
			setup: func(t *testing.T, factory *TestDataFactory) string {
				userUID := uuid.New().String()
				otherUID := uuid.New().String()
				factory.CreateUser(t, userUID, "testuser", "test@example.com", "hashedpassword")
				factory.CreateUser(t, otherUID, "otheruser", "other@example.com", "hashedpassword")
				factory.CreateTask(t, "Buy milk", "2 liters", dueDate, models.PriorityLow, models.StatusPending, nil, "testuser", userUID)
				factory.CreateTask(t, "Write report", "Q1 numbers", dueDate, models.PriorityHigh, models.StatusPending, nil, "testuser", userUID)
				// задача другого пользователя не должна попасть в выборку
				factory.CreateTask(t, "Foreign task", "not mine", dueDate, models.PriorityLow, models.StatusPending, nil, "otheruser", otherUID)
				return userUID
			},
		},
		{
			name:      "фильтр по статусу и приоритету",
			filter:    models.TaskFilter{Status: models.StatusPending, Priority: models.PriorityHigh},
			wantCount: 1,
			setup: func(t *testing.T, factory *TestDataFactory) string {
				userUID := uuid.New().String()
				factory.CreateUser(t, userUID, "testuser", "test@example.com", "hashedpassword")
				now := time.Now().UTC()
				factory.CreateTask(t, "Done task", "finished", dueDate, models.PriorityHigh, models.StatusCompleted, &now, "testuser", userUID)
				factory.CreateTask(t, "Urgent task", "asap", dueDate, models.PriorityHigh, models.StatusPending, nil, "testuser", userUID)
				factory.CreateTask(t, "Minor task", "later", dueDate, models.PriorityLow, models.StatusPending, nil, "testuser", userUID)
				return userUID
			},
		},
		{
			name:      "список задач несуществующего пользователя",
			filter:    models.TaskFilter{},
			wantCount: 0,
			setup: func(_ *testing.T, _ *TestDataFactory) string {
				return uuid.New().String()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			userUID := tt.setup(t, factory)

			got, err := storage.ListTasks(context.Background(), userUID, tt.filter, 10, 0)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestStorage_RegisterUser_DuplicateMapping(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	user := GetTestUserData()
	uid, err := storage.RegisterUser(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	// повторная регистрация с тем же username
	dup := user
	dup.Email = "second@example.com"
	_, err = storage.RegisterUser(context.Background(), dup)
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	// повторная регистрация с той же почтой
	dup = user
	dup.Username = "seconduser"
	_, err = storage.RegisterUser(context.Background(), dup)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestStorage_RemoveUser_CascadesTasks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := uuid.New().String()
	factory.CreateUser(t, userUID, "testuser", "test@example.com", "hashedpassword")
	taskID := factory.CreateTask(t, "Buy milk", "2 liters",
		time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		models.PriorityLow, models.StatusPending, nil, "testuser", userUID)

	count, err := storage.RemoveUser(context.Background(), userUID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = storage.ReadTask(context.Background(), taskID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestStorage_UpdateTaskStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := uuid.New().String()
	factory.CreateUser(t, userUID, "testuser", "test@example.com", "hashedpassword")
	taskID := factory.CreateTask(t, "Write report", "Q1 numbers",
		time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		models.PriorityHigh, models.StatusPending, nil, "testuser", userUID)

	now := time.Now().UTC()
	count, err := storage.UpdateTaskStatus(context.Background(), taskID, models.StatusCompleted, &now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := storage.ReadTask(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, now, *got.CompletedAt, time.Second)

	count, err = storage.UpdateTaskStatus(context.Background(), taskID, models.StatusPending, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err = storage.ReadTask(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
}
