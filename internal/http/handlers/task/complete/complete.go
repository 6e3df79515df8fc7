// Package complete реализует HTTP-обработчик для отметки задачи выполненной.
//
// Переход идемпотентно защищён на уровне бизнес-логики: повторная попытка
// завершить уже выполненную задачу возвращает конфликт.
package complete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/http/response"
	"github.com/magabrotheeeer/task-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// Handler обрабатывает запросы на завершение задачи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики завершения задачи.
type Service interface {
	MarkComplete(ctx context.Context, id int, userUID string) (*models.Task, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить задачу выполненной
// @Description Переводит задачу текущего пользователя в статус Completed и фиксирует дату завершения.
// @Tags Tasks
// @Produce  json
// @Param id path int true "ID задачи"
// @Success 200 {object} map[string]any "Обновлённая задача"
// @Failure 403 {object} response.ErrorResponse "Задача принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Задача не найдена"
// @Failure 409 {object} response.ErrorResponse "Задача уже выполнена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при завершении задачи"
// @Security BearerAuth
// @Router /tasks/{id}/complete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.complete"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.MarkComplete(r.Context(), id, userUID)
	if err != nil {
		log.Error("failed to complete task", sl.Err(err))
		if status, body := response.DomainError(err); status != 0 {
			w.WriteHeader(status)
			render.JSON(w, r, body)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not complete task"))
		return
	}

	log.Info("success to complete task", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"task": res,
	}))
}
