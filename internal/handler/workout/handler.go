package workout

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/handler/middleware"
	"workout-tracker/internal/handler/response"
	repo "workout-tracker/internal/repository/interfaces"
	useruc "workout-tracker/internal/usecase/user"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// Handler обрабатывает HTTP-запросы, связанные с тренировками.
//
// Транспортный слой сам разрешает вызывающего пользователя по токену
// и передаёт его usecase-слою явным аргументом.
type Handler struct {
	workouts workoutuc.Service
	users    useruc.Service
}

// NewHandler создаёт новый WorkoutHandler.
func NewHandler(workouts workoutuc.Service, users useruc.Service) *Handler {
	return &Handler{
		workouts: workouts,
		users:    users,
	}
}

// resolveCaller разрешает текущего пользователя по данным из контекста запроса.
// Возвращает nil, если запрос не аутентифицирован или пользователь не найден.
func (h *Handler) resolveCaller(c *gin.Context) *userdomain.User {
	idStr := c.GetString(middleware.ContextUserIDKey)
	if idStr == "" {
		return nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	caller, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Printf("failed to resolve caller: user_id=%s err=%v", idStr, err)
		}
		return nil
	}
	return caller
}

// Create создаёт тренировку с планами упражнений.
func (h *Handler) Create(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	status := domain.Status(req.Status)
	if !status.IsValid() {
		response.Error(c, http.StatusBadRequest, "invalid_status",
			fmt.Sprintf("Недопустимый статус тренировки: %s", req.Status), nil)
		return
	}

	w, err := h.workouts.Create(c.Request.Context(), caller, workoutuc.CreateInput{
		Name:      req.Name,
		DateTime:  req.DateTime,
		Status:    status,
		Comment:   req.Comment,
		Exercises: toPlanInputs(req.Exercises),
	})
	if err != nil {
		h.writeServiceError(c, "Create", err)
		return
	}

	c.JSON(http.StatusCreated, toWorkoutResponse(w))
}

// Update полностью обновляет тренировку, целиком заменяя набор планов.
func (h *Handler) Update(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректный идентификатор тренировки", nil)
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	status := domain.Status(req.Status)
	if !status.IsValid() {
		response.Error(c, http.StatusBadRequest, "invalid_status",
			fmt.Sprintf("Недопустимый статус тренировки: %s", req.Status), nil)
		return
	}

	w, err := h.workouts.Update(c.Request.Context(), caller, workoutuc.UpdateInput{
		ID:        id,
		Name:      req.Name,
		DateTime:  req.DateTime,
		Status:    status,
		Comment:   req.Comment,
		Exercises: toPlanInputs(req.Exercises),
	})
	if err != nil {
		h.writeServiceError(c, "Update", err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(w))
}

// Delete удаляет тренировку и возвращает снимок удалённого состояния.
func (h *Handler) Delete(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректный идентификатор тренировки", nil)
		return
	}

	w, err := h.workouts.Delete(c.Request.Context(), caller, id)
	if err != nil {
		h.writeServiceError(c, "Delete", err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(w))
}

// Schedule переносит тренировку: меняет только дату и время.
func (h *Handler) Schedule(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректный идентификатор тренировки", nil)
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	w, err := h.workouts.Schedule(c.Request.Context(), caller, id, req.DateTime)
	if err != nil {
		h.writeServiceError(c, "Schedule", err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(w))
}

// List возвращает тренировки текущего пользователя.
// С query-параметром status возвращает только тренировки с этим статусом,
// отсортированные по дате проведения по убыванию.
func (h *Handler) List(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	var (
		workouts []*domain.Workout
		err      error
	)

	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.Status(statusParam)
		if !status.IsValid() {
			response.Error(c, http.StatusBadRequest, "invalid_status",
				fmt.Sprintf("Недопустимый статус тренировки: %s", statusParam), nil)
			return
		}
		workouts, err = h.workouts.ListByStatus(c.Request.Context(), caller, status)
	} else {
		workouts, err = h.workouts.List(c.Request.Context(), caller)
	}

	if err != nil {
		h.writeServiceError(c, "List", err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponses(workouts))
}

// Report возвращает текстовый отчёт по тренировкам текущего пользователя.
func (h *Handler) Report(c *gin.Context) {
	caller := h.resolveCaller(c)
	if caller == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	report, err := h.workouts.Report(c.Request.Context(), caller)
	if err != nil {
		h.writeServiceError(c, "Report", err)
		return
	}

	c.String(http.StatusOK, report)
}

// writeServiceError маппит классифицированные ошибки usecase-слоя
// в HTTP-ответы: отсутствующие сущности — 404, чужая тренировка — 400.
func (h *Handler) writeServiceError(c *gin.Context, op string, err error) {
	var (
		workoutNotFound  *workoutuc.WorkoutNotFoundError
		exerciseNotFound *workoutuc.ExerciseNotFoundError
		unauthorized     *workoutuc.UnauthorizedAccessError
	)

	switch {
	case errors.As(err, &workoutNotFound):
		log.Printf("workout not found in %s: workout_id=%d", op, workoutNotFound.ID)
		response.Error(c, http.StatusNotFound, "workout_not_found",
			fmt.Sprintf("Тренировка с идентификатором %d не найдена", workoutNotFound.ID), nil)
	case errors.As(err, &exerciseNotFound):
		log.Printf("exercise not found in %s: exercise_id=%d", op, exerciseNotFound.ID)
		response.Error(c, http.StatusNotFound, "exercise_not_found",
			fmt.Sprintf("Упражнение с идентификатором %d не найдено", exerciseNotFound.ID), nil)
	case errors.As(err, &unauthorized):
		log.Printf("unauthorized workout access in %s: workout_id=%d", op, unauthorized.ID)
		response.Error(c, http.StatusBadRequest, "unauthorized_workout_access",
			fmt.Sprintf("Пользователь не вправе изменять тренировку с идентификатором %d", unauthorized.ID), nil)
	case errors.Is(err, workoutuc.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
	default:
		log.Printf("internal error in %s: err=%v", op, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
	}
}
