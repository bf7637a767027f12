package exercise

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/handler/response"
	repo "workout-tracker/internal/repository/interfaces"
	exuc "workout-tracker/internal/usecase/exercise"
)

// Handler обрабатывает HTTP-запросы к справочнику упражнений.
type Handler struct {
	exercises exuc.Service
}

// NewHandler создаёт новый ExerciseHandler.
func NewHandler(exercises exuc.Service) *Handler {
	return &Handler{exercises: exercises}
}

// List возвращает все упражнения справочника.
func (h *Handler) List(c *gin.Context) {
	exercises, err := h.exercises.List(c.Request.Context())
	if err != nil {
		log.Printf("internal error in exercise List: err=%v", err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	result := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		result = append(result, ToExerciseResponse(e))
	}

	c.JSON(http.StatusOK, result)
}

// Get возвращает упражнение по идентификатору.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректный идентификатор упражнения", nil)
		return
	}

	ex, err := h.exercises.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Printf("exercise not found in Get: exercise_id=%d", id)
			response.Error(c, http.StatusNotFound, "exercise_not_found",
				fmt.Sprintf("Упражнение с идентификатором %d не найдено", id), nil)
			return
		}
		log.Printf("internal error in exercise Get: exercise_id=%d err=%v", id, err)
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		return
	}

	c.JSON(http.StatusOK, ToExerciseResponse(ex))
}
