package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody описывает стандартный формат ошибки API.
// Каждая классифицированная ошибка несёт числовой статус, машиночитаемый
// код, человекочитаемое сообщение и отметку времени.
type ErrorBody struct {
	Status    int         `json:"status"`
	Code      string      `json:"code"`
	Message   string      `json:"message,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Error отправляет JSON-ответ с ошибкой в едином формате.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": ErrorBody{
			Status:    status,
			Code:      code,
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC(),
		},
	})
}
