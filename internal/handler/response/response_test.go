package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/handler/response"
)

func TestError_WritesEnvelopeAndAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "workout_not_found", "Workout not found with id: 123", nil)
		// После отправки ошибки обработчик прерван и этот статус не применяется
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error response.ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusNotFound, body.Error.Status)
	require.Equal(t, "workout_not_found", body.Error.Code)
	require.Equal(t, "Workout not found with id: 123", body.Error.Message)
	require.False(t, body.Error.Timestamp.IsZero())
}
