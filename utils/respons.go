package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bistro-pos/domain"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondDomainError memetakan jenis error domain ke status HTTP.
// Error repository yang tidak dikenali lewat sebagai 500 apa adanya.
func RespondDomainError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	var invalidTransition *domain.InvalidTransitionError
	var invariant *domain.InvariantViolationError

	switch {
	case errors.As(err, &notFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &invalidTransition):
		RespondError(c, http.StatusConflict, err)
	case errors.As(err, &invariant):
		RespondError(c, http.StatusConflict, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
