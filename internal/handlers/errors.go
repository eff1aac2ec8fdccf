package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

// statusFor maps service errors onto HTTP status codes: bad input is 400,
// missing records 404, state conflicts 409, everything else 500.
func statusFor(err error) int {
	switch {
	case services.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case services.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, common.NewErrorResponse(message, nil, status))
}
