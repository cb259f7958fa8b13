package serviceutils

import (
	"net/http"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func ResponseError(c echo.Context, status int, message string, err error) error {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
		logger.ErrorErr(c.Request().Context(), err, "%s", message)
	}
	return c.JSON(status, resp)
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	if domain.IsValidation(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
