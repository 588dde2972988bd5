package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"idn-area/internal/domain"
	"idn-area/internal/http/middleware"
)

// ErrorResponse is the body of every failed request. Message is a list of
// violations for 400 and a single string otherwise.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    any    `json:"message"`
}

func respondError(c *gin.Context, status int, message any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Anything that is
// not a validation or not-found error is logged and reported as 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, domain.ValidationMessages(err))
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err,
		)
		respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
