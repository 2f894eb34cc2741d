package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBindingError turns a gin binding failure into a 400. Field
// validation failures are listed per field; anything else (malformed JSON,
// wrong types) keeps the raw message.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = fmt.Sprintf("field %q failed on the %q rule", fe.Field(), fe.Tag())
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + strings.Join(details, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// respondServiceError maps a service error to an HTTP status. Known domain
// errors carry their message out; everything else becomes an opaque 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// requireUserID pulls the authenticated user from the context or aborts
// with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
