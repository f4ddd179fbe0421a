// Package apierr maps store error kinds onto HTTP responses.
package apierr

import (
	"context"
	"net/http"

	"artivisual-app/internal/domain/errs"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// AuthFailedMessage is the only detail a failed login or registration reveals.
const AuthFailedMessage = "Invalid credentials, please try again"

func Status(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStaleSession):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func Respond(c *gin.Context, err error) {
	status := Status(err)
	msg := err.Error()
	switch status {
	case http.StatusUnauthorized:
		msg = AuthFailedMessage
	case http.StatusInternalServerError:
		msg = "Internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
