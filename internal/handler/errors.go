package handler

import (
	"errors"
	"net/http"

	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/gin-gonic/gin"
)

// Error kinds of the response taxonomy. Every failure body carries a
// machine-readable kind alongside the human-readable message.
const (
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindValidation   = "validation_error"
	KindInternal     = "internal_error"
)

func writeError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{
		"kind":  kind,
		"error": message,
	})
}

// writeServiceError translates service sentinels into HTTP responses.
// Unknown errors answer 500 with a generic message; internal details are
// never exposed.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, service.ErrUsernameAlreadyExists),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrNameAlreadyExists),
		errors.Is(err, service.ErrUniqueIDAlreadyExists):
		writeError(c, http.StatusConflict, KindConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, KindUnauthorized, err.Error())
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidState):
		writeError(c, http.StatusBadRequest, KindValidation, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, KindInternal, "Unexpected error")
	}
}
