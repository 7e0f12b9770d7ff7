package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/gin-gonic/gin"
)

// statusOf maps service errors onto HTTP status codes and client messages.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrorInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, common.ErrorInactiveUser):
		return http.StatusForbidden, "user is inactive"
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, common.ErrorInvalidArgument):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func abortWithError(c *gin.Context, err error) {
	code, msg := statusOf(err)
	if code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}
