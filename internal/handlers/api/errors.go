package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/fortune/internal/services/access"
	"github.com/KirkDiggler/fortune/internal/services/prize"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to status codes. Anything unknown is a 500
// and the detail stays in the log.
func (h *Handler) respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, spin.ErrAlreadyPlayed):
		status, message = http.StatusConflict, "You have already tried your luck"
	case errors.Is(err, spin.ErrNoPrizesAvailable):
		status, message = http.StatusServiceUnavailable, "No prizes available"
	case errors.Is(err, spin.ErrStorageUnavailable):
		status, message = http.StatusServiceUnavailable, "Storage unavailable, try again"
	case errors.Is(err, spin.ErrResultNotFound):
		status, message = http.StatusNotFound, "Result not found"
	case errors.Is(err, spin.ErrInvalidUser):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, prize.ErrPrizeNotFound):
		status, message = http.StatusNotFound, "Prize not found"
	case errors.Is(err, prize.ErrInvalidPrize):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, prize.ErrTooManyActive), errors.Is(err, prize.ErrTooFewActive):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, access.ErrMemberExists):
		status, message = http.StatusConflict, "User already has access"
	case errors.Is(err, access.ErrMemberNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, access.ErrInvalidRole), errors.Is(err, access.ErrInvalidUser), errors.Is(err, access.ErrLastAdmin):
		status, message = http.StatusBadRequest, err.Error()
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, gin.H{"error": message})
}
