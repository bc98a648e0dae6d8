package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	InitDataHeader = "X-Telegram-Init-Data"
	InitDataQuery  = "init_data"

	ctxUser       = "user"
	ctxAttributes = "init_attributes"
)

func (h *Handler) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.log.Error("panic in handler", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

// requestLog writes one line per request. Query strings are left out since
// they may carry init data.
func (h *Handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if user, ok := currentUser(c); ok {
			fields = append(fields, zap.Int64("user_id", user.ID))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			h.log.Warn("request", fields...)
			return
		}
		h.log.Debug("request", fields...)
	}
}

func (h *Handler) cors() gin.HandlerFunc {
	origin := h.webAppURL
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+InitDataHeader)
		if origin != "*" {
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authenticate accepts signed init data (header or query parameter) or a
// bearer session token and stores the principal on the context
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(InitDataHeader)
		if raw == "" {
			raw = c.Query(InitDataQuery)
		}

		if raw != "" {
			payload, err := h.validator.Validate(raw)
			if err != nil {
				h.log.Info("init data rejected", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			if payload.User == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found in init data"})
				return
			}

			c.Set(ctxUser, payload.User)
			c.Set(ctxAttributes, payload.Attributes())
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || h.tokens == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		claims, err := h.tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ctxUser, claims.User())
		c.Next()
	}
}

func (h *Handler) requireViewer() gin.HandlerFunc {
	return h.requireRole(h.access.IsViewer)
}

func (h *Handler) requireAdmin() gin.HandlerFunc {
	return h.requireRole(h.access.IsAdmin)
}

func (h *Handler) requireRole(allowed func(ctx context.Context, userID int64) (bool, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		ok, err := allowed(c.Request.Context(), user.ID)
		if err != nil {
			h.roleLookupFailed(c, user.ID, err)
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

func (h *Handler) roleLookupFailed(c *gin.Context, userID int64, err error) {
	h.log.Error("role lookup failed", zap.Int64("user_id", userID), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable, try again"})
}

func currentUser(c *gin.Context) (*models.TelegramUser, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.TelegramUser)
	return user, ok && user != nil
}

func currentAttributes(c *gin.Context) map[string]string {
	v, ok := c.Get(ctxAttributes)
	if !ok {
		return nil
	}
	attrs, _ := v.(map[string]string)
	return attrs
}
