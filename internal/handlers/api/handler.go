package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/common/token"
	"github.com/KirkDiggler/fortune/internal/initdata"
	"github.com/KirkDiggler/fortune/internal/services/access"
	"github.com/KirkDiggler/fortune/internal/services/prize"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config holds the dependencies of the HTTP API
type Config struct {
	Validator    *initdata.Validator
	SpinService  spin.Service
	PrizeService prize.Service

	// Access decides who may read and who may change the results, and
	// keeps the audit log
	Access access.Service

	// Optional. Without it bearer tokens are refused and
	// POST /api/auth/session is not registered.
	Tokens *token.Issuer

	// Optional. Empty allows any origin.
	WebAppURL string

	Logger *zap.Logger
}

// Handler serves the mini app and admin endpoints
type Handler struct {
	validator    *initdata.Validator
	spinService  spin.Service
	prizeService prize.Service
	access       access.Service
	tokens       *token.Issuer
	webAppURL    string
	log          *zap.Logger
}

func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Validator == nil {
		return nil, errors.New("validator cannot be nil")
	}

	if cfg.SpinService == nil {
		return nil, errors.New("spin service cannot be nil")
	}

	if cfg.PrizeService == nil {
		return nil, errors.New("prize service cannot be nil")
	}

	if cfg.Access == nil {
		return nil, errors.New("access service cannot be nil")
	}

	return &Handler{
		validator:    cfg.Validator,
		spinService:  cfg.SpinService,
		prizeService: cfg.PrizeService,
		access:       cfg.Access,
		tokens:       cfg.Tokens,
		webAppURL:    cfg.WebAppURL,
		log:          logger.OrNop(cfg.Logger).Named("api"),
	}, nil
}

// Router builds the gin engine with every route registered
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(h.recovery(), h.requestLog(), h.cors())

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		if h.tokens != nil {
			api.POST("/auth/session", h.CreateSession)
		}

		authed := api.Group("")
		authed.Use(h.authenticate())
		{
			authed.GET("/prizes", h.ListActivePrizes)
			authed.POST("/spin", h.Spin)
			authed.GET("/check", h.CheckSelf)
			authed.GET("/check/:user_id", h.requireViewer(), h.CheckUser)
		}

		viewer := api.Group("/admin")
		viewer.Use(h.authenticate(), h.requireViewer())
		{
			viewer.GET("/results", h.ListResults)
			viewer.GET("/export", h.ExportResults)
			viewer.GET("/prizes", h.ListAllPrizes)
		}

		admin := api.Group("/admin")
		admin.Use(h.authenticate(), h.requireAdmin())
		{
			admin.DELETE("/results/:user_id", h.DeleteResult)
			admin.POST("/reset", h.Reset)
			admin.POST("/prizes", h.CreatePrize)
			admin.PUT("/prizes/reorder", h.ReorderPrizes)
			admin.PUT("/prizes/:id", h.UpdatePrize)
			admin.DELETE("/prizes/:id", h.DeletePrize)
			admin.GET("/users", h.ListStaff)
			admin.POST("/users", h.AddStaff)
			admin.DELETE("/users/:id", h.RemoveStaff)
			admin.GET("/audit", h.ListAudit)
		}
	}

	return router
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
