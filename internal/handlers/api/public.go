package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/KirkDiggler/fortune/internal/services/prize"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      *models.TelegramUser `json:"user"`
	IsAdmin   bool                 `json:"is_admin"`
	IsViewer  bool                 `json:"is_viewer"`
}

type checkResponse struct {
	HasPlayed bool                `json:"has_played"`
	Prize     *models.PrizeResult `json:"prize"`
}

// CreateSession exchanges signed init data for a bearer token. The body is
// {"init_data": "..."}; the header form is accepted too.
func (h *Handler) CreateSession(c *gin.Context) {
	var body struct {
		InitData string `json:"init_data"`
	}
	raw := c.GetHeader(InitDataHeader)
	if raw == "" {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "init_data is required"})
			return
		}
		raw = body.InitData
	}
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	payload, err := h.validator.Validate(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if payload.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in init data"})
		return
	}

	signed, expires, err := h.tokens.Issue(payload.User)
	if err != nil {
		h.respondError(c, err)
		return
	}

	isAdmin, err := h.access.IsAdmin(c.Request.Context(), payload.User.ID)
	if err != nil {
		h.roleLookupFailed(c, payload.User.ID, err)
		return
	}
	isViewer, err := h.access.IsViewer(c.Request.Context(), payload.User.ID)
	if err != nil {
		h.roleLookupFailed(c, payload.User.ID, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Token:     signed,
		ExpiresAt: expires,
		User:      payload.User,
		IsAdmin:   isAdmin,
		IsViewer:  isViewer,
	})
}

// ListActivePrizes returns the wheel sectors in display order
func (h *Handler) ListActivePrizes(c *gin.Context) {
	out, err := h.prizeService.ListPrizes(c.Request.Context(), &prize.ListPrizesInput{ActiveOnly: true})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Prizes)
}

func (h *Handler) Spin(c *gin.Context) {
	user, _ := currentUser(c)

	out, err := h.spinService.Spin(c.Request.Context(), &spin.SpinInput{
		User:       user,
		Attributes: currentAttributes(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Result)
}

func (h *Handler) CheckSelf(c *gin.Context) {
	user, _ := currentUser(c)
	h.check(c, user.ID)
}

func (h *Handler) CheckUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	h.check(c, userID)
}

func (h *Handler) check(c *gin.Context, userID int64) {
	out, err := h.spinService.CheckStatus(c.Request.Context(), &spin.CheckStatusInput{UserID: userID})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkResponse{
		HasPlayed: out.HasPlayed,
		Prize:     out.Result,
	})
}
