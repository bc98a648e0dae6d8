package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/fortune/internal/services/access"
	"github.com/KirkDiggler/fortune/internal/services/prize"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createPrizeRequest struct {
	Text     string `json:"text"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

type updatePrizeRequest struct {
	Text     *string `json:"text"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color"`
	Position *int    `json:"position"`
	Active   *bool   `json:"is_active"`
}

var exportHeader = []string{"ID", "Telegram ID", "Username", "First name", "Last name", "Prize ID", "Prize", "Date"}

func (h *Handler) ListResults(c *gin.Context) {
	out, err := h.spinService.ListResults(c.Request.Context(), &spin.ListResultsInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Spins)
}

// ExportResults streams every result as CSV, newest first
func (h *Handler) ExportResults(c *gin.Context) {
	out, err := h.spinService.ListResults(c.Request.Context(), &spin.ListResultsInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=results.csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		h.log.Error("failed to write csv header", zap.Error(err))
		return
	}
	for _, s := range out.Spins {
		record := []string{
			s.ID,
			strconv.FormatInt(s.UserID, 10),
			s.Username,
			s.FirstName,
			s.LastName,
			strconv.FormatInt(s.PrizeID, 10),
			s.PrizeText,
			s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			h.log.Error("failed to write csv row", zap.Error(err))
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.log.Error("failed to flush csv", zap.Error(err))
	}
}

// DeleteResult lets one user spin again
func (h *Handler) DeleteResult(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if _, err := h.spinService.ResetUser(c.Request.Context(), &spin.ResetUserInput{UserID: userID}); err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionDeleteSpin, fmt.Sprintf("user=%d", userID))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reset clears every result
func (h *Handler) Reset(c *gin.Context) {
	admin, _ := currentUser(c)

	out, err := h.spinService.Reset(c.Request.Context(), &spin.ResetInput{RequestedBy: admin.ID})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionResetAll, fmt.Sprintf("%d records", out.Deleted))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "deleted": out.Deleted})
}

func (h *Handler) ListAllPrizes(c *gin.Context) {
	out, err := h.prizeService.ListPrizes(c.Request.Context(), &prize.ListPrizesInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Prizes)
}

func (h *Handler) CreatePrize(c *gin.Context) {
	var req createPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := h.prizeService.CreatePrize(c.Request.Context(), &prize.CreatePrizeInput{
		Text:     req.Text,
		Icon:     req.Icon,
		Color:    req.Color,
		Position: req.Position,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionCreatePrize, out.Prize.Icon+" "+out.Prize.Text)
	c.JSON(http.StatusCreated, out.Prize)
}

func (h *Handler) UpdatePrize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prize id"})
		return
	}

	var req updatePrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := h.prizeService.UpdatePrize(c.Request.Context(), &prize.UpdatePrizeInput{
		PrizeID:  id,
		Text:     req.Text,
		Icon:     req.Icon,
		Color:    req.Color,
		Position: req.Position,
		Active:   req.Active,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionUpdatePrize, fmt.Sprintf("#%d: %s", out.Prize.ID, out.Prize.Text))
	c.JSON(http.StatusOK, out.Prize)
}

func (h *Handler) DeletePrize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prize id"})
		return
	}

	out, err := h.prizeService.DeletePrize(c.Request.Context(), &prize.DeletePrizeInput{PrizeID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionDeletePrize, fmt.Sprintf("#%d: %s", out.Prize.ID, out.Prize.Text))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReorderPrizes takes [{"id": 1, "position": 3}, ...]
func (h *Handler) ReorderPrizes(c *gin.Context) {
	var items []prize.ReorderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := h.prizeService.ReorderPrizes(c.Request.Context(), &prize.ReorderPrizesInput{Items: items})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionReorderPrizes, fmt.Sprintf("%d prizes", len(items)))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "updated": out.Updated})
}

// audit records an admin action. A failed write is logged and the request
// still succeeds.
func (h *Handler) audit(c *gin.Context, action, details string) {
	admin, _ := currentUser(c)
	err := h.access.Record(c.Request.Context(), &access.RecordInput{
		Admin:   admin,
		Action:  action,
		Details: details,
	})
	if err != nil {
		h.log.Warn("failed to write audit entry", zap.String("action", action), zap.Error(err))
	}
}
