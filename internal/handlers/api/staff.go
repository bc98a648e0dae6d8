package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/KirkDiggler/fortune/internal/services/access"
	"github.com/gin-gonic/gin"
)

type addStaffRequest struct {
	UserID int64       `json:"tg_user_id"`
	Role   models.Role `json:"role"`
}

// ListStaff returns everyone with panel access, oldest first
func (h *Handler) ListStaff(c *gin.Context) {
	out, err := h.access.ListMembers(c.Request.Context(), &access.ListMembersInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	members := out.Members
	if members == nil {
		members = []*models.StaffMember{}
	}
	c.JSON(http.StatusOK, members)
}

// AddStaff grants access. Role defaults to admin.
func (h *Handler) AddStaff(c *gin.Context) {
	var req addStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	admin, _ := currentUser(c)
	out, err := h.access.AddMember(c.Request.Context(), &access.AddMemberInput{
		UserID:  req.UserID,
		Role:    req.Role,
		AddedBy: admin.ID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionAddUser, fmt.Sprintf("tg_id=%d, role=%s", out.Member.UserID, out.Member.Role))
	c.JSON(http.StatusCreated, out.Member)
}

// RemoveStaff revokes access by staff record id
func (h *Handler) RemoveStaff(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	out, err := h.access.RemoveMember(c.Request.Context(), &access.RemoveMemberInput{MemberID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.audit(c, access.ActionDeleteUser, fmt.Sprintf("tg_id=%d, role=%s", out.Member.UserID, out.Member.Role))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListAudit returns recent admin actions, newest first
func (h *Handler) ListAudit(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	out, err := h.access.ListAudit(c.Request.Context(), &access.ListAuditInput{Limit: limit})
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries := out.Entries
	if entries == nil {
		entries = []*models.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
