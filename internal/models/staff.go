package models

import "time"

// Role is what a staff member may do in the admin panel
type Role string

const (
	// RoleAdmin may change prizes, results and staff
	RoleAdmin Role = "admin"

	// RoleViewer may only read results
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// StaffMember grants a Telegram user access to the admin panel.
// There is at most one per UserID.
type StaffMember struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"tg_user_id"`

	Username  string `json:"tg_username,omitempty"`
	FirstName string `json:"tg_first_name,omitempty"`

	Role Role `json:"role"`

	// AddedBy is the admin who granted access. Zero for members seeded from
	// configuration.
	AddedBy int64 `json:"added_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AuditEntry records one admin action
type AuditEntry struct {
	ID        int64     `json:"id"`
	AdminID   int64     `json:"admin_id"`
	AdminName string    `json:"admin_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
