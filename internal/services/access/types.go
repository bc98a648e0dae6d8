package access

import (
	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/models"
	auditRepo "github.com/KirkDiggler/fortune/internal/repositories/audit"
	staffRepo "github.com/KirkDiggler/fortune/internal/repositories/staff"
	"go.uber.org/zap"
)

// Audit actions
const (
	ActionDeleteSpin    = "delete_spin"
	ActionResetAll      = "reset_all"
	ActionCreatePrize   = "create_prize"
	ActionUpdatePrize   = "update_prize"
	ActionDeletePrize   = "delete_prize"
	ActionReorderPrizes = "reorder_prizes"
	ActionAddUser       = "add_user"
	ActionDeleteUser    = "delete_user"
)

// Config holds configuration for the access service
type Config struct {
	StaffRepo staffRepo.Repository
	AuditRepo auditRepo.Repository
	Clock     clock.Clock

	// Optional
	Logger *zap.Logger
}

type SeedMembersInput struct {
	AdminIDs  []int64
	ViewerIDs []int64
}

type SeedMembersOutput struct {
	// Seeded counts the grants created; existing ones are left alone
	Seeded int
}

type ListMembersInput struct {
}

type ListMembersOutput struct {
	Members []*models.StaffMember
}

type AddMemberInput struct {
	UserID int64
	Role   models.Role

	// AddedBy is the admin granting access
	AddedBy int64
}

type AddMemberOutput struct {
	Member *models.StaffMember
}

type RemoveMemberInput struct {
	MemberID int64
}

type RemoveMemberOutput struct {
	Member *models.StaffMember
}

type RecordInput struct {
	// Admin is the principal who acted
	Admin *models.TelegramUser

	Action  string
	Details string
}

type ListAuditInput struct {
	// Limit defaults to, and is capped at, 500
	Limit int
}

type ListAuditOutput struct {
	Entries []*models.AuditEntry
}
