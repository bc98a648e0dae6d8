package access

import (
	"context"
)

// Service decides who may use the admin panel and keeps the log of what
// they did there
type Service interface {
	// IsAdmin reports whether the user may change prizes, results and staff
	IsAdmin(ctx context.Context, userID int64) (bool, error)

	// IsViewer reports whether the user may read results. Admins are viewers.
	IsViewer(ctx context.Context, userID int64) (bool, error)

	// SeedMembers grants access to the configured ids that have none yet
	SeedMembers(ctx context.Context, input *SeedMembersInput) (*SeedMembersOutput, error)

	// ListMembers returns every staff member, oldest first
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// AddMember grants a user access
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember revokes a grant
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// Record appends an admin action to the audit log
	Record(ctx context.Context, input *RecordInput) error

	// ListAudit returns recent admin actions, newest first
	ListAudit(ctx context.Context, input *ListAuditInput) (*ListAuditOutput, error)
}
