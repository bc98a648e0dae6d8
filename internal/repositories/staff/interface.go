package staff

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fortune/internal/repositories/staff Repository

import (
	"context"

	"github.com/KirkDiggler/fortune/internal/models"
)

// Repository defines the interface for admin panel access grants.
// A Telegram user holds at most one grant.
type Repository interface {
	// CreateMember stores a new grant, or returns ErrMemberExists
	CreateMember(ctx context.Context, input *CreateMemberInput) (*models.StaffMember, error)

	// GetMemberByUser finds the grant for a Telegram user
	GetMemberByUser(ctx context.Context, input *GetMemberByUserInput) (*models.StaffMember, error)

	// ListMembers returns every grant, oldest first
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// DeleteMember removes a grant and returns what was removed
	DeleteMember(ctx context.Context, input *DeleteMemberInput) (*models.StaffMember, error)
}
