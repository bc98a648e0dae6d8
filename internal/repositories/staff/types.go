package staff

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/fortune/internal/models"
)

var (
	// ErrMemberNotFound is returned when no grant matches
	ErrMemberNotFound = errors.New("staff member not found")

	// ErrMemberExists is returned when the user already holds a grant
	ErrMemberExists = errors.New("staff member already exists")
)

type CreateMemberInput struct {
	// Member.ID is assigned by the repository
	Member *models.StaffMember
}

type GetMemberByUserInput struct {
	UserID int64
}

type ListMembersInput struct {
}

type ListMembersOutput struct {
	Members []*models.StaffMember
}

type DeleteMemberInput struct {
	MemberID int64
}

func validateMember(input *CreateMemberInput) error {
	if input == nil || input.Member == nil {
		return errors.New("input and member cannot be nil")
	}
	if input.Member.UserID <= 0 {
		return errors.New("member user ID must be positive")
	}
	if !input.Member.Role.Valid() {
		return errors.New("member role must be admin or viewer")
	}
	return nil
}

func sortByCreated(members []*models.StaffMember) {
	sort.SliceStable(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].ID < members[j].ID
	})
}
