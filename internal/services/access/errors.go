package access

// AccessError represents an error from the access service
type AccessError string

func (e AccessError) Error() string {
	return string(e)
}

const (
	// ErrMemberNotFound is returned when no staff grant matches
	ErrMemberNotFound AccessError = "staff member not found"

	// ErrMemberExists is returned when the user already has access
	ErrMemberExists AccessError = "user already has access"

	// ErrInvalidRole is returned for a role other than admin or viewer
	ErrInvalidRole AccessError = "role must be admin or viewer"

	// ErrInvalidUser is returned for a missing or non-positive Telegram id
	ErrInvalidUser AccessError = "invalid Telegram user"

	// ErrLastAdmin is returned when removing the only remaining admin
	ErrLastAdmin AccessError = "cannot remove the last admin"

	ErrNilConfig    AccessError = "config cannot be nil"
	ErrNilStaffRepo AccessError = "staff repository cannot be nil"
	ErrNilAuditRepo AccessError = "audit repository cannot be nil"
	ErrNilClock     AccessError = "clock cannot be nil"
)
