package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/fortune/internal/common/uuid UUID

// UUID hands out record identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}

// Valid reports whether id parses as a UUID. Used to reject garbage record
// ids at the edge before they reach storage.
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
