package spin

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fortune/internal/repositories/spin Repository

import (
	"context"

	"github.com/KirkDiggler/fortune/internal/models"
)

// Repository defines the interface for spin record persistence.
// Implementations must make InsertSpinIfAbsent a single atomic operation
// keyed on the user id.
type Repository interface {
	// InsertSpinIfAbsent stores the spin unless the user already has one
	InsertSpinIfAbsent(ctx context.Context, input *InsertSpinInput) (InsertOutcome, error)

	// GetSpin retrieves the spin for a user
	GetSpin(ctx context.Context, input *GetSpinInput) (*models.Spin, error)

	// ListSpins returns every spin, newest first
	ListSpins(ctx context.Context, input *ListSpinsInput) (*ListSpinsOutput, error)

	// DeleteSpin removes one user's spin
	DeleteSpin(ctx context.Context, input *DeleteSpinInput) error

	// DeleteAllSpins removes every spin
	DeleteAllSpins(ctx context.Context, input *DeleteAllSpinsInput) (*DeleteAllSpinsOutput, error)
}
