package prize

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fortune/internal/repositories/prize Repository

import (
	"context"

	"github.com/KirkDiggler/fortune/internal/models"
)

// Repository defines the interface for prize persistence
type Repository interface {
	// ListPrizes returns prizes ordered by position, then id
	ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error)

	// GetPrize retrieves a prize by ID
	GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error)

	// CreatePrize stores a new prize and assigns its ID
	CreatePrize(ctx context.Context, input *CreatePrizeInput) (*models.Prize, error)

	// SavePrize overwrites an existing prize
	SavePrize(ctx context.Context, input *SavePrizeInput) error

	// DeletePrize removes a prize
	DeletePrize(ctx context.Context, input *DeletePrizeInput) error
}
