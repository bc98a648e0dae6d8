package prize

import "context"

// Service manages the prizes on the wheel. It keeps the number of active
// prizes between models.MinActivePrizes and models.MaxActivePrizes.
type Service interface {
	// ListPrizes returns prizes ordered by position
	ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error)

	// CreatePrize adds a new active prize
	CreatePrize(ctx context.Context, input *CreatePrizeInput) (*CreatePrizeOutput, error)

	// UpdatePrize applies the non-nil fields of the input
	UpdatePrize(ctx context.Context, input *UpdatePrizeInput) (*UpdatePrizeOutput, error)

	// DeletePrize removes a prize
	DeletePrize(ctx context.Context, input *DeletePrizeInput) (*DeletePrizeOutput, error)

	// ReorderPrizes sets the position of several prizes at once
	ReorderPrizes(ctx context.Context, input *ReorderPrizesInput) (*ReorderPrizesOutput, error)

	// SeedDefaults stores the default prizes when there are none
	SeedDefaults(ctx context.Context) (*SeedDefaultsOutput, error)
}
