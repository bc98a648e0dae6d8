package prize

import (
	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/models"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	"go.uber.org/zap"
)

// Config holds configuration for the prize service
type Config struct {
	PrizeRepo prizeRepo.Repository
	Clock     clock.Clock

	// Optional
	Logger *zap.Logger
}

type ListPrizesInput struct {
	ActiveOnly bool
}

type ListPrizesOutput struct {
	Prizes []*models.Prize
}

type CreatePrizeInput struct {
	Text  string
	Icon  string
	Color string

	// Zero means 1
	Position int
}

type CreatePrizeOutput struct {
	Prize *models.Prize
}

// UpdatePrizeInput is a partial update. Nil fields are left unchanged.
type UpdatePrizeInput struct {
	PrizeID  int64
	Text     *string
	Icon     *string
	Color    *string
	Position *int
	Active   *bool
}

type UpdatePrizeOutput struct {
	Prize *models.Prize
}

type DeletePrizeInput struct {
	PrizeID int64
}

type DeletePrizeOutput struct {
	// Prize is what was removed
	Prize *models.Prize
}

type ReorderItem struct {
	PrizeID  int64 `json:"id"`
	Position int   `json:"position"`
}

type ReorderPrizesInput struct {
	Items []ReorderItem
}

type ReorderPrizesOutput struct {
	Updated int
}

type SeedDefaultsOutput struct {
	// Seeded is zero when prizes already existed
	Seeded int
}
