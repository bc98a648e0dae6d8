package prize

import (
	"errors"

	"github.com/KirkDiggler/fortune/internal/models"
)

// ErrPrizeNotFound is returned when a prize is not found
var ErrPrizeNotFound = errors.New("prize not found")

type ListPrizesInput struct {
	// ActiveOnly limits the result to prizes eligible for the draw
	ActiveOnly bool
}

type ListPrizesOutput struct {
	Prizes []*models.Prize
}

type GetPrizeInput struct {
	PrizeID int64
}

// CreatePrizeInput carries a prize without an ID
type CreatePrizeInput struct {
	Prize *models.Prize
}

type SavePrizeInput struct {
	Prize *models.Prize
}

type DeletePrizeInput struct {
	PrizeID int64
}
