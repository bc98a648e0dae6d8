package spin

import (
	"errors"

	"github.com/KirkDiggler/fortune/internal/models"
)

// ErrSpinNotFound is returned when a user has no spin
var ErrSpinNotFound = errors.New("spin not found")

// InsertOutcome reports which way a conditional insert went. Storage
// failures are reported through the error instead.
type InsertOutcome int

const (
	InsertOutcomeUnknown InsertOutcome = iota
	InsertOutcomeInserted
	InsertOutcomeAlreadyExists
)

func (o InsertOutcome) String() string {
	switch o {
	case InsertOutcomeInserted:
		return "inserted"
	case InsertOutcomeAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

type InsertSpinInput struct {
	Spin *models.Spin
}

type GetSpinInput struct {
	UserID int64
}

type ListSpinsInput struct {
}

type ListSpinsOutput struct {
	Spins []*models.Spin
}

type DeleteSpinInput struct {
	UserID int64
}

type DeleteAllSpinsInput struct {
}

type DeleteAllSpinsOutput struct {
	// Deleted is the number of records removed
	Deleted int64
}

func validateSpin(input *InsertSpinInput) error {
	if input == nil || input.Spin == nil {
		return errors.New("input and spin cannot be nil")
	}
	if input.Spin.ID == "" {
		return errors.New("spin ID cannot be empty")
	}
	if input.Spin.UserID == 0 {
		return errors.New("spin user ID cannot be empty")
	}
	return nil
}
