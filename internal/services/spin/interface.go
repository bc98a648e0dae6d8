package spin

import (
	"context"

	"github.com/KirkDiggler/fortune/internal/models"
)

// Service assigns prizes and administers the recorded results
type Service interface {
	// Spin draws a prize for a user who has not played yet
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// CheckStatus reports whether a user has played and what they won
	CheckStatus(ctx context.Context, input *CheckStatusInput) (*CheckStatusOutput, error)

	// ListResults returns every recorded spin, newest first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)

	// Summarize counts recorded spins per prize
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)

	// ResetUser lets one user play again
	ResetUser(ctx context.Context, input *ResetUserInput) (*ResetUserOutput, error)

	// Reset clears every recorded spin
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/fortune/internal/services/spin Notifier

// Notifier is told about new spins and resets. Errors are logged and
// never fail the operation that triggered them.
type Notifier interface {
	NotifySpin(ctx context.Context, spin *models.Spin, prize *models.Prize) error
	NotifyReset(ctx context.Context, deleted int64) error
}

type nopNotifier struct{}

func (nopNotifier) NotifySpin(context.Context, *models.Spin, *models.Prize) error { return nil }

func (nopNotifier) NotifyReset(context.Context, int64) error { return nil }
