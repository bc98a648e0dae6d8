package audit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fortune/internal/repositories/audit Repository

import (
	"context"

	"github.com/KirkDiggler/fortune/internal/models"
)

// Repository defines the interface for the admin action log
type Repository interface {
	// AppendEntry stores an entry and assigns its ID
	AppendEntry(ctx context.Context, input *AppendEntryInput) (*models.AuditEntry, error)

	// ListEntries returns the most recent entries, newest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)
}
