package audit

import (
	"errors"

	"github.com/KirkDiggler/fortune/internal/models"
)

// DefaultListLimit caps ListEntries when no limit is given
const DefaultListLimit = 500

type AppendEntryInput struct {
	Entry *models.AuditEntry
}

type ListEntriesInput struct {
	// Limit defaults to DefaultListLimit
	Limit int
}

type ListEntriesOutput struct {
	Entries []*models.AuditEntry
}

func validateEntry(input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}
	if input.Entry.AdminID == 0 {
		return errors.New("entry admin ID cannot be empty")
	}
	if input.Entry.Action == "" {
		return errors.New("entry action cannot be empty")
	}
	return nil
}

func listLimit(input *ListEntriesInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultListLimit
	}
	return input.Limit
}
