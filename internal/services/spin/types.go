package spin

import (
	"time"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/uuid"
	"github.com/KirkDiggler/fortune/internal/draw"
	"github.com/KirkDiggler/fortune/internal/models"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	spinRepo "github.com/KirkDiggler/fortune/internal/repositories/spin"
	"go.uber.org/zap"
)

const (
	// FallbackIcon and FallbackColor describe a recorded prize that has
	// since been deleted
	FallbackIcon  = "🎁"
	FallbackColor = "#ffd700"
)

// Config holds configuration for the spin service
type Config struct {
	// Repository dependencies
	PrizeRepo prizeRepo.Repository
	SpinRepo  spinRepo.Repository

	// Service dependencies
	Drawer        draw.Drawer
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional
	Notifier Notifier
	Logger   *zap.Logger
}

type SpinInput struct {
	// User is the validated principal from the init data
	User *models.TelegramUser

	// Attributes are the remaining init data fields, stored with the record
	Attributes map[string]string
}

type SpinOutput struct {
	Result *models.PrizeResult
	Spin   *models.Spin
}

type CheckStatusInput struct {
	UserID int64
}

type CheckStatusOutput struct {
	HasPlayed bool

	// Set when HasPlayed
	Result   *models.PrizeResult
	PlayedAt time.Time
}

type ListResultsInput struct {
}

type ListResultsOutput struct {
	Spins []*models.Spin
}

type SummarizeInput struct {
}

// PrizeCount is the number of spins that landed on one prize
type PrizeCount struct {
	PrizeID   int64
	PrizeText string
	Count     int
}

type SummarizeOutput struct {
	Total int

	// Most frequent first
	Prizes []*PrizeCount
}

type ResetUserInput struct {
	UserID int64
}

type ResetUserOutput struct {
}

type ResetInput struct {
	// RequestedBy is the admin id, for the log
	RequestedBy int64
}

type ResetOutput struct {
	Deleted int64
}
