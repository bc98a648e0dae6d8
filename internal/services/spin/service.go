package spin

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/common/uuid"
	"github.com/KirkDiggler/fortune/internal/draw"
	"github.com/KirkDiggler/fortune/internal/models"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	spinRepo "github.com/KirkDiggler/fortune/internal/repositories/spin"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	prizeRepo     prizeRepo.Repository
	spinRepo      spinRepo.Repository
	drawer        draw.Drawer
	clock         clock.Clock
	uuidGenerator uuid.UUID
	notifier      Notifier
	log           *zap.Logger
}

// New creates a new spin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PrizeRepo == nil {
		return nil, ErrNilPrizeRepo
	}

	if cfg.SpinRepo == nil {
		return nil, ErrNilSpinRepo
	}

	if cfg.Drawer == nil {
		return nil, ErrNilDrawer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &service{
		prizeRepo:     cfg.PrizeRepo,
		spinRepo:      cfg.SpinRepo,
		drawer:        cfg.Drawer,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		notifier:      notifier,
		log:           logger.OrNop(cfg.Logger).Named("spin"),
	}, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// Spin reads the active prizes, draws one and records it with a conditional
// insert. The insert alone decides concurrent attempts for the same user.
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	if input == nil || input.User == nil || input.User.ID == 0 {
		return nil, ErrInvalidUser
	}
	user := input.User

	list, err := s.prizeRepo.ListPrizes(ctx, &prizeRepo.ListPrizesInput{ActiveOnly: true})
	if err != nil {
		s.log.Error("failed to list active prizes", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, unavailable(err)
	}

	if len(list.Prizes) == 0 {
		s.log.Warn("spin with no active prizes", zap.Int64("user_id", user.ID))
		return nil, ErrNoPrizesAvailable
	}

	idx, err := s.drawer.Pick(len(list.Prizes))
	if err != nil {
		return nil, fmt.Errorf("failed to draw prize: %w", err)
	}
	prize := list.Prizes[idx]

	record := &models.Spin{
		ID:         s.uuidGenerator.NewUUID(),
		UserID:     user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		PrizeID:    prize.ID,
		PrizeText:  prize.Text,
		Attributes: input.Attributes,
		CreatedAt:  s.clock.Now(),
	}

	outcome, err := s.spinRepo.InsertSpinIfAbsent(ctx, &spinRepo.InsertSpinInput{Spin: record})
	if err != nil {
		s.log.Error("failed to record spin", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, unavailable(err)
	}

	switch outcome {
	case spinRepo.InsertOutcomeInserted:
	case spinRepo.InsertOutcomeAlreadyExists:
		s.log.Info("repeat spin refused", zap.Int64("user_id", user.ID))
		return nil, ErrAlreadyPlayed
	default:
		return nil, unavailable(fmt.Errorf("unexpected insert outcome %s", outcome))
	}

	s.log.Info("prize assigned",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Int64("prize_id", prize.ID),
		zap.String("spin_id", record.ID),
	)

	if err := s.notifier.NotifySpin(ctx, record, prize); err != nil {
		s.log.Warn("failed to announce spin", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	return &SpinOutput{
		Result: models.ResultFor(prize),
		Spin:   record,
	}, nil
}

// CheckStatus returns the recorded snapshot. Icon and color come from the
// live prize when it still exists.
func (s *service) CheckStatus(ctx context.Context, input *CheckStatusInput) (*CheckStatusOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, ErrInvalidUser
	}

	record, err := s.spinRepo.GetSpin(ctx, &spinRepo.GetSpinInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, spinRepo.ErrSpinNotFound) {
			return &CheckStatusOutput{HasPlayed: false}, nil
		}
		return nil, unavailable(err)
	}

	result := &models.PrizeResult{
		PrizeID:    record.PrizeID,
		PrizeText:  record.PrizeText,
		PrizeIcon:  FallbackIcon,
		PrizeColor: FallbackColor,
	}

	prize, err := s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{PrizeID: record.PrizeID})
	switch {
	case err == nil:
		result.PrizeIcon = prize.Icon
		result.PrizeColor = prize.Color
	case errors.Is(err, prizeRepo.ErrPrizeNotFound):
	default:
		return nil, unavailable(err)
	}

	return &CheckStatusOutput{
		HasPlayed: true,
		Result:    result,
		PlayedAt:  record.CreatedAt,
	}, nil
}

func (s *service) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	out, err := s.spinRepo.ListSpins(ctx, &spinRepo.ListSpinsInput{})
	if err != nil {
		return nil, unavailable(err)
	}

	return &ListResultsOutput{Spins: out.Spins}, nil
}

func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	out, err := s.spinRepo.ListSpins(ctx, &spinRepo.ListSpinsInput{})
	if err != nil {
		return nil, unavailable(err)
	}

	byPrize := make(map[int64]*PrizeCount)
	for _, sp := range out.Spins {
		pc, ok := byPrize[sp.PrizeID]
		if !ok {
			pc = &PrizeCount{PrizeID: sp.PrizeID, PrizeText: sp.PrizeText}
			byPrize[sp.PrizeID] = pc
		}
		pc.Count++
	}

	counts := make([]*PrizeCount, 0, len(byPrize))
	for _, pc := range byPrize {
		counts = append(counts, pc)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].PrizeID < counts[j].PrizeID
	})

	return &SummarizeOutput{
		Total:  len(out.Spins),
		Prizes: counts,
	}, nil
}

func (s *service) ResetUser(ctx context.Context, input *ResetUserInput) (*ResetUserOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, ErrInvalidUser
	}

	if err := s.spinRepo.DeleteSpin(ctx, &spinRepo.DeleteSpinInput{UserID: input.UserID}); err != nil {
		if errors.Is(err, spinRepo.ErrSpinNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, unavailable(err)
	}

	s.log.Info("user result reset", zap.Int64("user_id", input.UserID))
	return &ResetUserOutput{}, nil
}

// Reset clears the whole identity to prize mapping
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	out, err := s.spinRepo.DeleteAllSpins(ctx, &spinRepo.DeleteAllSpinsInput{})
	if err != nil {
		s.log.Error("failed to reset results", zap.Error(err))
		return nil, unavailable(err)
	}

	var requestedBy int64
	if input != nil {
		requestedBy = input.RequestedBy
	}
	s.log.Info("all results reset", zap.Int64("deleted", out.Deleted), zap.Int64("requested_by", requestedBy))

	if err := s.notifier.NotifyReset(ctx, out.Deleted); err != nil {
		s.log.Warn("failed to announce reset", zap.Error(err))
	}

	return &ResetOutput{Deleted: out.Deleted}, nil
}
