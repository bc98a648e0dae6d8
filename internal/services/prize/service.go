package prize

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/models"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	prizeRepo prizeRepo.Repository
	clock     clock.Clock
	log       *zap.Logger
}

// New creates a new prize service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PrizeRepo == nil {
		return nil, ErrNilPrizeRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		prizeRepo: cfg.PrizeRepo,
		clock:     cfg.Clock,
		log:       logger.OrNop(cfg.Logger).Named("prize"),
	}, nil
}

func (s *service) ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error) {
	activeOnly := input != nil && input.ActiveOnly

	out, err := s.prizeRepo.ListPrizes(ctx, &prizeRepo.ListPrizesInput{ActiveOnly: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}

	return &ListPrizesOutput{Prizes: out.Prizes}, nil
}

func (s *service) activeCount(ctx context.Context) (int, error) {
	out, err := s.prizeRepo.ListPrizes(ctx, &prizeRepo.ListPrizesInput{ActiveOnly: true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active prizes: %w", err)
	}
	return len(out.Prizes), nil
}

func (s *service) getPrize(ctx context.Context, id int64) (*models.Prize, error) {
	p, err := s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{PrizeID: id})
	if err != nil {
		if errors.Is(err, prizeRepo.ErrPrizeNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to get prize: %w", err)
	}
	return p, nil
}

func (s *service) CreatePrize(ctx context.Context, input *CreatePrizeInput) (*CreatePrizeOutput, error) {
	if input == nil {
		return nil, ErrInvalidPrize
	}

	position := input.Position
	if position == 0 {
		position = models.MinPrizePosition
	}

	if err := validateText(input.Text); err != nil {
		return nil, err
	}
	if err := validateIcon(input.Icon); err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}
	if err := validatePosition(position); err != nil {
		return nil, err
	}

	active, err := s.activeCount(ctx)
	if err != nil {
		return nil, err
	}
	if active >= models.MaxActivePrizes {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManyActive, models.MaxActivePrizes)
	}

	now := s.clock.Now()
	p, err := s.prizeRepo.CreatePrize(ctx, &prizeRepo.CreatePrizeInput{
		Prize: &models.Prize{
			Text:      input.Text,
			Icon:      input.Icon,
			Color:     input.Color,
			Position:  position,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prize: %w", err)
	}

	s.log.Info("prize created", zap.Int64("prize_id", p.ID), zap.String("text", p.Text))
	return &CreatePrizeOutput{Prize: p}, nil
}

func (s *service) UpdatePrize(ctx context.Context, input *UpdatePrizeInput) (*UpdatePrizeOutput, error) {
	if input == nil || input.PrizeID <= 0 {
		return nil, ErrPrizeNotFound
	}

	p, err := s.getPrize(ctx, input.PrizeID)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		if err := validateText(*input.Text); err != nil {
			return nil, err
		}
		p.Text = *input.Text
	}
	if input.Icon != nil {
		if err := validateIcon(*input.Icon); err != nil {
			return nil, err
		}
		p.Icon = *input.Icon
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
		p.Color = *input.Color
	}
	if input.Position != nil {
		if err := validatePosition(*input.Position); err != nil {
			return nil, err
		}
		p.Position = *input.Position
	}

	if input.Active != nil && *input.Active != p.Active {
		active, err := s.activeCount(ctx)
		if err != nil {
			return nil, err
		}

		if *input.Active && active >= models.MaxActivePrizes {
			return nil, fmt.Errorf("%w: at most %d", ErrTooManyActive, models.MaxActivePrizes)
		}
		if !*input.Active && active-1 < models.MinActivePrizes {
			return nil, fmt.Errorf("%w: at least %d", ErrTooFewActive, models.MinActivePrizes)
		}
		p.Active = *input.Active
	}

	p.UpdatedAt = s.clock.Now()
	if err := s.prizeRepo.SavePrize(ctx, &prizeRepo.SavePrizeInput{Prize: p}); err != nil {
		if errors.Is(err, prizeRepo.ErrPrizeNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to save prize: %w", err)
	}

	s.log.Info("prize updated", zap.Int64("prize_id", p.ID))
	return &UpdatePrizeOutput{Prize: p}, nil
}

func (s *service) DeletePrize(ctx context.Context, input *DeletePrizeInput) (*DeletePrizeOutput, error) {
	if input == nil || input.PrizeID <= 0 {
		return nil, ErrPrizeNotFound
	}

	p, err := s.getPrize(ctx, input.PrizeID)
	if err != nil {
		return nil, err
	}

	if p.Active {
		active, err := s.activeCount(ctx)
		if err != nil {
			return nil, err
		}
		if active-1 < models.MinActivePrizes {
			return nil, fmt.Errorf("%w: at least %d", ErrTooFewActive, models.MinActivePrizes)
		}
	}

	if err := s.prizeRepo.DeletePrize(ctx, &prizeRepo.DeletePrizeInput{PrizeID: p.ID}); err != nil {
		if errors.Is(err, prizeRepo.ErrPrizeNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to delete prize: %w", err)
	}

	s.log.Info("prize deleted", zap.Int64("prize_id", p.ID), zap.String("text", p.Text))
	return &DeletePrizeOutput{Prize: p}, nil
}

// ReorderPrizes checks every item before writing any of them
func (s *service) ReorderPrizes(ctx context.Context, input *ReorderPrizesInput) (*ReorderPrizesOutput, error) {
	if input == nil || len(input.Items) == 0 {
		return &ReorderPrizesOutput{}, nil
	}

	all, err := s.prizeRepo.ListPrizes(ctx, &prizeRepo.ListPrizesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}

	byID := make(map[int64]*models.Prize, len(all.Prizes))
	for _, p := range all.Prizes {
		byID[p.ID] = p
	}

	for _, item := range input.Items {
		if _, ok := byID[item.PrizeID]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrPrizeNotFound, item.PrizeID)
		}
		if err := validatePosition(item.Position); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	updated := 0
	for _, item := range input.Items {
		p := byID[item.PrizeID]
		if p.Position == item.Position {
			continue
		}

		p.Position = item.Position
		p.UpdatedAt = now
		if err := s.prizeRepo.SavePrize(ctx, &prizeRepo.SavePrizeInput{Prize: p}); err != nil {
			return nil, fmt.Errorf("failed to save prize %d: %w", p.ID, err)
		}
		updated++
	}

	s.log.Info("prizes reordered", zap.Int("updated", updated))
	return &ReorderPrizesOutput{Updated: updated}, nil
}

func (s *service) SeedDefaults(ctx context.Context) (*SeedDefaultsOutput, error) {
	all, err := s.prizeRepo.ListPrizes(ctx, &prizeRepo.ListPrizesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}

	if len(all.Prizes) > 0 {
		return &SeedDefaultsOutput{}, nil
	}

	now := s.clock.Now()
	for _, d := range DefaultPrizes {
		p := d
		p.Active = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := s.prizeRepo.CreatePrize(ctx, &prizeRepo.CreatePrizeInput{Prize: &p}); err != nil {
			return nil, fmt.Errorf("failed to seed prize %q: %w", d.Text, err)
		}
	}

	s.log.Info("seeded default prizes", zap.Int("count", len(DefaultPrizes)))
	return &SeedDefaultsOutput{Seeded: len(DefaultPrizes)}, nil
}
