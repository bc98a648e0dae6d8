package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/models"
	auditRepo "github.com/KirkDiggler/fortune/internal/repositories/audit"
	staffRepo "github.com/KirkDiggler/fortune/internal/repositories/staff"
	"go.uber.org/zap"
)

type service struct {
	staffRepo staffRepo.Repository
	auditRepo auditRepo.Repository
	clock     clock.Clock
	log       *zap.Logger
}

// New creates a new access service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StaffRepo == nil {
		return nil, ErrNilStaffRepo
	}

	if cfg.AuditRepo == nil {
		return nil, ErrNilAuditRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		staffRepo: cfg.StaffRepo,
		auditRepo: cfg.AuditRepo,
		clock:     cfg.Clock,
		log:       logger.OrNop(cfg.Logger).Named("access"),
	}, nil
}

func (s *service) role(ctx context.Context, userID int64) (models.Role, error) {
	if userID <= 0 {
		return "", nil
	}

	m, err := s.staffRepo.GetMemberByUser(ctx, &staffRepo.GetMemberByUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, staffRepo.ErrMemberNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up role: %w", err)
	}

	return m.Role, nil
}

func (s *service) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	role, err := s.role(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

func (s *service) IsViewer(ctx context.Context, userID int64) (bool, error) {
	role, err := s.role(ctx, userID)
	if err != nil {
		return false, err
	}
	return role.Valid(), nil
}

func (s *service) SeedMembers(ctx context.Context, input *SeedMembersInput) (*SeedMembersOutput, error) {
	if input == nil {
		return &SeedMembersOutput{}, nil
	}

	seeded := 0
	seed := func(ids []int64, role models.Role) error {
		for _, id := range ids {
			if id <= 0 {
				continue
			}
			_, err := s.staffRepo.CreateMember(ctx, &staffRepo.CreateMemberInput{Member: &models.StaffMember{
				UserID:    id,
				Role:      role,
				CreatedAt: s.clock.Now(),
			}})
			if errors.Is(err, staffRepo.ErrMemberExists) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to seed %s %d: %w", role, id, err)
			}
			s.log.Info("seeded staff member", zap.Int64("user_id", id), zap.String("role", string(role)))
			seeded++
		}
		return nil
	}

	// Admins first so an id listed twice ends up an admin
	if err := seed(input.AdminIDs, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := seed(input.ViewerIDs, models.RoleViewer); err != nil {
		return nil, err
	}

	return &SeedMembersOutput{Seeded: seeded}, nil
}

func (s *service) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	out, err := s.staffRepo.ListMembers(ctx, &staffRepo.ListMembersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return &ListMembersOutput{Members: out.Members}, nil
}

func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil || input.UserID <= 0 {
		return nil, ErrInvalidUser
	}

	role := input.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	m, err := s.staffRepo.CreateMember(ctx, &staffRepo.CreateMemberInput{Member: &models.StaffMember{
		UserID:    input.UserID,
		Role:      role,
		AddedBy:   input.AddedBy,
		CreatedAt: s.clock.Now(),
	}})
	if err != nil {
		if errors.Is(err, staffRepo.ErrMemberExists) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("failed to add staff member: %w", err)
	}

	s.log.Info("staff member added",
		zap.Int64("user_id", m.UserID),
		zap.String("role", string(m.Role)),
		zap.Int64("added_by", m.AddedBy),
	)
	return &AddMemberOutput{Member: m}, nil
}

func (s *service) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil || input.MemberID <= 0 {
		return nil, ErrMemberNotFound
	}

	all, err := s.staffRepo.ListMembers(ctx, &staffRepo.ListMembersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	var target *models.StaffMember
	admins := 0
	for _, m := range all.Members {
		if m.ID == input.MemberID {
			target = m
		}
		if m.Role == models.RoleAdmin {
			admins++
		}
	}

	if target == nil {
		return nil, ErrMemberNotFound
	}

	if target.Role == models.RoleAdmin && admins <= 1 {
		return nil, ErrLastAdmin
	}

	removed, err := s.staffRepo.DeleteMember(ctx, &staffRepo.DeleteMemberInput{MemberID: input.MemberID})
	if err != nil {
		if errors.Is(err, staffRepo.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to remove staff member: %w", err)
	}

	s.log.Info("staff member removed", zap.Int64("user_id", removed.UserID), zap.String("role", string(removed.Role)))
	return &RemoveMemberOutput{Member: removed}, nil
}

func (s *service) Record(ctx context.Context, input *RecordInput) error {
	if input == nil || input.Admin == nil || input.Admin.ID == 0 {
		return ErrInvalidUser
	}

	_, err := s.auditRepo.AppendEntry(ctx, &auditRepo.AppendEntryInput{Entry: &models.AuditEntry{
		AdminID:   input.Admin.ID,
		AdminName: input.Admin.DisplayName(),
		Action:    input.Action,
		Details:   input.Details,
		CreatedAt: s.clock.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", input.Action, err)
	}

	return nil
}

func (s *service) ListAudit(ctx context.Context, input *ListAuditInput) (*ListAuditOutput, error) {
	limit := auditRepo.DefaultListLimit
	if input != nil && input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}

	out, err := s.auditRepo.ListEntries(ctx, &auditRepo.ListEntriesInput{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	return &ListAuditOutput{Entries: out.Entries}, nil
}
