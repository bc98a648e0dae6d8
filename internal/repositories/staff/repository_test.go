package staff

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/fortune/internal/database"
	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo  func() (Repository, func())
	repo     Repository
	teardown func()
	ctx      context.Context
	testNow  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.teardown = s.newRepo()
	s.ctx = context.Background()
	s.testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.teardown()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (Repository, func()) {
		mr, err := miniredis.Run()
		s.Require().NoError(err)

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		repo, err := NewRedis(&Config{RedisClient: client})
		s.Require().NoError(err)

		return repo, func() {
			client.Close()
			mr.Close()
		}
	}
	suite.Run(t, s)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (Repository, func()) {
		db, err := database.OpenSQLite(filepath.Join(s.T().TempDir(), "fortune.db"))
		s.Require().NoError(err)

		repo, err := NewSQLite(&SQLiteConfig{DB: db})
		s.Require().NoError(err)

		return repo, func() { db.Close() }
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) create(userID int64, role models.Role, at time.Time) *models.StaffMember {
	m, err := s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{
		UserID:    userID,
		Role:      role,
		CreatedAt: at,
	}})
	s.Require().NoError(err)
	return m
}

func (s *RepositoryTestSuite) TestCreateThenGet() {
	created, err := s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{
		UserID:    500,
		Username:  "ops",
		FirstName: "Olga",
		Role:      models.RoleViewer,
		AddedBy:   1,
		CreatedAt: s.testNow,
	}})
	s.Require().NoError(err)
	s.Greater(created.ID, int64(0))

	got, err := s.repo.GetMemberByUser(s.ctx, &GetMemberByUserInput{UserID: 500})
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal("ops", got.Username)
	s.Equal("Olga", got.FirstName)
	s.Equal(models.RoleViewer, got.Role)
	s.Equal(int64(1), got.AddedBy)
	s.True(s.testNow.Equal(got.CreatedAt))
}

func (s *RepositoryTestSuite) TestSeededMemberHasNoAddedBy() {
	s.create(1, models.RoleAdmin, s.testNow)

	got, err := s.repo.GetMemberByUser(s.ctx, &GetMemberByUserInput{UserID: 1})
	s.Require().NoError(err)
	s.Zero(got.AddedBy)
	s.Empty(got.Username)
}

func (s *RepositoryTestSuite) TestCreateDuplicateUser() {
	first := s.create(7, models.RoleAdmin, s.testNow)

	_, err := s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{
		UserID:    7,
		Role:      models.RoleViewer,
		CreatedAt: s.testNow.Add(time.Minute),
	}})
	s.ErrorIs(err, ErrMemberExists)

	got, err := s.repo.GetMemberByUser(s.ctx, &GetMemberByUserInput{UserID: 7})
	s.Require().NoError(err)
	s.Equal(first.ID, got.ID)
	s.Equal(models.RoleAdmin, got.Role)
}

func (s *RepositoryTestSuite) TestConcurrentCreateOneWinner() {
	const workers = 10

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{
				UserID:    99,
				Role:      models.RoleAdmin,
				CreatedAt: s.testNow,
			}})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		s.ErrorIs(err, ErrMemberExists)
	}
	s.Equal(1, created)

	out, err := s.repo.ListMembers(s.ctx, &ListMembersInput{})
	s.Require().NoError(err)
	s.Len(out.Members, 1)
}

func (s *RepositoryTestSuite) TestGetMemberNotFound() {
	_, err := s.repo.GetMemberByUser(s.ctx, &GetMemberByUserInput{UserID: 404})
	s.ErrorIs(err, ErrMemberNotFound)
}

func (s *RepositoryTestSuite) TestListMembersOldestFirst() {
	s.create(3, models.RoleViewer, s.testNow.Add(2*time.Minute))
	s.create(1, models.RoleAdmin, s.testNow)
	s.create(2, models.RoleAdmin, s.testNow.Add(time.Minute))

	out, err := s.repo.ListMembers(s.ctx, &ListMembersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Members, 3)
	s.Equal(int64(1), out.Members[0].UserID)
	s.Equal(int64(2), out.Members[1].UserID)
	s.Equal(int64(3), out.Members[2].UserID)
}

func (s *RepositoryTestSuite) TestListMembersEmpty() {
	out, err := s.repo.ListMembers(s.ctx, &ListMembersInput{})
	s.Require().NoError(err)
	s.NotNil(out.Members)
	s.Empty(out.Members)
}

func (s *RepositoryTestSuite) TestDeleteMember() {
	m := s.create(5, models.RoleViewer, s.testNow)

	deleted, err := s.repo.DeleteMember(s.ctx, &DeleteMemberInput{MemberID: m.ID})
	s.Require().NoError(err)
	s.Equal(int64(5), deleted.UserID)
	s.Equal(models.RoleViewer, deleted.Role)

	_, err = s.repo.GetMemberByUser(s.ctx, &GetMemberByUserInput{UserID: 5})
	s.ErrorIs(err, ErrMemberNotFound)

	// The user may be granted access again
	s.create(5, models.RoleAdmin, s.testNow)
}

func (s *RepositoryTestSuite) TestDeleteMemberNotFound() {
	_, err := s.repo.DeleteMember(s.ctx, &DeleteMemberInput{MemberID: 404})
	s.ErrorIs(err, ErrMemberNotFound)
}

func (s *RepositoryTestSuite) TestCreateRejectsInvalidInput() {
	_, err := s.repo.CreateMember(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{Role: models.RoleAdmin}})
	s.Error(err)

	_, err = s.repo.CreateMember(s.ctx, &CreateMemberInput{Member: &models.StaffMember{UserID: 1, Role: "owner"}})
	s.Error(err)
}

func TestNewRedisValidation(t *testing.T) {
	if _, err := NewRedis(nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := NewRedis(&Config{}); err == nil {
		t.Error("expected error for nil client")
	}
}

func TestNewSQLiteValidation(t *testing.T) {
	if _, err := NewSQLite(nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := NewSQLite(&SQLiteConfig{}); err == nil {
		t.Error("expected error for nil db")
	}
}
