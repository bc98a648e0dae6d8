package prize

import (
	"context"
	"database/sql"
	"path/filepath"
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
	s.testNow = time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
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

func (s *RepositoryTestSuite) create(text string, position int, active bool) *models.Prize {
	p, err := s.repo.CreatePrize(s.ctx, &CreatePrizeInput{
		Prize: &models.Prize{
			Text:      text,
			Icon:      "🎁",
			Color:     "#4A90D9",
			Position:  position,
			Active:    active,
			CreatedAt: s.testNow,
			UpdatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)
	s.Require().NotZero(p.ID)
	return p
}

func (s *RepositoryTestSuite) TestCreateAndGetPrize() {
	created := s.create("Long lunch", 3, true)

	got, err := s.repo.GetPrize(s.ctx, &GetPrizeInput{PrizeID: created.ID})
	s.Require().NoError(err)

	s.Equal(created.ID, got.ID)
	s.Equal("Long lunch", got.Text)
	s.Equal("🎁", got.Icon)
	s.Equal("#4A90D9", got.Color)
	s.Equal(3, got.Position)
	s.True(got.Active)
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RepositoryTestSuite) TestCreateAssignsDistinctIDs() {
	a := s.create("A", 1, true)
	b := s.create("B", 2, true)

	s.NotEqual(a.ID, b.ID)
}

func (s *RepositoryTestSuite) TestListPrizesOrdersByPosition() {
	third := s.create("third", 5, true)
	first := s.create("first", 1, true)
	inactive := s.create("inactive", 2, false)
	second := s.create("second", 5, true) // same position, higher id

	all, err := s.repo.ListPrizes(s.ctx, &ListPrizesInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Prizes, 4)
	s.Equal([]int64{first.ID, inactive.ID, third.ID, second.ID}, ids(all.Prizes))

	active, err := s.repo.ListPrizes(s.ctx, &ListPrizesInput{ActiveOnly: true})
	s.Require().NoError(err)
	s.Equal([]int64{first.ID, third.ID, second.ID}, ids(active.Prizes))
}

func (s *RepositoryTestSuite) TestListPrizesEmpty() {
	out, err := s.repo.ListPrizes(s.ctx, &ListPrizesInput{ActiveOnly: true})
	s.Require().NoError(err)
	s.NotNil(out.Prizes)
	s.Empty(out.Prizes)
}

func (s *RepositoryTestSuite) TestSavePrize() {
	p := s.create("Old text", 1, true)

	p.Text = "New text"
	p.Color = "#000000"
	p.Active = false
	p.UpdatedAt = s.testNow.Add(time.Hour)
	s.Require().NoError(s.repo.SavePrize(s.ctx, &SavePrizeInput{Prize: p}))

	got, err := s.repo.GetPrize(s.ctx, &GetPrizeInput{PrizeID: p.ID})
	s.Require().NoError(err)
	s.Equal("New text", got.Text)
	s.Equal("#000000", got.Color)
	s.False(got.Active)
	s.Equal(s.testNow.Add(time.Hour).Unix(), got.UpdatedAt.Unix())
}

func (s *RepositoryTestSuite) TestSaveMissingPrize() {
	err := s.repo.SavePrize(s.ctx, &SavePrizeInput{Prize: &models.Prize{ID: 999, Text: "ghost"}})
	s.ErrorIs(err, ErrPrizeNotFound)
}

func (s *RepositoryTestSuite) TestDeletePrize() {
	p := s.create("Going away", 1, true)

	s.Require().NoError(s.repo.DeletePrize(s.ctx, &DeletePrizeInput{PrizeID: p.ID}))

	_, err := s.repo.GetPrize(s.ctx, &GetPrizeInput{PrizeID: p.ID})
	s.ErrorIs(err, ErrPrizeNotFound)

	out, err := s.repo.ListPrizes(s.ctx, &ListPrizesInput{})
	s.Require().NoError(err)
	s.Empty(out.Prizes)

	err = s.repo.DeletePrize(s.ctx, &DeletePrizeInput{PrizeID: p.ID})
	s.ErrorIs(err, ErrPrizeNotFound)
}

func (s *RepositoryTestSuite) TestGetMissingPrize() {
	_, err := s.repo.GetPrize(s.ctx, &GetPrizeInput{PrizeID: 404})
	s.ErrorIs(err, ErrPrizeNotFound)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.GetPrize(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.CreatePrize(s.ctx, &CreatePrizeInput{})
	s.Error(err)

	s.Error(s.repo.SavePrize(s.ctx, &SavePrizeInput{Prize: &models.Prize{}}))
	s.Error(s.repo.DeletePrize(s.ctx, &DeletePrizeInput{}))
}

func ids(prizes []*models.Prize) []int64 {
	out := make([]int64, len(prizes))
	for i, p := range prizes {
		out[i] = p.ID
	}
	return out
}

func TestNewRedisValidatesConfig(t *testing.T) {
	if _, err := NewRedis(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewRedis(&Config{}); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestNewSQLiteValidatesConfig(t *testing.T) {
	if _, err := NewSQLite(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewSQLite(&SQLiteConfig{DB: (*sql.DB)(nil)}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
