package spin

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/fortune/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/fortune/internal/common/uuid/mocks"
	drawMocks "github.com/KirkDiggler/fortune/internal/draw/mocks"
	"github.com/KirkDiggler/fortune/internal/models"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	prizeMocks "github.com/KirkDiggler/fortune/internal/repositories/prize/mocks"
	spinRepo "github.com/KirkDiggler/fortune/internal/repositories/spin"
	spinMocks "github.com/KirkDiggler/fortune/internal/repositories/spin/mocks"
	"github.com/KirkDiggler/fortune/internal/services/spin/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpinServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPrizeRepo *prizeMocks.MockRepository
	mockSpinRepo  *spinMocks.MockRepository
	mockDrawer    *drawMocks.MockDrawer
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	mockNotifier  *mocks.MockNotifier
	spinService   Service
	ctx           context.Context

	// Test data
	testTime   time.Time
	testSpinID string
	testUser   *models.TelegramUser
	testPrizes []*models.Prize
}

func (s *SpinServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPrizeRepo = prizeMocks.NewMockRepository(s.mockCtrl)
	s.mockSpinRepo = spinMocks.NewMockRepository(s.mockCtrl)
	s.mockDrawer = drawMocks.NewMockDrawer(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 3, 8, 18, 30, 0, 0, time.UTC)
	s.testSpinID = "7d3f0b7e-1a2b-4c5d-8e9f-0a1b2c3d4e5f"
	s.testUser = &models.TelegramUser{
		ID:        279058397,
		FirstName: "Vladislav",
		LastName:  "Kibenko",
		Username:  "vdkfrost",
	}
	s.testPrizes = []*models.Prize{
		{ID: 1, Text: "Free coffee", Icon: "☕", Color: "#6F4E37", Position: 1, Active: true},
		{ID: 2, Text: "10% discount", Icon: "🏷️", Color: "#4A90D9", Position: 2, Active: true},
		{ID: 3, Text: "Sticker pack", Icon: "🎨", Color: "#E94E77", Position: 3, Active: true},
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		PrizeRepo:     s.mockPrizeRepo,
		SpinRepo:      s.mockSpinRepo,
		Drawer:        s.mockDrawer,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Notifier:      s.mockNotifier,
	})
	s.Require().NoError(err)
	s.spinService = svc
}

func (s *SpinServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpinServiceSuite(t *testing.T) {
	suite.Run(t, new(SpinServiceTestSuite))
}

func (s *SpinServiceTestSuite) expectActivePrizes(prizes []*models.Prize) {
	s.mockPrizeRepo.EXPECT().
		ListPrizes(s.ctx, &prizeRepo.ListPrizesInput{ActiveOnly: true}).
		Return(&prizeRepo.ListPrizesOutput{Prizes: prizes}, nil)
}

func (s *SpinServiceTestSuite) TestSpinAssignsDrawnPrize() {
	s.expectActivePrizes(s.testPrizes)
	s.mockDrawer.EXPECT().Pick(3).Return(1, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSpinID)

	attrs := map[string]string{"query_id": "AAHdF6IQAAAAAN0XohDhrOrc"}
	expectedSpin := &models.Spin{
		ID:         s.testSpinID,
		UserID:     s.testUser.ID,
		Username:   "vdkfrost",
		FirstName:  "Vladislav",
		LastName:   "Kibenko",
		PrizeID:    2,
		PrizeText:  "10% discount",
		Attributes: attrs,
		CreatedAt:  s.testTime,
	}

	s.mockSpinRepo.EXPECT().
		InsertSpinIfAbsent(s.ctx, &spinRepo.InsertSpinInput{Spin: expectedSpin}).
		Return(spinRepo.InsertOutcomeInserted, nil)
	s.mockNotifier.EXPECT().NotifySpin(s.ctx, expectedSpin, s.testPrizes[1]).Return(nil)

	out, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser, Attributes: attrs})

	s.Require().NoError(err)
	s.Equal(&models.PrizeResult{
		PrizeID:    2,
		PrizeText:  "10% discount",
		PrizeIcon:  "🏷️",
		PrizeColor: "#4A90D9",
	}, out.Result)
	s.Equal(expectedSpin, out.Spin)
}

func (s *SpinServiceTestSuite) TestSpinAlreadyPlayed() {
	s.expectActivePrizes(s.testPrizes)
	s.mockDrawer.EXPECT().Pick(3).Return(0, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSpinID)
	s.mockSpinRepo.EXPECT().
		InsertSpinIfAbsent(s.ctx, gomock.Any()).
		Return(spinRepo.InsertOutcomeAlreadyExists, nil)

	out, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser})

	s.Nil(out)
	s.ErrorIs(err, ErrAlreadyPlayed)
	s.NotErrorIs(err, ErrStorageUnavailable)
}

func (s *SpinServiceTestSuite) TestSpinNoActivePrizes() {
	s.expectActivePrizes([]*models.Prize{})

	out, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser})

	s.Nil(out)
	s.ErrorIs(err, ErrNoPrizesAvailable)
}

func (s *SpinServiceTestSuite) TestSpinListFailureIsStorageUnavailable() {
	boom := errors.New("connection refused")
	s.mockPrizeRepo.EXPECT().ListPrizes(s.ctx, gomock.Any()).Return(nil, boom)

	_, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser})

	s.ErrorIs(err, ErrStorageUnavailable)
	s.ErrorIs(err, boom)
	s.NotErrorIs(err, ErrAlreadyPlayed)
}

func (s *SpinServiceTestSuite) TestSpinInsertFailureIsStorageUnavailable() {
	boom := errors.New("i/o timeout")
	s.expectActivePrizes(s.testPrizes)
	s.mockDrawer.EXPECT().Pick(3).Return(2, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSpinID)
	s.mockSpinRepo.EXPECT().
		InsertSpinIfAbsent(s.ctx, gomock.Any()).
		Return(spinRepo.InsertOutcomeUnknown, boom)

	_, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser})

	s.ErrorIs(err, ErrStorageUnavailable)
	s.ErrorIs(err, boom)
	s.NotErrorIs(err, ErrAlreadyPlayed)
}

func (s *SpinServiceTestSuite) TestSpinNotifierFailureDoesNotFailSpin() {
	s.expectActivePrizes(s.testPrizes)
	s.mockDrawer.EXPECT().Pick(3).Return(0, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSpinID)
	s.mockSpinRepo.EXPECT().
		InsertSpinIfAbsent(s.ctx, gomock.Any()).
		Return(spinRepo.InsertOutcomeInserted, nil)
	s.mockNotifier.EXPECT().
		NotifySpin(s.ctx, gomock.Any(), s.testPrizes[0]).
		Return(errors.New("discord down"))

	out, err := s.spinService.Spin(s.ctx, &SpinInput{User: s.testUser})

	s.Require().NoError(err)
	s.Equal(int64(1), out.Result.PrizeID)
}

func (s *SpinServiceTestSuite) TestSpinRequiresUser() {
	_, err := s.spinService.Spin(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidUser)

	_, err = s.spinService.Spin(s.ctx, &SpinInput{})
	s.ErrorIs(err, ErrInvalidUser)

	_, err = s.spinService.Spin(s.ctx, &SpinInput{User: &models.TelegramUser{}})
	s.ErrorIs(err, ErrInvalidUser)
}

func (s *SpinServiceTestSuite) TestCheckStatusNotPlayed() {
	s.mockSpinRepo.EXPECT().
		GetSpin(s.ctx, &spinRepo.GetSpinInput{UserID: s.testUser.ID}).
		Return(nil, spinRepo.ErrSpinNotFound)

	out, err := s.spinService.CheckStatus(s.ctx, &CheckStatusInput{UserID: s.testUser.ID})

	s.Require().NoError(err)
	s.False(out.HasPlayed)
	s.Nil(out.Result)
}

func (s *SpinServiceTestSuite) TestCheckStatusUsesSnapshotTextAndLiveStyle() {
	s.mockSpinRepo.EXPECT().
		GetSpin(s.ctx, &spinRepo.GetSpinInput{UserID: s.testUser.ID}).
		Return(&models.Spin{UserID: s.testUser.ID, PrizeID: 1, PrizeText: "Free coffee", CreatedAt: s.testTime}, nil)
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: 1}).
		Return(&models.Prize{ID: 1, Text: "Free espresso", Icon: "☕", Color: "#6F4E37"}, nil)

	out, err := s.spinService.CheckStatus(s.ctx, &CheckStatusInput{UserID: s.testUser.ID})

	s.Require().NoError(err)
	s.True(out.HasPlayed)
	s.Equal("Free coffee", out.Result.PrizeText)
	s.Equal("☕", out.Result.PrizeIcon)
	s.Equal("#6F4E37", out.Result.PrizeColor)
	s.Equal(s.testTime, out.PlayedAt)
}

func (s *SpinServiceTestSuite) TestCheckStatusDeletedPrizeFallsBack() {
	s.mockSpinRepo.EXPECT().
		GetSpin(s.ctx, gomock.Any()).
		Return(&models.Spin{UserID: s.testUser.ID, PrizeID: 9, PrizeText: "Retired prize"}, nil)
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: 9}).
		Return(nil, prizeRepo.ErrPrizeNotFound)

	out, err := s.spinService.CheckStatus(s.ctx, &CheckStatusInput{UserID: s.testUser.ID})

	s.Require().NoError(err)
	s.Equal(&models.PrizeResult{
		PrizeID:    9,
		PrizeText:  "Retired prize",
		PrizeIcon:  FallbackIcon,
		PrizeColor: FallbackColor,
	}, out.Result)
}

func (s *SpinServiceTestSuite) TestCheckStatusStorageFailure() {
	s.mockSpinRepo.EXPECT().GetSpin(s.ctx, gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.spinService.CheckStatus(s.ctx, &CheckStatusInput{UserID: s.testUser.ID})

	s.ErrorIs(err, ErrStorageUnavailable)
}

func (s *SpinServiceTestSuite) TestSummarize() {
	s.mockSpinRepo.EXPECT().ListSpins(s.ctx, gomock.Any()).Return(&spinRepo.ListSpinsOutput{
		Spins: []*models.Spin{
			{UserID: 1, PrizeID: 2, PrizeText: "10% discount"},
			{UserID: 2, PrizeID: 1, PrizeText: "Free coffee"},
			{UserID: 3, PrizeID: 2, PrizeText: "10% discount"},
			{UserID: 4, PrizeID: 3, PrizeText: "Sticker pack"},
		},
	}, nil)

	out, err := s.spinService.Summarize(s.ctx, &SummarizeInput{})

	s.Require().NoError(err)
	s.Equal(4, out.Total)
	s.Equal([]*PrizeCount{
		{PrizeID: 2, PrizeText: "10% discount", Count: 2},
		{PrizeID: 1, PrizeText: "Free coffee", Count: 1},
		{PrizeID: 3, PrizeText: "Sticker pack", Count: 1},
	}, out.Prizes)
}

func (s *SpinServiceTestSuite) TestResetUser() {
	s.mockSpinRepo.EXPECT().
		DeleteSpin(s.ctx, &spinRepo.DeleteSpinInput{UserID: 42}).
		Return(nil)

	_, err := s.spinService.ResetUser(s.ctx, &ResetUserInput{UserID: 42})
	s.NoError(err)
}

func (s *SpinServiceTestSuite) TestResetUserNotFound() {
	s.mockSpinRepo.EXPECT().
		DeleteSpin(s.ctx, &spinRepo.DeleteSpinInput{UserID: 42}).
		Return(spinRepo.ErrSpinNotFound)

	_, err := s.spinService.ResetUser(s.ctx, &ResetUserInput{UserID: 42})
	s.ErrorIs(err, ErrResultNotFound)
}

func (s *SpinServiceTestSuite) TestResetReturnsCountAndNotifies() {
	s.mockSpinRepo.EXPECT().
		DeleteAllSpins(s.ctx, &spinRepo.DeleteAllSpinsInput{}).
		Return(&spinRepo.DeleteAllSpinsOutput{Deleted: 7}, nil)
	s.mockNotifier.EXPECT().NotifyReset(s.ctx, int64(7)).Return(nil)

	out, err := s.spinService.Reset(s.ctx, &ResetInput{RequestedBy: 1})

	s.Require().NoError(err)
	s.Equal(int64(7), out.Deleted)
}

func (s *SpinServiceTestSuite) TestResetStorageFailure() {
	s.mockSpinRepo.EXPECT().
		DeleteAllSpins(s.ctx, gomock.Any()).
		Return(nil, errors.New("boom"))

	_, err := s.spinService.Reset(s.ctx, &ResetInput{})
	s.ErrorIs(err, ErrStorageUnavailable)
}

func TestNewValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	full := func() *Config {
		return &Config{
			PrizeRepo:     prizeMocks.NewMockRepository(ctrl),
			SpinRepo:      spinMocks.NewMockRepository(ctrl),
			Drawer:        drawMocks.NewMockDrawer(ctrl),
			Clock:         clockMocks.NewMockClock(ctrl),
			UUIDGenerator: uuidMocks.NewMockUUID(ctrl),
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config) *Config
		want   error
	}{
		{"nil config", func(*Config) *Config { return nil }, ErrNilConfig},
		{"prize repo", func(c *Config) *Config { c.PrizeRepo = nil; return c }, ErrNilPrizeRepo},
		{"spin repo", func(c *Config) *Config { c.SpinRepo = nil; return c }, ErrNilSpinRepo},
		{"drawer", func(c *Config) *Config { c.Drawer = nil; return c }, ErrNilDrawer},
		{"clock", func(c *Config) *Config { c.Clock = nil; return c }, ErrNilClock},
		{"uuid", func(c *Config) *Config { c.UUIDGenerator = nil; return c }, ErrNilUUIDGenerator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.mutate(full()))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := New(full()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
