package initdata_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/initdata"
	"github.com/KirkDiggler/fortune/internal/initdata/initdatatest"
	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/stretchr/testify/suite"
)

const testBotToken = "123456:TEST-token"

type ValidatorTestSuite struct {
	suite.Suite
	testNow   time.Time
	validator *initdata.Validator
	user      *models.TelegramUser
}

func (s *ValidatorTestSuite) SetupTest() {
	s.testNow = time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)

	v, err := initdata.New(&initdata.Config{
		BotToken: testBotToken,
		Clock:    clock.Fixed{At: s.testNow},
	})
	s.Require().NoError(err)
	s.validator = v

	s.user = &models.TelegramUser{
		ID:        279058397,
		FirstName: "Vladislav",
		LastName:  "Kibenko",
		Username:  "vdkfrost",
	}
}

// telegramHash signs checkString the way Telegram documents it, without going
// through the package under test
func telegramHash(botToken, checkString string) string {
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) unix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// signedWithHash encodes fields and appends hash verbatim
func (s *ValidatorTestSuite) signedWithHash(fields map[string]string, hash string) string {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	return values.Encode() + "&hash=" + hash
}

func (s *ValidatorTestSuite) TestValidPayload() {
	raw := initdatatest.ForUser(testBotToken, s.user, s.testNow)

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)
	s.Require().NotNil(payload.User)

	s.Equal(s.user.ID, payload.User.ID)
	s.Equal("vdkfrost", payload.User.Username)
	s.Equal("Vladislav", payload.User.FirstName)
	s.True(payload.HasAuthDate)
	s.Equal(s.testNow.Unix(), payload.AuthDate.Unix())

	s.Equal("AAHdF6IQAAAAAN0XohDhrOrc", payload.Fields["query_id"])

	s.NotContains(payload.Fields, "hash", "hash must be stripped")
	s.NotContains(payload.Fields, "user", "user is exposed through the typed accessor")
}

func (s *ValidatorTestSuite) TestScenarioSecretS() {
	v, err := initdata.New(&initdata.Config{
		BotToken: "S",
		Clock:    clock.Fixed{At: s.testNow},
	})
	s.Require().NoError(err)

	now := s.unix(s.testNow)
	hash := telegramHash("S", "auth_date="+now+"\nuser={\"id\":42}")
	raw := "auth_date=" + now + "&user=%7B%22id%22%3A42%7D&hash=" + hash

	payload, err := v.Validate(raw)
	s.Require().NoError(err)
	s.Require().NotNil(payload.User)
	s.Equal(int64(42), payload.User.ID)

	zeroed := "auth_date=" + now + "&user=%7B%22id%22%3A42%7D&hash=" + strings.Repeat("0", 64)
	_, err = v.Validate(zeroed)
	s.ErrorIs(err, initdata.ErrInvalidSignature)
}

// Init data published in Telegram's Mini App samples, signed by Telegram itself
func (s *ValidatorTestSuite) TestPublishedTelegramSample() {
	const (
		botToken = "5768337691:AAH5YkoiEuPk8-FZa32hStHTqXiLPtAEhx8"
		raw      = "query_id=AAHdF6IQAAAAAN0XohDhrOrc" +
			"&user=%7B%22id%22%3A279058397%2C%22first_name%22%3A%22Vladislav%22%2C%22last_name%22%3A%22Kibenko%22%2C%22username%22%3A%22vdkfrost%22%2C%22language_code%22%3A%22ru%22%2C%22is_premium%22%3Atrue%7D" +
			"&auth_date=1662771648" +
			"&hash=c501b71e775f74ce10e377dea85a7ea24ecd640b223ea86dfe453e0eaed2e2b2"
	)

	v, err := initdata.New(&initdata.Config{
		BotToken: botToken,
		Clock:    clock.Fixed{At: time.Unix(1662771648, 0)},
	})
	s.Require().NoError(err)

	payload, err := v.Validate(raw)
	s.Require().NoError(err)
	s.Require().NotNil(payload.User)
	s.Equal(int64(279058397), payload.User.ID)
	s.Equal("vdkfrost", payload.User.Username)
	s.Equal("ru", payload.User.LanguageCode)
	s.True(payload.User.IsPremium)
	s.Equal("AAHdF6IQAAAAAN0XohDhrOrc", payload.Fields["query_id"])

	_, err = v.Validate(strings.Replace(raw, "vdkfrost", "vdkfrosT", 1))
	s.ErrorIs(err, initdata.ErrInvalidSignature)
}

func (s *ValidatorTestSuite) TestSignerMatchesTelegramDerivation() {
	fields := map[string]string{
		"auth_date": s.unix(s.testNow),
		"user":      `{"id":42}`,
	}
	check := initdata.CheckString(fields)

	s.Equal(telegramHash(testBotToken, check), initdata.Sign(initdata.SecretKey(testBotToken), check))
}

func (s *ValidatorTestSuite) TestFlippingAnySignatureByteFails() {
	fields := map[string]string{
		"auth_date": s.unix(s.testNow),
		"user":      `{"id":42,"first_name":"Ann"}`,
	}
	hash := initdata.Sign(initdata.SecretKey(testBotToken), initdata.CheckString(fields))
	s.Require().Len(hash, 64)

	_, err := s.validator.Validate(s.signedWithHash(fields, hash))
	s.Require().NoError(err)

	for i := 0; i < len(hash); i++ {
		flipped := []byte(hash)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}

		_, err := s.validator.Validate(s.signedWithHash(fields, string(flipped)))
		s.ErrorIs(err, initdata.ErrInvalidSignature, "byte %d", i)
	}
}

func (s *ValidatorTestSuite) TestFreshnessBoundary() {
	tests := []struct {
		name     string
		authDate time.Time
		wantErr  error
	}{
		{"issued now", s.testNow, nil},
		{"exactly one hour old", s.testNow.Add(-3600 * time.Second), nil},
		{"one second past the hour", s.testNow.Add(-3601 * time.Second), initdata.ErrExpiredPayload},
		{"exactly one hour ahead", s.testNow.Add(3600 * time.Second), nil},
		{"too far in the future", s.testNow.Add(3601 * time.Second), initdata.ErrExpiredPayload},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			raw := initdatatest.ForUser(testBotToken, s.user, tt.authDate)

			_, err := s.validator.Validate(raw)
			if tt.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *ValidatorTestSuite) TestMissingSignature() {
	fields := map[string]string{
		"auth_date": s.unix(s.testNow),
		"user":      `{"id":42}`,
	}
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}

	_, err := s.validator.Validate(values.Encode())
	s.ErrorIs(err, initdata.ErrMissingSignature)

	_, err = s.validator.Validate(values.Encode() + "&hash=")
	s.ErrorIs(err, initdata.ErrMissingSignature)

	_, err = s.validator.Validate("")
	s.ErrorIs(err, initdata.ErrMissingSignature)
}

func (s *ValidatorTestSuite) TestMissingAuthDateFailsClosed() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"user": `{"id":42}`,
	})

	_, err := s.validator.Validate(raw)
	s.ErrorIs(err, initdata.ErrExpiredPayload)
}

func (s *ValidatorTestSuite) TestMissingAuthDateAllowed() {
	v, err := initdata.New(&initdata.Config{
		BotToken:             testBotToken,
		AllowMissingAuthDate: true,
		Clock:                clock.Fixed{At: s.testNow},
	})
	s.Require().NoError(err)

	raw := initdatatest.Sign(testBotToken, map[string]string{
		"user": `{"id":42}`,
	})

	payload, err := v.Validate(raw)
	s.Require().NoError(err)
	s.False(payload.HasAuthDate)
	s.True(payload.AuthDate.IsZero())
	s.Equal(int64(42), payload.User.ID)
}

func (s *ValidatorTestSuite) TestNonNumericAuthDate() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"auth_date": "yesterday",
		"user":      `{"id":42}`,
	})

	_, err := s.validator.Validate(raw)
	s.ErrorIs(err, initdata.ErrExpiredPayload)
}

func (s *ValidatorTestSuite) TestWrongBotToken() {
	raw := initdatatest.ForUser("654321:OTHER-token", s.user, s.testNow)

	_, err := s.validator.Validate(raw)
	s.ErrorIs(err, initdata.ErrInvalidSignature)
}

func (s *ValidatorTestSuite) TestTamperedField() {
	raw := initdatatest.ForUser(testBotToken, s.user, s.testNow)
	tampered := strings.Replace(raw, "query_id=AAHdF6IQAAAAAN0XohDhrOrc", "query_id=AAHdF6IQAAAAAN0XohDhrOrd", 1)
	s.Require().NotEqual(raw, tampered)

	_, err := s.validator.Validate(tampered)
	s.ErrorIs(err, initdata.ErrInvalidSignature)
}

func (s *ValidatorTestSuite) TestMalformedUser() {
	tests := []struct {
		name string
		user string
	}{
		{"not json", "not json"},
		{"json array", `[1,2,3]`},
		{"missing id", `{"first_name":"Ann"}`},
		{"string id", `{"id":"42"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			raw := initdatatest.Sign(testBotToken, map[string]string{
				"auth_date": s.unix(s.testNow),
				"user":      tt.user,
			})

			_, err := s.validator.Validate(raw)
			s.ErrorIs(err, initdata.ErrMalformedUserData)
		})
	}
}

func (s *ValidatorTestSuite) TestDoubleEncodedUser() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"auth_date": s.unix(s.testNow),
		"user":      "%7B%22id%22%3A7%7D",
	})

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)
	s.Equal(int64(7), payload.User.ID)
}

func (s *ValidatorTestSuite) TestUserWithPercentInName() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"auth_date": s.unix(s.testNow),
		"user":      `{"id":9,"first_name":"100%zz"}`,
	})

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)
	s.Equal("100%zz", payload.User.FirstName)
}

func (s *ValidatorTestSuite) TestNoUserField() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"auth_date":     s.unix(s.testNow),
		"chat_instance": "-8208516128013823394",
	})

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)
	s.Nil(payload.User)
}

func (s *ValidatorTestSuite) TestBlankValuesAreSigned() {
	raw := initdatatest.Sign(testBotToken, map[string]string{
		"auth_date":   s.unix(s.testNow),
		"start_param": "",
		"user":        `{"id":42}`,
	})

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)

	startParam, ok := payload.Fields["start_param"]
	s.True(ok)
	s.Equal("", startParam)
}

func (s *ValidatorTestSuite) TestRepeatedKeyUsesFirstOccurrence() {
	raw := initdatatest.ForUser(testBotToken, s.user, s.testNow)

	payload, err := s.validator.Validate(raw + "&query_id=injected&hash=" + strings.Repeat("f", 64))
	s.Require().NoError(err)

	s.Equal("AAHdF6IQAAAAAN0XohDhrOrc", payload.Fields["query_id"])
}

func (s *ValidatorTestSuite) TestUndecodableInput() {
	_, err := s.validator.Validate("auth_date=1&user=%zz&hash=00")
	s.ErrorIs(err, initdata.ErrInvalidSignature)
}

func (s *ValidatorTestSuite) TestAttributesIsACopy() {
	raw := initdatatest.ForUser(testBotToken, s.user, s.testNow)

	payload, err := s.validator.Validate(raw)
	s.Require().NoError(err)

	attrs := payload.Attributes()
	attrs["query_id"] = "changed"

	s.Equal("AAHdF6IQAAAAAN0XohDhrOrc", payload.Fields["query_id"])
}

func (s *ValidatorTestSuite) TestNewValidatesConfig() {
	_, err := initdata.New(nil)
	s.ErrorIs(err, initdata.ErrNilConfig)

	_, err = initdata.New(&initdata.Config{})
	s.ErrorIs(err, initdata.ErrEmptyBotToken)
}

func TestCheckStringSortsByteWise(t *testing.T) {
	got := initdata.CheckString(map[string]string{
		"b":         "2",
		"a":         "1",
		"B":         "upper",
		"auth_date": "",
	})

	want := "B=upper\na=1\nauth_date=\nb=2"
	if got != want {
		t.Fatalf("CheckString() = %q, want %q", got, want)
	}
}

func TestCheckStringEmpty(t *testing.T) {
	if got := initdata.CheckString(map[string]string{}); got != "" {
		t.Fatalf("CheckString() = %q, want empty", got)
	}
}
