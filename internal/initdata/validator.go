package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/models"
)

// DefaultMaxAge is how far auth_date may drift from the server clock
const DefaultMaxAge = time.Hour

// webAppDataKey is the HMAC key Telegram uses to turn the bot token into the
// Mini App signing key
var webAppDataKey = []byte("WebAppData")

// Config holds configuration for the validator
type Config struct {
	// BotToken is the shared secret. Never log it.
	BotToken string

	// MaxAge bounds |now - auth_date|. Defaults to DefaultMaxAge.
	MaxAge time.Duration

	// AllowMissingAuthDate accepts payloads without auth_date instead of
	// treating them as expired.
	AllowMissingAuthDate bool

	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validator verifies Telegram Mini App init data
type Validator struct {
	secretKey            []byte
	maxAge               time.Duration
	allowMissingAuthDate bool
	clock                clock.Clock
}

// New creates a validator. The signing key is derived once here.
func New(cfg *Config) (*Validator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BotToken == "" {
		return nil, ErrEmptyBotToken
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &Validator{
		secretKey:            SecretKey(cfg.BotToken),
		maxAge:               maxAge,
		allowMissingAuthDate: cfg.AllowMissingAuthDate,
		clock:                clk,
	}, nil
}

// Validate parses raw init data and checks its signature and freshness
func (v *Validator) Validate(raw string) (*Payload, error) {
	fields, err := parseFields(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	received := fields[fieldHash]
	delete(fields, fieldHash)
	if received == "" {
		return nil, ErrMissingSignature
	}

	payload := &Payload{}

	if rawDate, ok := fields[fieldAuthDate]; ok {
		authDate, err := strconv.ParseInt(rawDate, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: auth_date %q is not a unix timestamp", ErrExpiredPayload, rawDate)
		}

		age := v.clock.Now().Unix() - authDate
		if age < 0 {
			age = -age
		}
		if age > int64(v.maxAge/time.Second) {
			return nil, ErrExpiredPayload
		}

		payload.AuthDate = time.Unix(authDate, 0).UTC()
		payload.HasAuthDate = true
	} else if !v.allowMissingAuthDate {
		return nil, fmt.Errorf("%w: auth_date is missing", ErrExpiredPayload)
	}

	expected := Sign(v.secretKey, CheckString(fields))
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return nil, ErrInvalidSignature
	}

	if rawUser, ok := fields[fieldUser]; ok {
		user, err := parseUser(rawUser)
		if err != nil {
			return nil, err
		}
		payload.User = user
	}

	delete(fields, fieldAuthDate)
	delete(fields, fieldUser)
	payload.Fields = fields

	return payload, nil
}

// SecretKey derives the Mini App signing key from a bot token:
// HMAC-SHA256 keyed with "WebAppData" over the token.
func SecretKey(botToken string) []byte {
	mac := hmac.New(sha256.New, webAppDataKey)
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

// Sign returns the hex HMAC-SHA256 of checkString under secretKey
func Sign(secretKey []byte, checkString string) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}

// CheckString renders fields as Telegram's data-check-string: key=value
// lines sorted by key, joined with \n, no trailing newline.
func CheckString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

// parseFields decodes a query string keeping blank values. The first
// occurrence of a repeated key wins.
func parseFields(raw string) (map[string]string, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		fields[k] = vs[0]
	}
	return fields, nil
}

func parseUser(raw string) (*models.TelegramUser, error) {
	// The value is already query-decoded. A second pass mirrors clients that
	// double-encode the JSON; invalid escapes are left untouched.
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}

	var user models.TelegramUser
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUserData, err)
	}

	if user.ID == 0 {
		return nil, fmt.Errorf("%w: user id is missing", ErrMalformedUserData)
	}

	return &user, nil
}
