package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/uuid"
	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fortune"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("token secret cannot be empty")
)

// Claims carries the Telegram user a session was issued for
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"uid"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// User rebuilds the principal from the claims
func (c *Claims) User() *models.TelegramUser {
	return &models.TelegramUser{
		ID:        c.UserID,
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

type Config struct {
	Secret string
	TTL    time.Duration

	// Optional
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Issuer signs and verifies HS256 session tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
	uuid   uuid.UUID
}

func New(cfg *Config) (*Issuer, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, ErrEmptySecret
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	u := cfg.UUIDGenerator
	if u == nil {
		u = uuid.New()
	}

	return &Issuer{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  c,
		uuid:   u,
	}, nil
}

// Issue returns a signed token for user and its expiry
func (i *Issuer) Issue(user *models.TelegramUser) (string, time.Time, error) {
	if user == nil || user.ID == 0 {
		return "", time.Time{}, errors.New("user cannot be empty")
	}

	now := i.clock.Now()
	expires := now.Add(i.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        i.uuid.NewUUID(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expires, nil
}

// Parse verifies the signature, algorithm, issuer and lifetime of raw
func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID == 0 || !uuid.Valid(claims.ID) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
