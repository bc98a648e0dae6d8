package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the process configuration, read once at startup and passed
// explicitly to the components that need it
type Config struct {
	// Telegram bot token. Doubles as the init data signing secret.
	BotToken string

	// WebAppURL is the Mini App origin, used for CORS
	WebAppURL string

	// AdminIDs and ViewerIDs seed the staff table at startup. Grants made
	// from the admin panel live in storage.
	AdminIDs  []int64
	ViewerIDs []int64

	Port string
	Env  string

	// Store selects the persistence backend: "redis" or "sqlite"
	Store string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SQLitePath string

	// InitDataMaxAge bounds the age of accepted init data
	InitDataMaxAge time.Duration

	// AllowMissingAuthDate accepts init data without auth_date
	AllowMissingAuthDate bool

	// JWTSecret signs session tokens. Empty disables the bearer flow.
	JWTSecret string

	// SessionTTL defaults to InitDataMaxAge
	SessionTTL time.Duration

	// Discord notifications are disabled when DiscordToken is empty
	DiscordToken     string
	DiscordAppID     string
	DiscordChannelID string
	DiscordGuildID   string

	LogLevel string
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:         os.Getenv("BOT_TOKEN"),
		WebAppURL:        os.Getenv("WEBAPP_URL"),
		Port:             getEnv("API_PORT", "8000"),
		Env:              getEnv("ENV", "development"),
		Store:            strings.ToLower(getEnv("STORE", StoreRedis)),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		SQLitePath:       getEnv("DB_PATH", "./data/fortune.db"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:     os.Getenv("DISCORD_APPLICATION_ID"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN environment variable is required")
	}

	var err error
	if cfg.AdminIDs, err = parseIDs(os.Getenv("ADMIN_IDS")); err != nil {
		return nil, fmt.Errorf("invalid ADMIN_IDS: %w", err)
	}
	if cfg.ViewerIDs, err = parseIDs(os.Getenv("VIEWER_IDS")); err != nil {
		return nil, fmt.Errorf("invalid VIEWER_IDS: %w", err)
	}

	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	if cfg.InitDataMaxAge, err = time.ParseDuration(getEnv("INIT_DATA_MAX_AGE", "1h")); err != nil {
		return nil, fmt.Errorf("invalid INIT_DATA_MAX_AGE: %w", err)
	}

	// Sessions outlive init data only when asked to
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", cfg.InitDataMaxAge.String())); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if cfg.AllowMissingAuthDate, err = strconv.ParseBool(getEnv("ALLOW_MISSING_AUTH_DATE", "false")); err != nil {
		return nil, fmt.Errorf("invalid ALLOW_MISSING_AUTH_DATE: %w", err)
	}

	switch cfg.Store {
	case StoreRedis, StoreSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE %q (want %q or %q)", cfg.Store, StoreRedis, StoreSQLite)
	}

	if cfg.DiscordToken != "" && cfg.DiscordChannelID == "" {
		return nil, errors.New("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
