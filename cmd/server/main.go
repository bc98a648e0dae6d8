package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/fortune/internal/common/clock"
	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/common/token"
	"github.com/KirkDiggler/fortune/internal/common/uuid"
	"github.com/KirkDiggler/fortune/internal/config"
	"github.com/KirkDiggler/fortune/internal/database"
	"github.com/KirkDiggler/fortune/internal/draw"
	"github.com/KirkDiggler/fortune/internal/handlers/api"
	"github.com/KirkDiggler/fortune/internal/handlers/discord"
	"github.com/KirkDiggler/fortune/internal/initdata"
	auditRepo "github.com/KirkDiggler/fortune/internal/repositories/audit"
	prizeRepo "github.com/KirkDiggler/fortune/internal/repositories/prize"
	spinRepo "github.com/KirkDiggler/fortune/internal/repositories/spin"
	staffRepo "github.com/KirkDiggler/fortune/internal/repositories/staff"
	"github.com/KirkDiggler/fortune/internal/services/access"
	"github.com/KirkDiggler/fortune/internal/services/messaging"
	prizeService "github.com/KirkDiggler/fortune/internal/services/prize"
	spinService "github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	repos, err := openStore(cfg)
	if err != nil {
		zlog.Fatal("failed to open store", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer repos.close()

	clk := &clock.DefaultClock{}

	prizeSvc, err := prizeService.New(&prizeService.Config{
		PrizeRepo: repos.prizes,
		Clock:     clk,
		Logger:    zlog,
	})
	if err != nil {
		zlog.Fatal("failed to create prize service", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	seeded, err := prizeSvc.SeedDefaults(ctx)
	cancel()
	if err != nil {
		zlog.Fatal("failed to seed default prizes", zap.Error(err))
	}
	if seeded.Seeded > 0 {
		zlog.Info("store was empty, default prizes added", zap.Int("count", seeded.Seeded))
	}

	accessSvc, err := access.New(&access.Config{
		StaffRepo: repos.staff,
		AuditRepo: repos.audit,
		Clock:     clk,
		Logger:    zlog,
	})
	if err != nil {
		zlog.Fatal("failed to create access service", zap.Error(err))
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	_, err = accessSvc.SeedMembers(ctx, &access.SeedMembersInput{
		AdminIDs:  cfg.AdminIDs,
		ViewerIDs: cfg.ViewerIDs,
	})
	cancel()
	if err != nil {
		zlog.Fatal("failed to seed staff", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		zlog.Fatal("failed to create messaging service", zap.Error(err))
	}

	// The Discord bot is optional. Without it the spin service uses a no-op notifier.
	var bot *discord.Bot
	var notifier spinService.Notifier
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.DiscordAppID,
			GuildID:          cfg.DiscordGuildID,
			ChannelID:        cfg.DiscordChannelID,
			MessagingService: messagingSvc,
			Logger:           zlog,
		})
		if err != nil {
			zlog.Fatal("failed to create Discord bot", zap.Error(err))
		}
		notifier = bot.Notifier()
	}

	spinSvc, err := spinService.New(&spinService.Config{
		PrizeRepo:     repos.prizes,
		SpinRepo:      repos.spins,
		Drawer:        draw.New(nil),
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Notifier:      notifier,
		Logger:        zlog,
	})
	if err != nil {
		zlog.Fatal("failed to create spin service", zap.Error(err))
	}

	if bot != nil {
		if err := bot.Start(); err != nil {
			zlog.Fatal("failed to start Discord bot", zap.Error(err))
		}
		if err := bot.RegisterCommand(discord.NewResultsCommand(spinSvc, messagingSvc)); err != nil {
			zlog.Error("failed to register results command", zap.Error(err))
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				zlog.Warn("error stopping Discord bot", zap.Error(err))
			}
		}()
	}

	validator, err := initdata.New(&initdata.Config{
		BotToken:             cfg.BotToken,
		MaxAge:               cfg.InitDataMaxAge,
		AllowMissingAuthDate: cfg.AllowMissingAuthDate,
		Clock:                clk,
	})
	if err != nil {
		zlog.Fatal("failed to create init data validator", zap.Error(err))
	}

	var tokens *token.Issuer
	if cfg.JWTSecret != "" {
		tokens, err = token.New(&token.Config{
			Secret:        cfg.JWTSecret,
			TTL:           cfg.SessionTTL,
			Clock:         clk,
			UUIDGenerator: uuid.New(),
		})
		if err != nil {
			zlog.Fatal("failed to create token issuer", zap.Error(err))
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := api.New(&api.Config{
		Validator:    validator,
		SpinService:  spinSvc,
		PrizeService: prizeSvc,
		Access:       accessSvc,
		Tokens:       tokens,
		WebAppURL:    cfg.WebAppURL,
		Logger:       zlog,
	})
	if err != nil {
		zlog.Fatal("failed to create API handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store),
			zap.Int("seeded_admins", len(cfg.AdminIDs)),
			zap.Bool("discord", bot != nil),
			zap.Bool("sessions", tokens != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	zlog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("error shutting down server", zap.Error(err))
	}
}

type stores struct {
	prizes prizeRepo.Repository
	spins  spinRepo.Repository
	staff  staffRepo.Repository
	audit  auditRepo.Repository
	close  func()
}

// openStore builds every repository on the configured backend
func openStore(cfg *config.Config) (*stores, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		repos, err := sqliteRepos(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return repos, nil
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repos, err := redisRepos(redisClient)
		if err != nil {
			redisClient.Close()
			return nil, err
		}
		return repos, nil
	}
}

func redisRepos(client *redis.Client) (*stores, error) {
	repos := &stores{close: func() { client.Close() }}
	var err error

	if repos.prizes, err = prizeRepo.NewRedis(&prizeRepo.Config{RedisClient: client}); err != nil {
		return nil, err
	}
	if repos.spins, err = spinRepo.NewRedis(&spinRepo.Config{RedisClient: client}); err != nil {
		return nil, err
	}
	if repos.staff, err = staffRepo.NewRedis(&staffRepo.Config{RedisClient: client}); err != nil {
		return nil, err
	}
	if repos.audit, err = auditRepo.NewRedis(&auditRepo.Config{RedisClient: client}); err != nil {
		return nil, err
	}
	return repos, nil
}

func sqliteRepos(db *sql.DB) (*stores, error) {
	repos := &stores{close: func() { db.Close() }}
	var err error

	if repos.prizes, err = prizeRepo.NewSQLite(&prizeRepo.SQLiteConfig{DB: db}); err != nil {
		return nil, err
	}
	if repos.spins, err = spinRepo.NewSQLite(&spinRepo.SQLiteConfig{DB: db}); err != nil {
		return nil, err
	}
	if repos.staff, err = staffRepo.NewSQLite(&staffRepo.SQLiteConfig{DB: db}); err != nil {
		return nil, err
	}
	if repos.audit, err = auditRepo.NewSQLite(&auditRepo.SQLiteConfig{DB: db}); err != nil {
		return nil, err
	}
	return repos, nil
}
