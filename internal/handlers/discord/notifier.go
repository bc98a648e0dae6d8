package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/common/logger"
	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/KirkDiggler/fortune/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// MessageSender is the part of *discordgo.Session the notifier needs
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type NotifierConfig struct {
	Sender           MessageSender
	ChannelID        string
	MessagingService messaging.Service
	Logger           *zap.Logger
}

// Notifier posts winners and resets to a Discord channel
type Notifier struct {
	sender    MessageSender
	channelID string
	messaging messaging.Service
	log       *zap.Logger
}

func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Notifier{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		messaging: cfg.MessagingService,
		log:       logger.OrNop(cfg.Logger),
	}, nil
}

func (n *Notifier) NotifySpin(ctx context.Context, spin *models.Spin, prize *models.Prize) error {
	if spin == nil || prize == nil {
		return errors.New("spin and prize cannot be nil")
	}

	msg, err := n.messaging.GetSpinAnnouncement(ctx, &messaging.GetSpinAnnouncementInput{
		PlayerName: playerName(spin),
		PrizeText:  prize.Text,
		PrizeIcon:  prize.Icon,
	})
	if err != nil {
		return fmt.Errorf("failed to build spin announcement: %w", err)
	}

	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, renderSpinEmbed(msg, spin, prize), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post spin announcement: %w", err)
	}

	n.log.Debug("announced spin", zap.Int64("user_id", spin.UserID))
	return nil
}

func (n *Notifier) NotifyReset(ctx context.Context, deleted int64) error {
	msg, err := n.messaging.GetResetAnnouncement(ctx, &messaging.GetResetAnnouncementInput{Deleted: deleted})
	if err != nil {
		return fmt.Errorf("failed to build reset announcement: %w", err)
	}

	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, renderResetEmbed(msg), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post reset announcement: %w", err)
	}

	return nil
}

// playerName prefers @username so the channel can find the winner
func playerName(spin *models.Spin) string {
	if spin.Username != "" {
		return "@" + spin.Username
	}
	user := &models.TelegramUser{ID: spin.UserID, FirstName: spin.FirstName, LastName: spin.LastName}
	return user.DisplayName()
}
