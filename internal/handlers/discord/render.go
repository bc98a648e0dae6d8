package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/KirkDiggler/fortune/internal/services/messaging"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/bwmarrin/discordgo"
)

// Discord allows at most 25 fields per embed
const maxEmbedFields = 25

// renderSpinEmbed builds the channel message for a new winner, colored like
// the prize sector
func renderSpinEmbed(msg *messaging.GetSpinAnnouncementOutput, record *models.Spin, prize *models.Prize) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       parseColor(prize.Color, colorSuccess),
		Timestamp:   record.CreatedAt.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Prize",
				Value:  strings.TrimSpace(prize.Icon + " " + prize.Text),
				Inline: true,
			},
			{
				Name:   "Telegram ID",
				Value:  strconv.FormatInt(record.UserID, 10),
				Inline: true,
			},
		},
	}
}

func renderResetEmbed(msg *messaging.GetResetAnnouncementOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorError,
	}
}

// renderPrizeCountFields lists each prize with its number of winners
func renderPrizeCountFields(counts []*spin.PrizeCount) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(counts))
	for i, pc := range counts {
		if i == maxEmbedFields-1 && len(counts) > maxEmbedFields {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  "Others",
				Value: fmt.Sprintf("%d more prizes", len(counts)-i),
			})
			break
		}

		noun := "winners"
		if pc.Count == 1 {
			noun = "winner"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   pc.PrizeText,
			Value:  fmt.Sprintf("%d %s", pc.Count, noun),
			Inline: true,
		})
	}
	return fields
}

// parseColor turns #RRGGBB into the integer Discord expects
func parseColor(hex string, fallback int) int {
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseInt(hex[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return int(v)
}
