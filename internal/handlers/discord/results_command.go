package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/services/messaging"
	"github.com/KirkDiggler/fortune/internal/services/spin"
	"github.com/bwmarrin/discordgo"
)

// ResultsCommand handles the /results command
type ResultsCommand struct {
	BaseCommand
	spinService      spin.Service
	messagingService messaging.Service
}

// NewResultsCommand creates a new results command handler
func NewResultsCommand(spinService spin.Service, messagingService messaging.Service) *ResultsCommand {
	return &ResultsCommand{
		BaseCommand: BaseCommand{
			Name:        "results",
			Description: "Show how many people won each prize",
			// Results are staff-only, like the admin panel
			Permissions: discordgo.PermissionManageServer,
		},
		spinService:      spinService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the results command
func (c *ResultsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	title, description, fields, err := c.build(context.Background())
	if err != nil {
		if respErr := RespondWithError(s, i, "Could not load results right now."); respErr != nil {
			return fmt.Errorf("%w (respond: %v)", err, respErr)
		}
		return err
	}

	return RespondWithEmbed(s, i, title, description, fields)
}

func (c *ResultsCommand) build(ctx context.Context) (string, string, []*discordgo.MessageEmbedField, error) {
	summary, err := c.spinService.Summarize(ctx, &spin.SummarizeInput{})
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to summarize results: %w", err)
	}

	headline, err := c.messagingService.GetResultsSummaryMessage(ctx, &messaging.GetResultsSummaryMessageInput{
		Total: summary.Total,
	})
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to build results message: %w", err)
	}

	return headline.Title, headline.Message, renderPrizeCountFields(summary.Prizes), nil
}
