package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages. Announcements
	// are built from concurrent spin requests, hence the mutex.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetSpinAnnouncement returns a message for a player who just won a prize
func (s *service) GetSpinAnnouncement(ctx context.Context, input *GetSpinAnnouncementInput) (*GetSpinAnnouncementOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	name := input.PlayerName
	if name == "" {
		name = "Someone"
	}

	var titles, messages []string
	switch tone {
	case ToneNeutral:
		titles = []string{"New result"}
		messages = []string{
			"%s won: %s",
			"%s spun the wheel and got %s",
		}
	case ToneFunny:
		titles = []string{"The wheel has spoken", "Fortune favours the bold"}
		messages = []string{
			"%s poked the wheel and it coughed up %s. No refunds.",
			"Against all odds (well, the usual odds) %s walks away with %s!",
			"%s spun so hard the wheel gave up %s just to make it stop.",
		}
	default:
		titles = []string{"We have a winner!", "Jackpot!", "Lucky spin!"}
		messages = []string{
			"Congratulations %s! You won %s 🎉",
			"%s just landed on %s! Well deserved.",
			"The wheel smiles on %s today: %s!",
		}
	}

	prize := input.PrizeText
	if input.PrizeIcon != "" {
		prize = input.PrizeIcon + " " + prize
	}

	return &GetSpinAnnouncementOutput{
		Title:   s.pick(titles),
		Message: fmt.Sprintf(s.pick(messages), name, prize),
		Tone:    tone,
	}, nil
}

// GetResetAnnouncement returns a message after an admin clears every result
func (s *service) GetResetAnnouncement(ctx context.Context, input *GetResetAnnouncementInput) (*GetResetAnnouncementOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case input.Deleted == 0:
		messages = []string{
			"The wheel was reset. Nobody had spun yet anyway.",
			"Fresh start! Not that anything had happened.",
		}
	case tone == ToneNeutral:
		messages = []string{
			fmt.Sprintf("%d results cleared. Everyone may spin again.", input.Deleted),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d results swept away. Everyone gets another shot!", input.Deleted),
			fmt.Sprintf("The wheel forgot all %d winners. Spin again!", input.Deleted),
			fmt.Sprintf("Reset! %d lucky people are back to square one.", input.Deleted),
		}
	}

	return &GetResetAnnouncementOutput{
		Title:   "The wheel has been reset",
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetResultsSummaryMessage returns the headline shown above the per-prize counts
func (s *service) GetResultsSummaryMessage(ctx context.Context, input *GetResultsSummaryMessageInput) (*GetResultsSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Total == 0 {
		return &GetResultsSummaryMessageOutput{
			Title: "Results",
			Message: s.pick([]string{
				"Nobody has spun the wheel yet.",
				"The wheel is still waiting for its first victim.",
			}),
		}, nil
	}

	noun := "spins"
	if input.Total == 1 {
		noun = "spin"
	}

	return &GetResultsSummaryMessageOutput{
		Title:   "Results",
		Message: fmt.Sprintf("%d %s so far.", input.Total, noun),
	}, nil
}
