package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetSpinAnnouncementInput contains parameters for a winner announcement
type GetSpinAnnouncementInput struct {
	// PlayerName is how the winner is shown in the channel
	PlayerName string

	PrizeText string
	PrizeIcon string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetSpinAnnouncementOutput contains the generated announcement
type GetSpinAnnouncementOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetResetAnnouncementInput is the input for GetResetAnnouncement
type GetResetAnnouncementInput struct {
	// Deleted is the number of results that were cleared
	Deleted int64

	PreferredTone MessageTone
}

// GetResetAnnouncementOutput is the output for GetResetAnnouncement
type GetResetAnnouncementOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetResultsSummaryMessageInput is the input for GetResultsSummaryMessage
type GetResultsSummaryMessageInput struct {
	Total int
}

// GetResultsSummaryMessageOutput is the output for GetResultsSummaryMessage
type GetResultsSummaryMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes phrase selection reproducible. Zero seeds from the clock.
	Seed int64
}
