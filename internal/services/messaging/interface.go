package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSpinAnnouncement returns the channel message for a new winner
	GetSpinAnnouncement(ctx context.Context, input *GetSpinAnnouncementInput) (*GetSpinAnnouncementOutput, error)

	// GetResetAnnouncement returns the channel message after all results are cleared
	GetResetAnnouncement(ctx context.Context, input *GetResetAnnouncementInput) (*GetResetAnnouncementOutput, error)

	// GetResultsSummaryMessage returns the headline for the results command
	GetResultsSummaryMessage(ctx context.Context, input *GetResultsSummaryMessageInput) (*GetResultsSummaryMessageOutput, error)
}
