package models

import (
	"time"
)

const (
	// MinActivePrizes is the smallest wheel the admin tools will leave behind
	MinActivePrizes = 2

	// MaxActivePrizes is the largest number of sectors the wheel renders
	MaxActivePrizes = 12

	// MinPrizePosition and MaxPrizePosition bound the sector order
	MinPrizePosition = 1
	MaxPrizePosition = 100
)

// Prize is one sector of the wheel
type Prize struct {
	// ID is the storage-assigned identifier
	ID int64 `json:"id"`

	// Text is the human readable reward
	Text string `json:"text"`

	// Icon is a short emoji shown in the sector
	Icon string `json:"icon"`

	// Color is the sector background as #RRGGBB
	Color string `json:"color"`

	// Position orders the sectors around the wheel (1-100)
	Position int `json:"position"`

	// Active marks the prize as eligible for the draw
	Active bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrizeResult is the public view of a drawn prize
type PrizeResult struct {
	PrizeID    int64  `json:"prize_id"`
	PrizeText  string `json:"prize_text"`
	PrizeIcon  string `json:"prize_icon"`
	PrizeColor string `json:"prize_color"`
}

// ResultFor builds the public view of p
func ResultFor(p *Prize) *PrizeResult {
	return &PrizeResult{
		PrizeID:    p.ID,
		PrizeText:  p.Text,
		PrizeIcon:  p.Icon,
		PrizeColor: p.Color,
	}
}
