package models

import (
	"time"
)

// Spin records the single prize assigned to a Telegram user.
// There is at most one Spin per UserID; storage enforces it.
type Spin struct {
	// ID is a generated UUID for the record
	ID string `json:"id"`

	// UserID is the Telegram user id, the natural key of the record
	UserID int64 `json:"tg_user_id"`

	// Username, FirstName and LastName are copied from the init data
	// at the time of the spin
	Username  string `json:"tg_username,omitempty"`
	FirstName string `json:"tg_first_name,omitempty"`
	LastName  string `json:"tg_last_name,omitempty"`

	// PrizeID and PrizeText snapshot the prize that was drawn. They are not
	// updated when the prize is edited later.
	PrizeID   int64  `json:"prize_id"`
	PrizeText string `json:"prize_text"`

	// Attributes are the remaining init data fields (query_id, chat_type...)
	Attributes map[string]string `json:"attributes,omitempty"`

	// CreatedAt is when the spin was recorded
	CreatedAt time.Time `json:"created_at"`
}
