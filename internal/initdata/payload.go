package initdata

import (
	"time"

	"github.com/KirkDiggler/fortune/internal/models"
)

const (
	fieldHash     = "hash"
	fieldAuthDate = "auth_date"
	fieldUser     = "user"
)

// Payload is verified init data. The signature has been stripped; auth_date
// and user are exposed as typed values and every other field is kept as-is
// in Fields so unknown platform attributes survive.
type Payload struct {
	// AuthDate is when Telegram issued the payload. Zero when HasAuthDate is false.
	AuthDate    time.Time
	HasAuthDate bool

	// User is the signed-in principal. Nil when the payload carries no user
	// (for example chat-scoped launches).
	User *models.TelegramUser

	// Fields holds the remaining key/value pairs
	Fields map[string]string
}

// Attributes returns a copy of the opaque fields, safe to hand to storage
func (p *Payload) Attributes() map[string]string {
	out := make(map[string]string, len(p.Fields))
	for k, v := range p.Fields {
		out[k] = v
	}
	return out
}
