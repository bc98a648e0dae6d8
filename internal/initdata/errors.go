package initdata

// ValidationError is returned when init data cannot be trusted. All of them
// are terminal: the client has to fetch a fresh payload from Telegram.
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingSignature  ValidationError = "init data has no hash"
	ErrExpiredPayload    ValidationError = "init data has expired"
	ErrInvalidSignature  ValidationError = "init data signature is invalid"
	ErrMalformedUserData ValidationError = "init data user is malformed"
	ErrNilConfig         ValidationError = "config cannot be nil"
	ErrEmptyBotToken     ValidationError = "bot token cannot be empty"
)
