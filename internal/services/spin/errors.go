package spin

// SpinError is a custom error type for spin-related errors
type SpinError string

// Error implements the error interface
func (e SpinError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoPrizesAvailable  SpinError = "no active prizes available"
	ErrAlreadyPlayed      SpinError = "user has already played"
	ErrStorageUnavailable SpinError = "storage unavailable"
	ErrResultNotFound     SpinError = "result not found"
	ErrInvalidUser        SpinError = "user identity is required"
	ErrNilConfig          SpinError = "config cannot be nil"
	ErrNilPrizeRepo       SpinError = "prize repository cannot be nil"
	ErrNilSpinRepo        SpinError = "spin repository cannot be nil"
	ErrNilDrawer          SpinError = "drawer cannot be nil"
	ErrNilClock           SpinError = "clock cannot be nil"
	ErrNilUUIDGenerator   SpinError = "UUID generator cannot be nil"
)
