package prize

// PrizeError is a custom error type for prize administration errors
type PrizeError string

// Error implements the error interface
func (e PrizeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPrizeNotFound PrizeError = "prize not found"
	ErrTooManyActive PrizeError = "too many active prizes"
	ErrTooFewActive  PrizeError = "too few active prizes"
	ErrInvalidPrize  PrizeError = "invalid prize"
	ErrNilConfig     PrizeError = "config cannot be nil"
	ErrNilPrizeRepo  PrizeError = "prize repository cannot be nil"
	ErrNilClock      PrizeError = "clock cannot be nil"
)
