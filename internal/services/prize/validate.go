package prize

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/KirkDiggler/fortune/internal/models"
)

const (
	maxTextLength = 200
	maxIconLength = 10
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateText(text string) error {
	if n := utf8.RuneCountInString(text); n < 1 || n > maxTextLength {
		return fmt.Errorf("%w: text must be 1-%d characters", ErrInvalidPrize, maxTextLength)
	}
	return nil
}

func validateIcon(icon string) error {
	if n := utf8.RuneCountInString(icon); n < 1 || n > maxIconLength {
		return fmt.Errorf("%w: icon must be 1-%d characters", ErrInvalidPrize, maxIconLength)
	}
	return nil
}

func validateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return fmt.Errorf("%w: color must be #RRGGBB", ErrInvalidPrize)
	}
	return nil
}

func validatePosition(position int) error {
	if position < models.MinPrizePosition || position > models.MaxPrizePosition {
		return fmt.Errorf("%w: position must be %d-%d", ErrInvalidPrize, models.MinPrizePosition, models.MaxPrizePosition)
	}
	return nil
}
