package brief

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBrief marks briefs that are missing required fields or carry a
// non-positive duration. The CLI surfaces these verbatim as user input errors.
var ErrInvalidBrief = errors.New("invalid brief")

// Brief describes the video a user wants generated.
type Brief struct {
	Topic           string  `json:"topic"`
	Description     string  `json:"description"`
	Tone            string  `json:"tone"`
	Audience        string  `json:"audience"`
	Platform        string  `json:"platform,omitempty"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// Validate checks the fields every pipeline stage depends on.
func Validate(b Brief) error {
	if strings.TrimSpace(b.Topic) == "" {
		return fmt.Errorf("%w: topic must not be empty", ErrInvalidBrief)
	}
	if strings.TrimSpace(b.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrInvalidBrief)
	}
	if b.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive, got %v", ErrInvalidBrief, b.DurationMinutes)
	}
	return nil
}
