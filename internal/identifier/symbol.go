package identifier

import (
	"strings"

	"main/internal/check"
	"main/internal/model/enum"
	"main/pkg/exception"
)

// Symbol pairs an instrument code with the venue it trades on.
// The canonical rendering is "CODE.VENUE", e.g. "AUDUSD.OANDA".
type Symbol struct {
	Code  string
	Venue enum.Venue
}

// NewSymbol validates the code and venue.
func NewSymbol(code string, venue enum.Venue) (Symbol, error) {
	if err := check.ValidString(code, "code"); err != nil {
		return Symbol{}, err
	}
	if !venue.IsAvailable() {
		return Symbol{}, exception.ErrUnknownVenue
	}
	return Symbol{Code: code, Venue: venue}, nil
}

// ParseSymbol parses the canonical "CODE.VENUE" rendering.
func ParseSymbol(value string) (Symbol, error) {
	code, venueName, ok := strings.Cut(value, ".")
	if !ok || code == "" || venueName == "" {
		return Symbol{}, exception.ErrInvalidSymbol
	}
	venue, err := enum.ParseVenue(venueName)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Code: code, Venue: venue}, nil
}

func (s Symbol) String() string {
	return s.Code + "." + s.Venue.String()
}
