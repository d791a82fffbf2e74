// Package clock supplies the current UTC instant to components that stamp
// generated values. Live code uses Real; backtests and tests pin a Static.
package clock

import "time"

// Clock returns the current UTC instant.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Static always returns the instant it was set to.
type Static struct {
	t time.Time
}

// NewStatic pins the clock to the given instant.
func NewStatic(t time.Time) *Static {
	return &Static{t: t.UTC()}
}

func (s *Static) Now() time.Time {
	return s.t
}

// SetTime moves the pinned instant.
func (s *Static) SetTime(t time.Time) {
	s.t = t.UTC()
}
