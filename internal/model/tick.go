// Package model holds the immutable market domain values moved across the
// codec boundary: ticks, bars and instrument reference data. All prices,
// quantities and rates are exact decimals; equality and the wire formats are
// defined on the printed decimal value, never on a binary float.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"main/internal/identifier"
)

// Tick is a single bid/ask observation for one symbol.
type Tick struct {
	Symbol identifier.Symbol
	Bid    decimal.Decimal
	Ask    decimal.Decimal
	Time   time.Time
}

// String returns the canonical wire rendering "<bid>,<ask>,<timestamp>".
// The symbol travels out of band. The rendering round-trips through
// codec.DecodeTick.
func (t Tick) String() string {
	return t.Bid.String() + "," + t.Ask.String() + "," + t.Time.UTC().Format(time.RFC3339Nano)
}

// Equal reports value equality on every field.
func (t Tick) Equal(other Tick) bool {
	return t.Symbol == other.Symbol &&
		t.Bid.Equal(other.Bid) &&
		t.Ask.Equal(other.Ask) &&
		t.Time.Equal(other.Time)
}
