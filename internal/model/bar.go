package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is an OHLCV summary over an implicit window, stamped with the close
// time. The codec assumes low <= open,close <= high holds on the wire and
// does not re-check it.
type Bar struct {
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
	Time   time.Time
}

// String returns the canonical wire rendering
// "<open>,<high>,<low>,<close>,<volume>,<timestamp>". It round-trips through
// codec.DecodeBar.
func (b Bar) String() string {
	return b.Open.String() + "," +
		b.High.String() + "," +
		b.Low.String() + "," +
		b.Close.String() + "," +
		b.Volume.String() + "," +
		b.Time.UTC().Format(time.RFC3339Nano)
}

// Equal reports value equality on every field.
func (b Bar) Equal(other Bar) bool {
	return b.Open.Equal(other.Open) &&
		b.High.Equal(other.High) &&
		b.Low.Equal(other.Low) &&
		b.Close.Equal(other.Close) &&
		b.Volume.Equal(other.Volume) &&
		b.Time.Equal(other.Time)
}
