package model

import (
	"time"

	"github.com/shopspring/decimal"

	"main/internal/identifier"
	"main/internal/model/enum"
)

// Instrument is the reference-data record for one tradable security. It is an
// immutable value: an update replaces the whole record, nothing mutates in
// place. Distances and sizes are exact decimals so the encode/decode round
// trip never drifts.
type Instrument struct {
	ID                    identifier.InstrumentID
	Symbol                identifier.Symbol
	BrokerSymbol          string
	QuoteCurrency         enum.Currency
	SecurityType          enum.SecurityType
	TickPrecision         int
	TickSize              decimal.Decimal
	RoundLotSize          decimal.Decimal
	MinStopDistanceEntry  decimal.Decimal
	MinStopDistance       decimal.Decimal
	MinLimitDistanceEntry decimal.Decimal
	MinLimitDistance      decimal.Decimal
	MinTradeSize          decimal.Decimal
	MaxTradeSize          decimal.Decimal
	RolloverInterestBuy   decimal.Decimal
	RolloverInterestSell  decimal.Decimal
	Timestamp             time.Time
}

// Equal reports value equality on every field.
func (i Instrument) Equal(other Instrument) bool {
	return i.ID == other.ID &&
		i.Symbol == other.Symbol &&
		i.BrokerSymbol == other.BrokerSymbol &&
		i.QuoteCurrency == other.QuoteCurrency &&
		i.SecurityType == other.SecurityType &&
		i.TickPrecision == other.TickPrecision &&
		i.TickSize.Equal(other.TickSize) &&
		i.RoundLotSize.Equal(other.RoundLotSize) &&
		i.MinStopDistanceEntry.Equal(other.MinStopDistanceEntry) &&
		i.MinStopDistance.Equal(other.MinStopDistance) &&
		i.MinLimitDistanceEntry.Equal(other.MinLimitDistanceEntry) &&
		i.MinLimitDistance.Equal(other.MinLimitDistance) &&
		i.MinTradeSize.Equal(other.MinTradeSize) &&
		i.MaxTradeSize.Equal(other.MaxTradeSize) &&
		i.RolloverInterestBuy.Equal(other.RolloverInterestBuy) &&
		i.RolloverInterestSell.Equal(other.RolloverInterestSell) &&
		i.Timestamp.Equal(other.Timestamp)
}
