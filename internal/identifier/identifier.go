// Package identifier holds the typed identifier values minted and consumed
// across the platform. Each kind is its own string type: two identifiers of
// different kinds never compare equal even when the underlying text matches.
package identifier

import (
	"main/internal/check"
)

// TraderID distinguishes a trader within generated identifiers.
type TraderID string

func NewTraderID(value string) (TraderID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return TraderID(value), nil
}

func (id TraderID) String() string { return string(id) }

// StrategyID distinguishes a strategy within generated identifiers.
type StrategyID string

func NewStrategyID(value string) (StrategyID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return StrategyID(value), nil
}

func (id StrategyID) String() string { return string(id) }

// OrderID identifies a single order.
type OrderID string

func NewOrderID(value string) (OrderID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return OrderID(value), nil
}

func (id OrderID) String() string { return string(id) }

// PositionID identifies a single position.
type PositionID string

func NewPositionID(value string) (PositionID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return PositionID(value), nil
}

func (id PositionID) String() string { return string(id) }

// InstrumentID identifies an instrument reference-data record.
type InstrumentID string

func NewInstrumentID(value string) (InstrumentID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return InstrumentID(value), nil
}

func (id InstrumentID) String() string { return string(id) }

// AccountID identifies a brokerage account.
type AccountID string

func NewAccountID(value string) (AccountID, error) {
	if err := check.ValidString(value, "value"); err != nil {
		return "", err
	}
	return AccountID(value), nil
}

func (id AccountID) String() string { return string(id) }
