package exception

import "errors"

var (
	ErrTickFieldCount = errors.New("codec: tick payload field count mismatch")
	ErrBarFieldCount  = errors.New("codec: bar payload field count mismatch")
	ErrEmptyBatch     = errors.New("codec: tick batch is empty")
	ErrMixedSymbols   = errors.New("codec: tick batch contains mixed symbols")
	ErrMissingKey     = errors.New("codec: instrument document missing key")
	ErrWrongValueKind = errors.New("codec: instrument document wrong value kind")
)

var (
	ErrUnknownCurrency     = errors.New("enum: unknown currency name")
	ErrUnknownSecurityType = errors.New("enum: unknown security type name")
	ErrUnknownOrderSide    = errors.New("enum: unknown order side name")
	ErrUnknownOrderType    = errors.New("enum: unknown order type name")
	ErrUnknownTimeInForce  = errors.New("enum: unknown time in force name")
	ErrUnknownVenue        = errors.New("enum: unknown venue name")
	ErrUnknownBroker       = errors.New("enum: unknown broker name")
)
