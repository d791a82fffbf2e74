package exception

import "errors"

var (
	ErrInvalidSymbol = errors.New("identifier: symbol is not CODE.VENUE")
	ErrNilClock      = errors.New("identifier: nil clock")
)
