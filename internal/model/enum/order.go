package enum

import "main/pkg/exception"

// OrderSide buy, sell
type OrderSide uint8

const (
	_order_side_beg OrderSide = iota
	OrderSideBuy
	OrderSideSell
	_order_side_end
)

func (s OrderSide) IsAvailable() bool {
	return s > _order_side_beg && s < _order_side_end
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return ""
	}
}

func ParseOrderSide(name string) (OrderSide, error) {
	switch name {
	case "BUY":
		return OrderSideBuy, nil
	case "SELL":
		return OrderSideSell, nil
	default:
		return _order_side_beg, exception.ErrUnknownOrderSide
	}
}

// OrderType limit, market, stop, stop limit
type OrderType uint8

const (
	_order_type_beg OrderType = iota
	OrderTypeLimit
	OrderTypeMarket
	OrderTypeStop
	OrderTypeStopLimit
	_order_type_end
)

func (t OrderType) IsAvailable() bool {
	return t > _order_type_beg && t < _order_type_end
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeStop:
		return "STOP"
	case OrderTypeStopLimit:
		return "STOP_LIMIT"
	default:
		return ""
	}
}

func ParseOrderType(name string) (OrderType, error) {
	switch name {
	case "LIMIT":
		return OrderTypeLimit, nil
	case "MARKET":
		return OrderTypeMarket, nil
	case "STOP":
		return OrderTypeStop, nil
	case "STOP_LIMIT":
		return OrderTypeStopLimit, nil
	default:
		return _order_type_beg, exception.ErrUnknownOrderType
	}
}

// TimeInForce GTC, IOC, FOK, DAY
type TimeInForce uint8

const (
	_time_in_force_beg TimeInForce = iota
	TimeInForceGTC
	TimeInForceIOC
	TimeInForceFOK
	TimeInForceDAY
	_time_in_force_end
)

func (f TimeInForce) IsAvailable() bool {
	return f > _time_in_force_beg && f < _time_in_force_end
}

func (f TimeInForce) String() string {
	switch f {
	case TimeInForceGTC:
		return "GTC"
	case TimeInForceIOC:
		return "IOC"
	case TimeInForceFOK:
		return "FOK"
	case TimeInForceDAY:
		return "DAY"
	default:
		return ""
	}
}

func ParseTimeInForce(name string) (TimeInForce, error) {
	switch name {
	case "GTC":
		return TimeInForceGTC, nil
	case "IOC":
		return TimeInForceIOC, nil
	case "FOK":
		return TimeInForceFOK, nil
	case "DAY":
		return TimeInForceDAY, nil
	default:
		return _time_in_force_beg, exception.ErrUnknownTimeInForce
	}
}
