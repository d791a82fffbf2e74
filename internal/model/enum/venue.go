package enum

import "main/pkg/exception"

// Venue is the exchange or liquidity provider a symbol trades on.
type Venue uint8

const (
	_venue_beg Venue = iota
	VenueSim
	VenueOanda
	VenueFxcm
	VenueDukascopy
	VenueBinance
	VenueBtcc
	_venue_end
)

func (v Venue) IsAvailable() bool {
	return v > _venue_beg && v < _venue_end
}

func (v Venue) String() string {
	switch v {
	case VenueSim:
		return "SIM"
	case VenueOanda:
		return "OANDA"
	case VenueFxcm:
		return "FXCM"
	case VenueDukascopy:
		return "DUKASCOPY"
	case VenueBinance:
		return "BINANCE"
	case VenueBtcc:
		return "BTCC"
	default:
		return ""
	}
}

func ParseVenue(name string) (Venue, error) {
	switch name {
	case "SIM":
		return VenueSim, nil
	case "OANDA":
		return VenueOanda, nil
	case "FXCM":
		return VenueFxcm, nil
	case "DUKASCOPY":
		return VenueDukascopy, nil
	case "BINANCE":
		return VenueBinance, nil
	case "BTCC":
		return VenueBtcc, nil
	default:
		return _venue_beg, exception.ErrUnknownVenue
	}
}

// Broker is the counterparty routing orders for a session.
type Broker uint8

const (
	_broker_beg Broker = iota
	BrokerSim
	BrokerIB
	BrokerOanda
	BrokerFxcm
	_broker_end
)

func (b Broker) IsAvailable() bool {
	return b > _broker_beg && b < _broker_end
}

func (b Broker) String() string {
	switch b {
	case BrokerSim:
		return "SIM"
	case BrokerIB:
		return "IB"
	case BrokerOanda:
		return "OANDA"
	case BrokerFxcm:
		return "FXCM"
	default:
		return ""
	}
}

func ParseBroker(name string) (Broker, error) {
	switch name {
	case "SIM":
		return BrokerSim, nil
	case "IB":
		return BrokerIB, nil
	case "OANDA":
		return BrokerOanda, nil
	case "FXCM":
		return BrokerFxcm, nil
	default:
		return _broker_beg, exception.ErrUnknownBroker
	}
}
