package enum

import "main/pkg/exception"

// Currency is the quote or settlement currency of an instrument.
type Currency uint8

const (
	_currency_beg Currency = iota
	CurrencyUSD
	CurrencyAUD
	CurrencyNZD
	CurrencyEUR
	CurrencyGBP
	CurrencyJPY
	CurrencyCHF
	CurrencyCAD
	CurrencyBTC
	CurrencyETH
	CurrencyUSDT
	_currency_end
)

func (c Currency) IsAvailable() bool {
	return c > _currency_beg && c < _currency_end
}

// String returns the canonical wire name.
func (c Currency) String() string {
	switch c {
	case CurrencyUSD:
		return "USD"
	case CurrencyAUD:
		return "AUD"
	case CurrencyNZD:
		return "NZD"
	case CurrencyEUR:
		return "EUR"
	case CurrencyGBP:
		return "GBP"
	case CurrencyJPY:
		return "JPY"
	case CurrencyCHF:
		return "CHF"
	case CurrencyCAD:
		return "CAD"
	case CurrencyBTC:
		return "BTC"
	case CurrencyETH:
		return "ETH"
	case CurrencyUSDT:
		return "USDT"
	default:
		return ""
	}
}

// ParseCurrency maps a canonical wire name back to its value.
func ParseCurrency(name string) (Currency, error) {
	switch name {
	case "USD":
		return CurrencyUSD, nil
	case "AUD":
		return CurrencyAUD, nil
	case "NZD":
		return CurrencyNZD, nil
	case "EUR":
		return CurrencyEUR, nil
	case "GBP":
		return CurrencyGBP, nil
	case "JPY":
		return CurrencyJPY, nil
	case "CHF":
		return CurrencyCHF, nil
	case "CAD":
		return CurrencyCAD, nil
	case "BTC":
		return CurrencyBTC, nil
	case "ETH":
		return CurrencyETH, nil
	case "USDT":
		return CurrencyUSDT, nil
	default:
		return _currency_beg, exception.ErrUnknownCurrency
	}
}
