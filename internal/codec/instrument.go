package codec

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"

	"main/internal/errors"
	"main/internal/identifier"
	"main/internal/model"
	"main/internal/model/enum"
)

// The instrument wire format is a keyed binary map with exactly this key set.
// Adding or removing a key is a breaking format change.
const (
	keyID                    = "Id"
	keySymbol                = "Symbol"
	keyBrokerSymbol          = "BrokerSymbol"
	keyQuoteCurrency         = "QuoteCurrency"
	keySecurityType          = "SecurityType"
	keyTickPrecision         = "TickPrecision"
	keyTickSize              = "TickSize"
	keyRoundLotSize          = "RoundLotSize"
	keyMinStopDistanceEntry  = "MinStopDistanceEntry"
	keyMinStopDistance       = "MinStopDistance"
	keyMinLimitDistanceEntry = "MinLimitDistanceEntry"
	keyMinLimitDistance      = "MinLimitDistance"
	keyMinTradeSize          = "MinTradeSize"
	keyMaxTradeSize          = "MaxTradeSize"
	keyRolloverInterestBuy   = "RolloverInterestBuy"
	keyRolloverInterestSell  = "RolloverInterestSell"
	keyTimestamp             = "Timestamp"
)

// EncodeInstrument serializes the instrument as a msgpack map. Enumerated
// fields carry their canonical names and decimals their exact string form, so
// the encoding survives enum renumbering and never loses precision.
func EncodeInstrument(inst model.Instrument) ([]byte, error) {
	doc := map[string]any{
		keyID:                    inst.ID.String(),
		keySymbol:                inst.Symbol.String(),
		keyBrokerSymbol:          inst.BrokerSymbol,
		keyQuoteCurrency:         inst.QuoteCurrency.String(),
		keySecurityType:          inst.SecurityType.String(),
		keyTickPrecision:         inst.TickPrecision,
		keyTickSize:              inst.TickSize.String(),
		keyRoundLotSize:          inst.RoundLotSize.String(),
		keyMinStopDistanceEntry:  inst.MinStopDistanceEntry.String(),
		keyMinStopDistance:       inst.MinStopDistance.String(),
		keyMinLimitDistanceEntry: inst.MinLimitDistanceEntry.String(),
		keyMinLimitDistance:      inst.MinLimitDistance.String(),
		keyMinTradeSize:          inst.MinTradeSize.String(),
		keyMaxTradeSize:          inst.MaxTradeSize.String(),
		keyRolloverInterestBuy:   inst.RolloverInterestBuy.String(),
		keyRolloverInterestSell:  inst.RolloverInterestSell.String(),
		keyTimestamp:             inst.Timestamp.UTC().Format(time.RFC3339Nano),
	}

	payload, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal instrument document")
	}
	return payload, nil
}

// DecodeInstrument is the strict inverse of EncodeInstrument: every key must
// be present and well formed, otherwise the whole decode fails.
func DecodeInstrument(payload []byte) (model.Instrument, error) {
	var doc map[string]any
	if err := msgpack.Unmarshal(payload, &doc); err != nil {
		return model.Instrument{}, errors.Wrap(err, "unmarshal instrument document")
	}

	idValue, err := docString(doc, keyID)
	if err != nil {
		return model.Instrument{}, err
	}
	id, err := identifier.NewInstrumentID(idValue)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "key "+keyID)
	}

	symbolValue, err := docString(doc, keySymbol)
	if err != nil {
		return model.Instrument{}, err
	}
	symbol, err := identifier.ParseSymbol(symbolValue)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "key "+keySymbol)
	}

	brokerSymbol, err := docString(doc, keyBrokerSymbol)
	if err != nil {
		return model.Instrument{}, err
	}

	currencyName, err := docString(doc, keyQuoteCurrency)
	if err != nil {
		return model.Instrument{}, err
	}
	currency, err := enum.ParseCurrency(currencyName)
	if err != nil {
		return model.Instrument{}, errors.Wrapf(err, "key %s, name %q", keyQuoteCurrency, currencyName)
	}

	securityName, err := docString(doc, keySecurityType)
	if err != nil {
		return model.Instrument{}, err
	}
	security, err := enum.ParseSecurityType(securityName)
	if err != nil {
		return model.Instrument{}, errors.Wrapf(err, "key %s, name %q", keySecurityType, securityName)
	}

	precision, err := docInt(doc, keyTickPrecision)
	if err != nil {
		return model.Instrument{}, err
	}

	inst := model.Instrument{
		ID:            id,
		Symbol:        symbol,
		BrokerSymbol:  brokerSymbol,
		QuoteCurrency: currency,
		SecurityType:  security,
		TickPrecision: precision,
	}

	for _, field := range []struct {
		key string
		dst *decimal.Decimal
	}{
		{keyTickSize, &inst.TickSize},
		{keyRoundLotSize, &inst.RoundLotSize},
		{keyMinStopDistanceEntry, &inst.MinStopDistanceEntry},
		{keyMinStopDistance, &inst.MinStopDistance},
		{keyMinLimitDistanceEntry, &inst.MinLimitDistanceEntry},
		{keyMinLimitDistance, &inst.MinLimitDistance},
		{keyMinTradeSize, &inst.MinTradeSize},
		{keyMaxTradeSize, &inst.MaxTradeSize},
		{keyRolloverInterestBuy, &inst.RolloverInterestBuy},
		{keyRolloverInterestSell, &inst.RolloverInterestSell},
	} {
		value, err := docDecimal(doc, field.key)
		if err != nil {
			return model.Instrument{}, err
		}
		*field.dst = value
	}

	ts, err := docTime(doc, keyTimestamp)
	if err != nil {
		return model.Instrument{}, err
	}
	inst.Timestamp = ts

	return inst, nil
}
