// Package ops loads the JSON session configuration and resolves it into the
// typed values the tools run with: session identity, history layout and the
// instrument catalog.
package ops

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/catalog"
	"main/internal/history"
	"main/internal/identifier"
	"main/internal/model"
	"main/internal/model/enum"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Session     SessionConfig      `json:"session"`
	History     HistoryConfig      `json:"history"`
	Instruments []InstrumentConfig `json:"instruments"`
}

// SessionConfig names the owning trader, strategy and broker.
type SessionConfig struct {
	Trader   string `json:"trader"`
	Strategy string `json:"strategy"`
	Broker   string `json:"broker"`
}

// HistoryConfig describes the history segment layout.
type HistoryConfig struct {
	Dir        string `json:"dir"`
	FilePrefix string `json:"filePrefix"`
}

// InstrumentConfig is one instrument definition. Numeric fields are decimal
// strings, enumerated fields canonical names, exactly as on the wire.
type InstrumentConfig struct {
	ID                    string `json:"id"`
	Symbol                string `json:"symbol"`
	BrokerSymbol          string `json:"brokerSymbol"`
	QuoteCurrency         string `json:"quoteCurrency"`
	SecurityType          string `json:"securityType"`
	TickPrecision         int    `json:"tickPrecision"`
	TickSize              string `json:"tickSize"`
	RoundLotSize          string `json:"roundLotSize"`
	MinStopDistanceEntry  string `json:"minStopDistanceEntry"`
	MinStopDistance       string `json:"minStopDistance"`
	MinLimitDistanceEntry string `json:"minLimitDistanceEntry"`
	MinLimitDistance      string `json:"minLimitDistance"`
	MinTradeSize          string `json:"minTradeSize"`
	MaxTradeSize          string `json:"maxTradeSize"`
	RolloverInterestBuy   string `json:"rolloverInterestBuy"`
	RolloverInterestSell  string `json:"rolloverInterestSell"`
	Timestamp             string `json:"timestamp"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Trader   identifier.TraderID
	Strategy identifier.StrategyID
	Broker   enum.Broker
	History  history.Config
	Catalog  *catalog.Catalog
}

// Load reads a JSON config file and resolves it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "unmarshal config")
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	trader, err := identifier.NewTraderID(cfg.Session.Trader)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "resolve session trader")
	}
	strategy, err := identifier.NewStrategyID(cfg.Session.Strategy)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "resolve session strategy")
	}
	broker, err := enum.ParseBroker(cfg.Session.Broker)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "resolve session broker").With("name", cfg.Session.Broker)
	}

	if cfg.History.Dir == "" {
		return Loaded{}, errors.Errorf("history dir is empty")
	}
	historyCfg := history.DefaultConfig(cfg.History.Dir)
	if cfg.History.FilePrefix != "" {
		historyCfg.FilePrefix = cfg.History.FilePrefix
	}

	cat := catalog.New()
	for _, ic := range cfg.Instruments {
		inst, err := resolveInstrument(ic)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "resolve instrument").With("id", ic.ID)
		}
		if err := cat.Add(inst); err != nil {
			return Loaded{}, errors.Wrap(err, "add instrument").With("id", ic.ID)
		}
	}

	return Loaded{
		Trader:   trader,
		Strategy: strategy,
		Broker:   broker,
		History:  historyCfg,
		Catalog:  cat,
	}, nil
}

func resolveInstrument(cfg InstrumentConfig) (model.Instrument, error) {
	id, err := identifier.NewInstrumentID(cfg.ID)
	if err != nil {
		return model.Instrument{}, err
	}
	symbol, err := identifier.ParseSymbol(cfg.Symbol)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "parse symbol")
	}
	currency, err := enum.ParseCurrency(cfg.QuoteCurrency)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "parse quote currency")
	}
	security, err := enum.ParseSecurityType(cfg.SecurityType)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "parse security type")
	}
	if cfg.TickPrecision < 0 {
		return model.Instrument{}, errors.Errorf("tick precision must be >= 0, was %d", cfg.TickPrecision)
	}

	inst := model.Instrument{
		ID:            id,
		Symbol:        symbol,
		BrokerSymbol:  cfg.BrokerSymbol,
		QuoteCurrency: currency,
		SecurityType:  security,
		TickPrecision: cfg.TickPrecision,
	}

	for _, field := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"tickSize", cfg.TickSize, &inst.TickSize},
		{"roundLotSize", cfg.RoundLotSize, &inst.RoundLotSize},
		{"minStopDistanceEntry", cfg.MinStopDistanceEntry, &inst.MinStopDistanceEntry},
		{"minStopDistance", cfg.MinStopDistance, &inst.MinStopDistance},
		{"minLimitDistanceEntry", cfg.MinLimitDistanceEntry, &inst.MinLimitDistanceEntry},
		{"minLimitDistance", cfg.MinLimitDistance, &inst.MinLimitDistance},
		{"minTradeSize", cfg.MinTradeSize, &inst.MinTradeSize},
		{"maxTradeSize", cfg.MaxTradeSize, &inst.MaxTradeSize},
		{"rolloverInterestBuy", cfg.RolloverInterestBuy, &inst.RolloverInterestBuy},
		{"rolloverInterestSell", cfg.RolloverInterestSell, &inst.RolloverInterestSell},
	} {
		value, err := decimal.NewFromString(field.value)
		if err != nil {
			return model.Instrument{}, errors.Wrap(err, "parse "+field.name)
		}
		*field.dst = value
	}

	if cfg.Timestamp == "" {
		inst.Timestamp = time.Now().UTC()
	} else {
		ts, err := time.Parse(time.RFC3339Nano, cfg.Timestamp)
		if err != nil {
			return model.Instrument{}, errors.Wrap(err, "parse timestamp")
		}
		inst.Timestamp = ts.UTC()
	}

	return inst, nil
}
