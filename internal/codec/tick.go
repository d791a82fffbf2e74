// Package codec converts market domain values to and from their wire and
// storage representations. Every function is pure and stateless; a malformed
// payload fails the whole call and never yields a partial value.
package codec

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"main/internal/errors"
	"main/internal/identifier"
	"main/internal/model"
	"main/pkg/exception"
)

const (
	tickFieldCount = 3
	barFieldCount  = 6
)

// DecodeTick parses the "<bid>,<ask>,<timestamp>" rendering. The symbol
// travels out of band because a batch of ticks shares it.
func DecodeTick(symbol identifier.Symbol, payload []byte) (model.Tick, error) {
	fields := strings.Split(string(payload), ",")
	if len(fields) != tickFieldCount {
		return model.Tick{}, errors.Wrapf(exception.ErrTickFieldCount, "want %d fields, got %d", tickFieldCount, len(fields))
	}

	bid, err := decimal.NewFromString(fields[0])
	if err != nil {
		return model.Tick{}, errors.Wrap(err, "parse bid")
	}

	ask, err := decimal.NewFromString(fields[1])
	if err != nil {
		return model.Tick{}, errors.Wrap(err, "parse ask")
	}

	ts, err := time.Parse(time.RFC3339Nano, fields[2])
	if err != nil {
		return model.Tick{}, errors.Wrap(err, "parse timestamp")
	}

	return model.Tick{
		Symbol: symbol,
		Bid:    bid,
		Ask:    ask,
		Time:   ts.UTC(),
	}, nil
}
