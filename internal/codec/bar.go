package codec

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"main/internal/errors"
	"main/internal/model"
	"main/pkg/exception"
)

// DecodeBar parses the "<open>,<high>,<low>,<close>,<volume>,<timestamp>"
// rendering.
func DecodeBar(payload []byte) (model.Bar, error) {
	fields := strings.Split(string(payload), ",")
	if len(fields) != barFieldCount {
		return model.Bar{}, errors.Wrapf(exception.ErrBarFieldCount, "want %d fields, got %d", barFieldCount, len(fields))
	}

	prices := make([]decimal.Decimal, 4)
	for i, name := range [...]string{"open", "high", "low", "close"} {
		p, err := decimal.NewFromString(fields[i])
		if err != nil {
			return model.Bar{}, errors.Wrap(err, "parse "+name)
		}
		prices[i] = p
	}

	volume, err := decimal.NewFromString(fields[4])
	if err != nil {
		return model.Bar{}, errors.Wrap(err, "parse volume")
	}

	ts, err := time.Parse(time.RFC3339Nano, fields[5])
	if err != nil {
		return model.Bar{}, errors.Wrap(err, "parse timestamp")
	}

	return model.Bar{
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
		Time:   ts.UTC(),
	}, nil
}

// DecodeBars decodes each payload in order, preserving input order. It fails
// fast on the first malformed element; nothing is returned for a partially
// valid batch.
func DecodeBars(payloads [][]byte) ([]model.Bar, error) {
	bars := make([]model.Bar, len(payloads))
	for i, payload := range payloads {
		bar, err := DecodeBar(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "decode bar at index %d", i)
		}
		bars[i] = bar
	}
	return bars, nil
}
