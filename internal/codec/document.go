package codec

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"main/internal/errors"
	"main/pkg/exception"
)

// Keyed-document field extraction. Every helper fails on a missing key or a
// value of the wrong kind; there is no defaulting.

func docString(doc map[string]any, key string) (string, error) {
	value, ok := doc[key]
	if !ok {
		return "", errors.Wrap(exception.ErrMissingKey, "key "+key)
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.Wrapf(exception.ErrWrongValueKind, "key %s, want string, got %T", key, value)
	}
	return s, nil
}

func docInt(doc map[string]any, key string) (int, error) {
	value, ok := doc[key]
	if !ok {
		return 0, errors.Wrap(exception.ErrMissingKey, "key "+key)
	}

	// msgpack picks the narrowest integer encoding, so the decoded kind
	// depends on the value.
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, errors.Wrapf(exception.ErrWrongValueKind, "key %s, unsigned value %d overflows int", key, v)
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, errors.Wrapf(exception.ErrWrongValueKind, "key %s, unsigned value %d overflows int", key, v)
		}
		return int(v), nil
	default:
		return 0, errors.Wrapf(exception.ErrWrongValueKind, "key %s, want integer, got %T", key, value)
	}
}

func docDecimal(doc map[string]any, key string) (decimal.Decimal, error) {
	s, err := docString(doc, key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "key "+key)
	}
	return d, nil
}

func docTime(doc map[string]any, key string) (time.Time, error) {
	s, err := docString(doc, key)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "key "+key)
	}
	return ts.UTC(), nil
}
