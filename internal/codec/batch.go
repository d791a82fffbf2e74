package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"main/internal/errors"
	"main/internal/identifier"
	"main/internal/model"
	"main/pkg/exception"
)

const (
	keyBatchSymbol = "Symbol"
	keyBatchValues = "Values"
)

// EncodeTicks groups the ticks of one symbol into a single document:
// the shared symbol plus each tick's canonical rendering, in order. The batch
// must be non-empty and homogeneous; a tick for another symbol fails the call.
func EncodeTicks(ticks []model.Tick) ([]byte, error) {
	if len(ticks) == 0 {
		return nil, exception.ErrEmptyBatch
	}

	symbol := ticks[0].Symbol
	values := make([]string, len(ticks))
	for i, tick := range ticks {
		if tick.Symbol != symbol {
			return nil, errors.Wrapf(exception.ErrMixedSymbols, "index %d has %s, batch is %s", i, tick.Symbol, symbol)
		}
		values[i] = tick.String()
	}

	payload, err := msgpack.Marshal(map[string]any{
		keyBatchSymbol: symbol.String(),
		keyBatchValues: values,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal tick batch document")
	}
	return payload, nil
}

// DecodeTicks is the strict inverse of EncodeTicks, preserving order.
func DecodeTicks(payload []byte) ([]model.Tick, error) {
	var doc map[string]any
	if err := msgpack.Unmarshal(payload, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal tick batch document")
	}

	symbolValue, err := docString(doc, keyBatchSymbol)
	if err != nil {
		return nil, err
	}
	symbol, err := identifier.ParseSymbol(symbolValue)
	if err != nil {
		return nil, errors.Wrap(err, "key "+keyBatchSymbol)
	}

	rawValues, ok := doc[keyBatchValues]
	if !ok {
		return nil, errors.Wrap(exception.ErrMissingKey, "key "+keyBatchValues)
	}
	values, ok := rawValues.([]any)
	if !ok {
		return nil, errors.Wrapf(exception.ErrWrongValueKind, "key %s, want list, got %T", keyBatchValues, rawValues)
	}

	ticks := make([]model.Tick, len(values))
	for i, raw := range values {
		rendering, ok := raw.(string)
		if !ok {
			return nil, errors.Wrapf(exception.ErrWrongValueKind, "value at index %d, want string, got %T", i, raw)
		}
		tick, err := DecodeTick(symbol, []byte(rendering))
		if err != nil {
			return nil, errors.Wrapf(err, "decode tick at index %d", i)
		}
		ticks[i] = tick
	}
	return ticks, nil
}
