package codec

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/identifier"
	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

func audusdSymbol(t *testing.T) identifier.Symbol {
	t.Helper()
	symbol, err := identifier.NewSymbol("AUDUSD", enum.VenueOanda)
	require.NoError(t, err)
	return symbol
}

func TestDecodeTick(t *testing.T) {
	symbol := audusdSymbol(t)

	tick, err := DecodeTick(symbol, []byte("0.66201,0.66204,2024-01-05T09:30:15.123456789Z"))
	require.NoError(t, err)

	assert.Equal(t, symbol, tick.Symbol)
	assert.Equal(t, "0.66201", tick.Bid.String())
	assert.Equal(t, "0.66204", tick.Ask.String())
	assert.Equal(t, time.Date(2024, 1, 5, 9, 30, 15, 123456789, time.UTC), tick.Time)
}

func TestDecodeTickRoundTrip(t *testing.T) {
	symbol := audusdSymbol(t)
	original := model.Tick{
		Symbol: symbol,
		Bid:    decimal.RequireFromString("1.00013"),
		Ask:    decimal.RequireFromString("1.00015"),
		Time:   time.Date(2024, 1, 5, 9, 30, 15, 500000000, time.UTC),
	}

	decoded, err := DecodeTick(symbol, []byte(original.String()))
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded), "round trip mismatch: %s vs %s", original, decoded)
}

func TestDecodeTickMalformed(t *testing.T) {
	symbol := audusdSymbol(t)

	testCases := []struct {
		desc    string
		payload string
	}{
		{"too few fields", "0.66201,0.66204"},
		{"too many fields", "0.66201,0.66204,2024-01-05T09:30:15Z,extra"},
		{"bad bid", "abc,0.66204,2024-01-05T09:30:15Z"},
		{"bad ask", "0.66201,,2024-01-05T09:30:15Z"},
		{"bad timestamp", "0.66201,0.66204,20240105"},
		{"empty", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := DecodeTick(symbol, []byte(tc.payload))
			assert.Error(t, err)
		})
	}
}

func TestDecodeTickFieldCountSentinel(t *testing.T) {
	_, err := DecodeTick(audusdSymbol(t), []byte("1,2"))
	assert.ErrorIs(t, err, exception.ErrTickFieldCount)
}
