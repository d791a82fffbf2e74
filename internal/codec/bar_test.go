package codec

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/pkg/exception"
)

func TestDecodeBar(t *testing.T) {
	bar, err := DecodeBar([]byte("1.00002,1.00010,1.00000,1.00008,350000,2024-01-05T10:00:00Z"))
	require.NoError(t, err)

	assert.Equal(t, "1.00002", bar.Open.String())
	assert.Equal(t, "1.0001", bar.High.String())
	assert.Equal(t, "1", bar.Low.String())
	assert.Equal(t, "1.00008", bar.Close.String())
	assert.Equal(t, "350000", bar.Volume.String())
	assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), bar.Time)
}

func TestDecodeBarRoundTrip(t *testing.T) {
	original := model.Bar{
		Open:   decimal.RequireFromString("1.00002"),
		High:   decimal.RequireFromString("1.0001"),
		Low:    decimal.RequireFromString("1"),
		Close:  decimal.RequireFromString("1.00008"),
		Volume: decimal.RequireFromString("350000"),
		Time:   time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	}

	decoded, err := DecodeBar([]byte(original.String()))
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded), "round trip mismatch: %s vs %s", original, decoded)
}

func TestDecodeBarMalformed(t *testing.T) {
	testCases := []struct {
		desc    string
		payload string
	}{
		{"too few fields", "1,2,3,4,5"},
		{"bad open", "x,2,1,2,5,2024-01-05T10:00:00Z"},
		{"bad volume", "1,2,1,2,x,2024-01-05T10:00:00Z"},
		{"bad timestamp", "1,2,1,2,5,yesterday"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := DecodeBar([]byte(tc.payload))
			assert.Error(t, err)
		})
	}

	_, err := DecodeBar([]byte("1,2,3"))
	assert.ErrorIs(t, err, exception.ErrBarFieldCount)
}

func TestDecodeBarsPreservesOrder(t *testing.T) {
	payloads := [][]byte{
		[]byte("1.00002,1.00010,1.00000,1.00008,100,2024-01-05T10:00:00Z"),
		[]byte("1.00008,1.00012,1.00004,1.00010,200,2024-01-05T10:01:00Z"),
		[]byte("1.00010,1.00015,1.00007,1.00009,300,2024-01-05T10:02:00Z"),
	}

	bars, err := DecodeBars(payloads)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	assert.Equal(t, "100", bars[0].Volume.String())
	assert.Equal(t, "200", bars[1].Volume.String())
	assert.Equal(t, "300", bars[2].Volume.String())
}

func TestDecodeBarsFailsFast(t *testing.T) {
	payloads := [][]byte{
		[]byte("1.00002,1.00010,1.00000,1.00008,100,2024-01-05T10:00:00Z"),
		[]byte("not a bar"),
		[]byte("1.00010,1.00015,1.00007,1.00009,300,2024-01-05T10:02:00Z"),
	}

	bars, err := DecodeBars(payloads)
	assert.Error(t, err)
	assert.Nil(t, bars)
	assert.Contains(t, err.Error(), "index 1")
}
