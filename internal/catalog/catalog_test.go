package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"main/internal/errors"
	"main/internal/identifier"
	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

func instrument(id, code string) model.Instrument {
	return model.Instrument{
		ID:            identifier.InstrumentID(id),
		Symbol:        identifier.Symbol{Code: code, Venue: enum.VenueOanda},
		QuoteCurrency: enum.CurrencyUSD,
		SecurityType:  enum.SecurityTypeForex,
		TickPrecision: 5,
		TickSize:      decimal.New(1, -5),
		Timestamp:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCatalogAddGet(t *testing.T) {
	c := New()

	if err := c.Add(instrument("AUDUSD-OANDA", "AUDUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err := c.Add(instrument("GBPUSD-OANDA", "GBPUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("length mismatch! should be 2 but got %d", c.Len())
	}

	inst, ok := c.Get(identifier.InstrumentID("AUDUSD-OANDA"))
	if !ok || inst.Symbol.Code != "AUDUSD" {
		t.Fatalf("lookup by id failed: %+v", inst)
	}

	inst, ok = c.GetBySymbol(identifier.Symbol{Code: "GBPUSD", Venue: enum.VenueOanda})
	if !ok || inst.ID != "GBPUSD-OANDA" {
		t.Fatalf("lookup by symbol failed: %+v", inst)
	}

	if _, ok := c.Get(identifier.InstrumentID("EURUSD-OANDA")); ok {
		t.Fatal("missing id should not be found")
	}
}

func TestCatalogDuplicate(t *testing.T) {
	c := New()
	if err := c.Add(instrument("AUDUSD-OANDA", "AUDUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	err := c.Add(instrument("AUDUSD-OANDA", "AUDUSD"))
	if !errors.Is(err, exception.ErrCatalogDuplicateID) {
		t.Fatalf("duplicate should fail with sentinel, got %+v", err)
	}
}

func TestCatalogSymbolIndexOneToOne(t *testing.T) {
	c := New()
	if err := c.Add(instrument("AUDUSD-OANDA", "AUDUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	err := c.Add(instrument("AUDUSD-OANDA-2", "AUDUSD"))
	if !errors.Is(err, exception.ErrCatalogDuplicateSymbol) {
		t.Fatalf("shared symbol should fail with sentinel, got %+v", err)
	}

	if err := c.Add(instrument("EURUSD-OANDA", "EURUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	// Replace may not steal a symbol still held by another instrument.
	stolen := instrument("EURUSD-OANDA", "AUDUSD")
	err = c.Replace(stolen)
	if !errors.Is(err, exception.ErrCatalogDuplicateSymbol) {
		t.Fatalf("symbol steal should fail with sentinel, got %+v", err)
	}
	inst, ok := c.GetBySymbol(identifier.Symbol{Code: "AUDUSD", Venue: enum.VenueOanda})
	if !ok || inst.ID != "AUDUSD-OANDA" {
		t.Fatalf("symbol index corrupted by rejected replace: %+v ok=%v", inst, ok)
	}

	// A symbol change on the owning instrument re-points the index.
	if err := c.Replace(instrument("AUDUSD-OANDA", "AUDCHF")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, ok := c.GetBySymbol(identifier.Symbol{Code: "AUDUSD", Venue: enum.VenueOanda}); ok {
		t.Fatal("old symbol should be unmapped after replace")
	}
	inst, ok = c.GetBySymbol(identifier.Symbol{Code: "AUDCHF", Venue: enum.VenueOanda})
	if !ok || inst.ID != "AUDUSD-OANDA" {
		t.Fatalf("new symbol lookup failed: %+v ok=%v", inst, ok)
	}
}

func TestCatalogReplace(t *testing.T) {
	c := New()
	if err := c.Add(instrument("AUDUSD-OANDA", "AUDUSD")); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	updated := instrument("AUDUSD-OANDA", "AUDUSD")
	updated.TickPrecision = 4
	if err := c.Replace(updated); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	inst, ok := c.Get(identifier.InstrumentID("AUDUSD-OANDA"))
	if !ok || inst.TickPrecision != 4 {
		t.Fatalf("replace did not stick: %+v", inst)
	}
	if c.Len() != 1 {
		t.Fatalf("length mismatch! should be 1 but got %d", c.Len())
	}

	err := c.Replace(instrument("EURUSD-OANDA", "EURUSD"))
	if !errors.Is(err, exception.ErrCatalogNotFound) {
		t.Fatalf("replace of missing id should fail with sentinel, got %+v", err)
	}
}

func TestCatalogListOrder(t *testing.T) {
	c := New()
	ids := []string{"AUDUSD-OANDA", "GBPUSD-OANDA", "EURUSD-OANDA"}
	codes := []string{"AUDUSD", "GBPUSD", "EURUSD"}
	for i := range ids {
		if err := c.Add(instrument(ids[i], codes[i])); err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
	}

	list := c.List()
	for i, inst := range list {
		if inst.ID.String() != ids[i] {
			t.Fatalf("order mismatch at %d! should be %s but got %s", i, ids[i], inst.ID)
		}
	}
}
