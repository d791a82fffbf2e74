// Package catalog keeps instrument reference data in memory for lookup by
// the layers that encode and decode market data.
package catalog

import (
	"main/internal/identifier"
	"main/internal/model"
	"main/pkg/exception"
)

// Catalog stores instruments keyed by instrument ID and by symbol.
// An update replaces the stored record wholesale via Replace.
type Catalog struct {
	instruments []model.Instrument
	byID        map[identifier.InstrumentID]int
	bySymbol    map[identifier.Symbol]int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID:     make(map[identifier.InstrumentID]int),
		bySymbol: make(map[identifier.Symbol]int),
	}
}

// Add registers a new instrument. A duplicate ID or symbol is rejected; both
// indexes stay one-to-one.
func (c *Catalog) Add(inst model.Instrument) error {
	if _, ok := c.byID[inst.ID]; ok {
		return exception.ErrCatalogDuplicateID
	}
	if _, ok := c.bySymbol[inst.Symbol]; ok {
		return exception.ErrCatalogDuplicateSymbol
	}
	idx := len(c.instruments)
	c.instruments = append(c.instruments, inst)
	c.byID[inst.ID] = idx
	c.bySymbol[inst.Symbol] = idx
	return nil
}

// Replace swaps the stored record for the instrument's ID. A symbol change
// re-points the symbol index; taking another instrument's symbol is rejected.
func (c *Catalog) Replace(inst model.Instrument) error {
	idx, ok := c.byID[inst.ID]
	if !ok {
		return exception.ErrCatalogNotFound
	}
	if other, ok := c.bySymbol[inst.Symbol]; ok && other != idx {
		return exception.ErrCatalogDuplicateSymbol
	}
	delete(c.bySymbol, c.instruments[idx].Symbol)
	c.instruments[idx] = inst
	c.bySymbol[inst.Symbol] = idx
	return nil
}

// Get looks up an instrument by ID.
func (c *Catalog) Get(id identifier.InstrumentID) (model.Instrument, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Instrument{}, false
	}
	return c.instruments[idx], true
}

// GetBySymbol looks up an instrument by its symbol.
func (c *Catalog) GetBySymbol(symbol identifier.Symbol) (model.Instrument, bool) {
	idx, ok := c.bySymbol[symbol]
	if !ok {
		return model.Instrument{}, false
	}
	return c.instruments[idx], true
}

// List returns the instruments in insertion order.
func (c *Catalog) List() []model.Instrument {
	out := make([]model.Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Len returns the number of stored instruments.
func (c *Catalog) Len() int {
	return len(c.instruments)
}
