package identifier

import (
	"strconv"

	"main/internal/check"
	"main/internal/clock"
	"main/pkg/exception"
)

const datetimeTagLayout = "20060102-150405"

// Generator mints unique, lexically sortable identifier strings of the form
//
//	{prefix}-{YYYYMMDD}-{HHMMSS}-{trader}-{strategy}-{counter}
//
// The datetime tag is read fresh from the clock on every call; uniqueness
// within a second comes from the counter, never from the timestamp.
//
// A Generator is owned by a single (trader, strategy) pairing and is not safe
// for concurrent use: callers sharing one across goroutines must serialize
// access, and Reset requires a quiescent point with no Generate in flight.
type Generator struct {
	prefix   string
	trader   TraderID
	strategy StrategyID
	clock    clock.Clock
	count    int
}

// NewGenerator validates the tags and returns a generator with counter zero.
func NewGenerator(prefix string, trader TraderID, strategy StrategyID, clk clock.Clock) (*Generator, error) {
	if err := check.ValidString(prefix, "prefix"); err != nil {
		return nil, err
	}
	if err := check.ValidString(string(trader), "trader"); err != nil {
		return nil, err
	}
	if err := check.ValidString(string(strategy), "strategy"); err != nil {
		return nil, err
	}
	if clk == nil {
		return nil, exception.ErrNilClock
	}
	return &Generator{
		prefix:   prefix,
		trader:   trader,
		strategy: strategy,
		clock:    clk,
	}, nil
}

// Generate increments the counter and composes the next identifier string.
func (g *Generator) Generate() string {
	g.count++
	tag := g.clock.Now().UTC().Format(datetimeTagLayout)

	var b []byte
	b = append(b, g.prefix...)
	b = append(b, '-')
	b = append(b, tag...)
	b = append(b, '-')
	b = append(b, g.trader...)
	b = append(b, '-')
	b = append(b, g.strategy...)
	b = append(b, '-')
	b = strconv.AppendInt(b, int64(g.count), 10)
	return string(b)
}

// Count returns the number of identifiers generated since the last reset.
func (g *Generator) Count() int {
	return g.count
}

// Reset returns the counter to zero. Session-boundary use only; no Generate
// call may be in flight.
func (g *Generator) Reset() {
	g.count = 0
}

// OrderIDGenerator mints OrderID values with the "O" prefix.
type OrderIDGenerator struct {
	gen *Generator
}

func NewOrderIDGenerator(trader TraderID, strategy StrategyID, clk clock.Clock) (*OrderIDGenerator, error) {
	gen, err := NewGenerator("O", trader, strategy, clk)
	if err != nil {
		return nil, err
	}
	return &OrderIDGenerator{gen: gen}, nil
}

func (g *OrderIDGenerator) Generate() OrderID {
	return OrderID(g.gen.Generate())
}

func (g *OrderIDGenerator) Count() int {
	return g.gen.Count()
}

func (g *OrderIDGenerator) Reset() {
	g.gen.Reset()
}

// PositionIDGenerator mints PositionID values with the "P" prefix.
type PositionIDGenerator struct {
	gen *Generator
}

func NewPositionIDGenerator(trader TraderID, strategy StrategyID, clk clock.Clock) (*PositionIDGenerator, error) {
	gen, err := NewGenerator("P", trader, strategy, clk)
	if err != nil {
		return nil, err
	}
	return &PositionIDGenerator{gen: gen}, nil
}

func (g *PositionIDGenerator) Generate() PositionID {
	return PositionID(g.gen.Generate())
}

func (g *PositionIDGenerator) Count() int {
	return g.gen.Count()
}

func (g *PositionIDGenerator) Reset() {
	g.gen.Reset()
}
