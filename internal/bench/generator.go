package bench

import (
	"math/rand/v2"

	"github.com/ajitpratap0/colframe/pkg/config"
)

// Generator produces random speed test rows. It is deterministic for a
// given seed and not safe for concurrent use.
type Generator struct {
	rng  *rand.Rand
	seed uint64
	cfg  config.BenchConfig
}

// NewGenerator creates a generator for cfg. A zero cfg.Seed picks a random
// seed, available from Seed.
func NewGenerator(cfg config.BenchConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
		cfg:  cfg,
	}
}

// Seed returns the seed in use
func (g *Generator) Seed() uint64 { return g.seed }

// Int32 returns a value in [-IntRange, IntRange]
func (g *Generator) Int32() int32 {
	r := int64(g.cfg.IntRange)
	return int32(g.rng.Int64N(2*r+1) - r) //nolint:gosec // bounded by IntRange
}

// Float32 returns a value in [-FloatRange, FloatRange)
func (g *Generator) Float32() float32 {
	return g.cfg.FloatRange * (2*g.rng.Float32() - 1)
}

// String returns a string of 'a'..'z' whose length is in
// [MinStringLen, MaxStringLen]
func (g *Generator) String() string {
	n := g.cfg.MinStringLen + g.rng.IntN(g.cfg.MaxStringLen-g.cfg.MinStringLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + g.rng.IntN(26))
	}
	return string(b)
}

// NumericRows returns n random numeric rows
func (g *Generator) NumericRows(n int) []NumericRow {
	rows := make([]NumericRow, n)
	for i := range rows {
		rows[i] = NumericRow{I: g.Int32(), F: g.Float32()}
	}
	return rows
}

// TextRows returns n random text rows
func (g *Generator) TextRows(n int) []TextRow {
	rows := make([]TextRow, n)
	for i := range rows {
		rows[i] = TextRow{A: g.String(), B: g.String()}
	}
	return rows
}
