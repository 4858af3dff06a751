// Package: mazepath/generator
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on nil inputs; Generate itself never panics.
//   • Determinism is explicit: seed via WithSeed or pass a handle via WithRand.
//   • No package-level random state.

package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// Rand is the pseudo-random source consumed by Generate. *math/rand.Rand
// satisfies it; tests may supply a scripted source to force a carve order.
type Rand interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// Option customizes Generate.
type Option func(*config)

// config aggregates all generator knobs.
type config struct {
	rng     Rand
	onCarve func(grid.Coord)
}

// newConfig applies opts in order over clock-seeded defaults.
func newConfig(opts ...Option) config {
	cfg := config{onCarve: func(grid.Coord) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Equal seeds yield
// identical mazes for equal dimensions.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOnCarve registers a hook called for every cell turned from Wall to
// Open, in carve order, starting with (1,1). Panics on nil.
func WithOnCarve(fn func(cell grid.Coord)) Option {
	if fn == nil {
		panic("generator: WithOnCarve(nil)")
	}
	return func(c *config) {
		c.onCarve = fn
	}
}
