package game

import (
	"io"
	"log"
	"math/rand/v2"

	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
)

type config struct {
	logger   *log.Logger
	rng      system.RandomSource
	source   input.Source
	bindings input.Bindings
}

// Option configures a Simulation.
type Option func(*config)

// WithLogger sends simulation events and script failures to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithRandom sets the source that resolves random power-up choices.
func WithRandom(rng system.RandomSource) Option {
	return func(c *config) { c.rng = rng }
}

// WithSeed resolves random choices from a PCG seeded with seed, so a run
// can be replayed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithInput sets the key source sampled every tick.
func WithInput(src input.Source) Option {
	return func(c *config) { c.source = src }
}

// WithBindings overrides the bindings taken from the player spec.
func WithBindings(b input.Bindings) Option {
	return func(c *config) { c.bindings = b }
}

func defaultConfig() config {
	return config{
		logger: log.New(io.Discard, "", 0),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}
