package cloud

import (
	"io"

	"github.com/charmbracelet/log"
)

// Defaults for the search parameters. Only the shape of the search matters;
// these constants trade reach and granularity for iteration count.
const (
	DefaultMaxDistance = 2048.0
	DefaultIncrement   = 1.0 / 2048
	DefaultMaxCycles   = 6
)

// maxCyclesLimit keeps the angular step representable as pi/2^k.
const maxCyclesLimit = 30

// Option configures a Layouter.
type Option func(*config)

type config struct {
	maxDistance float64
	increment   float64
	maxCycles   int
	maxProbes   int
	newIndex    IndexFactory
	logger      *log.Logger
}

func defaultConfig() config {
	return config{
		maxDistance: DefaultMaxDistance,
		increment:   DefaultIncrement,
		maxCycles:   DefaultMaxCycles,
		newIndex:    NewScanIndex,
		logger:      log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithMaxDistance sets how far, in pixels, rays reach from the center
// (default 2048). Tags that cannot be placed within this radius fail with
// SEARCH_EXHAUSTED.
func WithMaxDistance(d float64) Option {
	return func(c *config) {
		if d > 0 {
			c.maxDistance = d
		}
	}
}

// WithIncrement sets the ray step as a fraction of the max distance
// (default 1/2048). Values outside (0, 1] are ignored.
func WithIncrement(inc float64) Option {
	return func(c *config) {
		if inc > 0 && inc <= 1 {
			c.increment = inc
		}
	}
}

// WithMaxCycles bounds how many times the prober halves its angular step
// (default 6, a finest step of pi/64).
func WithMaxCycles(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxCycles = min(n, maxCyclesLimit)
		}
	}
}

// WithMaxProbes caps the number of directions a single placement may probe.
// The default is derived from the max cycle count.
func WithMaxProbes(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxProbes = n
		}
	}
}

// WithIndex selects the spatial index implementation (default [NewScanIndex]).
func WithIndex(f IndexFactory) Option {
	return func(c *config) {
		if f != nil {
			c.newIndex = f
		}
	}
}

// WithLogger attaches a logger; placements are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
