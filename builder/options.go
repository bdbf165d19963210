// Package builder: functional configuration for the random generator.
// Defaults are documented constants; WithX constructors validate nothing
// themselves — RandomGraph validates the resolved configuration once,
// fail-fast, and returns sentinel errors (never panics).
package builder

import "errors"

// Sentinel errors for generator configuration and parameters.
var (
	// ErrTooFewNodes indicates a node count below 1.
	ErrTooFewNodes = errors.New("builder: node count must be at least 1")

	// ErrInvalidDensity indicates a density outside the closed interval [0,1].
	ErrInvalidDensity = errors.New("builder: density must be in [0,1]")

	// ErrInvalidWeightRange indicates min > max or a negative minimum weight.
	ErrInvalidWeightRange = errors.New("builder: invalid weight range")

	// ErrInvalidStdDev indicates a negative out-degree standard deviation.
	ErrInvalidStdDev = errors.New("builder: standard deviation must be non-negative")
)

// Defaults (single source of truth).
const (
	// DefaultSeed seeds the generator when WithSeed is not supplied.
	DefaultSeed int64 = 1

	// DefaultMinWeight and DefaultMaxWeight bound generated integer weights,
	// inclusive on both ends.
	DefaultMinWeight = 1
	DefaultMaxWeight = 10

	// defaultStdDevFactor scales the derived out-degree standard deviation:
	// 0.2 · density · (n−1) when WithStdDev is not supplied.
	defaultStdDevFactor = 0.2
)

// derivedStdDev marks "derive from density and n" in the resolved config.
const derivedStdDev = -1.0

// Options holds the resolved generator configuration.
type Options struct {
	Seed      int64
	MinWeight int
	MaxWeight int
	StdDev    float64 // derivedStdDev means 0.2·density·(n−1)
}

// Option is a functional option for RandomGraph.
type Option func(*Options)

// WithSeed fixes the random source so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWeightRange sets the inclusive integer range edge weights are drawn
// from. Both bounds must be non-negative and min ≤ max.
func WithWeightRange(min, max int) Option {
	return func(o *Options) {
		o.MinWeight = min
		o.MaxWeight = max
	}
}

// WithStdDev overrides the derived out-degree standard deviation.
func WithStdDev(sd float64) Option {
	return func(o *Options) { o.StdDev = sd }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		MinWeight: DefaultMinWeight,
		MaxWeight: DefaultMaxWeight,
		StdDev:    derivedStdDev,
	}
}
