// Package builder generates random weighted directed graphs for the
// shortest-path benchmarks.
//
// The model follows the density convention used throughout pathmetry:
// density is the ratio of a node's outbound edges to the maximum possible
// (n−1). Each node's actual out-degree is drawn from a normal distribution
// centered at density·(n−1) and clamped into [0, n−1], so there is no
// connectivity guarantee — disconnected results are valid inputs for the
// algorithms (unreached nodes simply stay at +Inf).
//
// Determinism: every stochastic path flows through one rand.Rand seeded
// via WithSeed. The same (n, density, options) always yields an identical
// graph, which the cross-variant equivalence tests rely on.
//
// Errors (sentinel):
//
//	ErrTooFewNodes       — n < 1.
//	ErrInvalidDensity    — density outside [0, 1].
//	ErrInvalidWeightRange — min > max or min < 0.
//	ErrInvalidStdDev     — negative standard deviation.
package builder
