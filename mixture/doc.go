// Package mixture evaluates weighted superpositions of Gaussian densities.
//
// A Distribution is an ordered, immutable set of Components. Each Component
// is one weighted normal density term:
//
//	density(x) = w * 1/(σ√(2π)) * exp(-(x-μ)² / (2σ²))
//
// and the Distribution value at x is the plain sum of its component
// densities:
//
//	Evaluate(x) = Σ density_i(x)
//
// Weights are NOT normalized. A mixture whose weights sum to 0.7 yields a
// curve whose integral is 0.7; callers that need a probability density must
// normalize themselves. The engine computes expected values only, it never
// draws random samples.
//
// Validation policy:
//   - Component parameters are validated once, at construction
//     (NewComponent / ComponentFrom). Evaluation never fails.
//   - A Distribution with zero components is rejected (ErrEmptyMixture).
//
// Complexity:
//   - Component.Density: O(1).
//   - Distribution.Evaluate: O(k) for k components.
//   - Distribution.EvaluateAll: O(n·k) for n points.
//
// All values are immutable after construction and safe for concurrent use.
package mixture
