// Package housemodel samples an archetype's mixture over a time grid to
// produce a day profile.
//
// A HouseModel binds one archetype tag to one immutable
// mixture.Distribution. Compute evaluates the distribution at every grid
// point, in grid order, and stores the resulting (t, value) pairs as the
// model's profile:
//
//	profile[i] = (grid[i], distribution.Evaluate(grid[i]))
//
// Guarantees:
//   - Deterministic: the same grid yields a bit-identical profile.
//   - Replace, never merge: a successful Compute fully replaces the previous
//     profile; a failed Compute leaves it untouched.
//   - Closed form: O(|grid|·|components|), no iteration, always terminates.
//
// Concurrency: a HouseModel is not internally locked. Compute on the same
// model from two goroutines is a data race; callers serialize it. Distinct
// models are independent. Once computed, read-only access is safe.
package housemodel
