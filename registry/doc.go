// Package registry builds one house model per archetype, computes each
// profile once, and then serves them read-only.
//
// A Registry is an explicit value, constructed once and passed to whoever
// needs profiles; there is no package-level instance. Construction is
// all-or-nothing: the first archetype that fails to build or compute
// aborts New and no Registry is returned.
//
// After New returns, a Registry is immutable and every method is safe for
// concurrent use without locking. The HouseModels it owns are never handed
// out; callers receive copies of their profiles, tables and summaries.
package registry
