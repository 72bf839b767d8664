// Package catalogue holds the calibrated mixture parameter tables, one per
// household archetype.
//
// The built-in catalogue (Default) is a process-wide constant: it is built
// and validated once, exposes only read methods, and hands out copies. Adding
// an archetype means adding a tag and a table row in tables.go; evaluation
// code never changes.
//
// Custom catalogues (New) follow the same rules and exist for resampling
// experiments and tests. Every table is validated at construction, so a
// malformed table is rejected before any model is built from it.
package catalogue
