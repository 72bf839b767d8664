// SPDX-License-Identifier: MIT
// Package series: sentinel errors.

package series

import "errors"

var (
	// ErrEmptyTable indicates a table without rows.
	ErrEmptyTable = errors.New("series: empty table")

	// ErrLengthMismatch indicates index and value columns of different length.
	ErrLengthMismatch = errors.New("series: column length mismatch")

	// ErrNonFinite indicates a NaN or ±Inf index or value.
	ErrNonFinite = errors.New("series: non-finite entry")

	// ErrUnordered indicates an index column that is not strictly increasing.
	ErrUnordered = errors.New("series: index not strictly increasing")

	// ErrBadHeader indicates a CSV header other than "index,value".
	ErrBadHeader = errors.New("series: unexpected csv header")
)
