// SPDX-License-Identifier: MIT
// Package forecast: sentinel errors.

package forecast

import "errors"

var (
	// ErrNotTrained indicates Forecast was called before a successful Train.
	ErrNotTrained = errors.New("forecast: model not trained")

	// ErrBadSteps indicates a non-positive forecast horizon.
	ErrBadSteps = errors.New("forecast: steps must be >= 1")

	// ErrShortHistory indicates a training table shorter than one season.
	ErrShortHistory = errors.New("forecast: history shorter than one season")

	// ErrMismatch indicates actual and predicted tables of different length.
	ErrMismatch = errors.New("forecast: actual/predicted length mismatch")
)
