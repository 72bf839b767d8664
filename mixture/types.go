// SPDX-License-Identifier: MIT
// Package mixture: parameter bundle exchanged with catalogues.

package mixture

// Params is the raw, unvalidated parameter triple of one Gaussian term.
// It is plain data: catalogues store Params, and ComponentFrom / FromParams turn
// them into validated Components.
type Params struct {
	Weight float64 `yaml:"weight" json:"weight"`
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"stddev" json:"stddev"`
}
