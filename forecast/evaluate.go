// SPDX-License-Identifier: MIT
// Package forecast: forecast accuracy.

package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/loadprofile/series"
)

// Accuracy summarizes pointwise forecast error.
type Accuracy struct {
	MAE    float64 `yaml:"mae" json:"mae"`
	RMSE   float64 `yaml:"rmse" json:"rmse"`
	MaxAbs float64 `yaml:"max_abs" json:"max_abs"`
	// Correlation is Pearson's r; NaN when either side is constant.
	Correlation float64 `yaml:"correlation" json:"correlation"`
}

// Evaluate compares predicted against actual row by row. Indices are not
// compared; only the value columns and their lengths are.
func Evaluate(actual, predicted series.Table) (Accuracy, error) {
	if actual.Len() != predicted.Len() {
		return Accuracy{}, fmt.Errorf("Evaluate: %d vs %d rows: %w", actual.Len(), predicted.Len(), ErrMismatch)
	}
	if actual.Len() == 0 {
		return Accuracy{}, fmt.Errorf("Evaluate: %w", series.ErrEmptyTable)
	}

	a, p := actual.Values(), predicted.Values()
	n := float64(len(a))

	return Accuracy{
		MAE:         floats.Distance(a, p, 1) / n,
		RMSE:        floats.Distance(a, p, 2) / math.Sqrt(n),
		MaxAbs:      floats.Distance(a, p, math.Inf(1)),
		Correlation: stat.Correlation(a, p, nil),
	}, nil
}
