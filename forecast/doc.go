// Package forecast defines the boundary to forecasting consumers of
// generated profiles and ships a seasonal-naive baseline.
//
// A Forecaster is trained on a series.Table of historical (index, value)
// rows and produces n future rows that continue the index with the
// training step:
//
//	Train(table) error
//	Forecast(n) (series.Table, error)
//
// Model fitting is out of scope here; any regression or time-series
// learner can sit behind the interface. SeasonalNaive repeats the last
// observed season and is what the CLI uses. Evaluate scores a forecast
// against held-out rows.
package forecast
