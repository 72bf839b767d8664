// Package timegrid produces the sampling grids that house models are
// evaluated on.
//
// The canonical grid is the half-hour day: DayLength (48) points
// 0, 1, …, 47, one per half-hour slot of a 24-hour day. It is computed once
// per process and handed out as copies, so every caller shares the same
// values without sharing memory.
//
// Other resolutions are built with New (length, start, step) or Span
// (inclusive bounds, n points). Consumers such as housemodel.Compute are
// grid-agnostic; only Default is tied to the half-hour convention.
//
//	day := timegrid.Default()                                 // 0..47
//	hourly, _ := timegrid.New(24, timegrid.WithStep(2))      // 0,2,..,46
//	fine, _ := timegrid.Span(0, 47, 95)                      // quarter-hour
package timegrid
