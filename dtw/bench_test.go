package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/loadprofile/dtw"
)

// dayShape returns an n-point evening bump centered at c.
func dayShape(n int, c float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Exp(-math.Pow(float64(i)-c, 2) / 18)
	}

	return out
}

// benchmarkDTW runs DTW on two shifted n-point shapes using opts.
func benchmarkDTW(b *testing.B, n int, opts dtw.Options) {
	x, y := dayShape(n, 0.75*float64(n)), dayShape(n, 0.75*float64(n)+2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(x, y, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrixDay benchmarks FullMatrix on the 48-point day.
func BenchmarkDTW_FullMatrixDay(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	benchmarkDTW(b, 48, opts)
}

// BenchmarkDTW_TwoRowsDay benchmarks TwoRows on the 48-point day.
func BenchmarkDTW_TwoRowsDay(b *testing.B) {
	benchmarkDTW(b, 48, dtw.DefaultOptions())
}

// BenchmarkDTW_NoMemoryWeek benchmarks NoMemory on a week of half-hours.
func BenchmarkDTW_NoMemoryWeek(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	benchmarkDTW(b, 7*48, opts)
}

// BenchmarkDTW_WindowWeek benchmarks a ±1 hour band on a week.
func BenchmarkDTW_WindowWeek(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 2
	benchmarkDTW(b, 7*48, opts)
}
