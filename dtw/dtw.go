package dtw

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options or non-finite samples.
	ErrBadInput = errors.New("dtw: invalid input")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
// A nil opts means DefaultOptions().
//
// Recurrence (1-based over the DP matrix D):
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1],
//	                                D[i-1][j] + SlopePenalty,
//	                                D[i][j-1] + SlopePenalty)
//
// Cells outside the window are +Inf, so a too-narrow window on sequences of
// different length yields +Inf rather than an error.
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(a, b, o); err != nil {
		return 0, nil, err
	}

	switch o.MemoryMode {
	case FullMatrix:
		dp := fullMatrix(a, b, o)
		distance = dp[len(a)][len(b)]
		if o.ReturnPath {
			path = backtrack(dp, o.SlopePenalty)
		}
	case TwoRows:
		distance = twoRows(a, b, o)
	default:
		distance = singleRow(a, b, o)
	}

	return distance, path, nil
}

func validate(a, b []float64, o Options) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return ErrBadInput
	}
	if o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory {
		return ErrBadInput
	}
	for _, s := range [][]float64{a, b} {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadInput
			}
		}
	}

	return nil
}

// outside reports whether cell (i,j) lies outside the Sakoe-Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

func fullMatrix(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) +
				min3(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
		}
	}

	return dp
}

func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) +
				min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func singleRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0] // D[i-1][0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j] // D[i-1][j]
			if outside(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) +
					min3(diag, up+o.SlopePenalty, row[j-1]+o.SlopePenalty)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n,m) to (1,1), preferring the diagonal on ties,
// and returns the 0-based alignment in forward order.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			match, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
			switch {
			case match <= up && match <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
