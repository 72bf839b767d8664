// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix keeps the (n+1)x(m+1) matrix; required for ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps the previous and current row only.
	TwoRows

	// NoMemory keeps a single row plus the running diagonal.
	NoMemory
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "two-rows"
	case NoMemory:
		return "no-memory"
	default:
		return "unknown"
	}
}

// Options configures DTW.
//
// Fields:
//   - Window: Sakoe-Chiba band |i-j| <= Window; -1 disables it.
//     Values below -1 are rejected.
//   - SlopePenalty: cost added to insertion/deletion steps (>= 0).
//   - ReturnPath: backtrack and return the alignment; needs FullMatrix.
//   - MemoryMode: DP storage strategy.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}

// Coord is one step of an alignment path: a[I] is matched with b[J].
type Coord struct {
	I, J int
}
