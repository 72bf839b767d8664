// Package dtw computes Dynamic Time Warping distances between numeric
// series. Here it compares demand profiles whose peaks may be shifted by a
// few slots: two archetypes with the same evening peak at 18:00 and 18:30
// are far apart pointwise but close under DTW.
//
// Key features:
//   - three memory modes: FullMatrix (path recovery), TwoRows and NoMemory
//     (O(m) memory, distance only);
//   - optional Sakoe-Chiba window (|i-j| <= Window);
//   - slope penalty on insertion/deletion steps;
//   - on-demand alignment path (ReturnPath, FullMatrix only).
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 2 // ±1 hour on the half-hour grid
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Performance:
//   - Time:   O(n·m), or O(n·w) touched cells inside a window.
//   - Memory: O(n·m) for FullMatrix, O(m) otherwise.
package dtw
