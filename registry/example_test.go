package registry_test

import (
	"fmt"

	"github.com/katalvlaran/loadprofile/registry"
	"github.com/katalvlaran/loadprofile/timegrid"
)

// ExampleNew computes every built-in archetype on the half-hour day and
// reports the slot of each evening peak.
func ExampleNew() {
	r, err := registry.New(timegrid.Default())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range r.Archetypes() {
		s, _ := r.Summary(a)
		fmt.Printf("%-11s peak_slot=%d\n", a, s.PeakIndex)
	}
	// Output:
	// AcornU      peak_slot=37
	// Adversity   peak_slot=36
	// Affluent    peak_slot=38
	// Comfortable peak_slot=37
}
