// Package loadprofile generates synthetic household electricity demand
// profiles: one day of relative demand per household archetype, sampled on
// a half-hourly time grid and handed on as a two-column table.
//
// What is a profile?
//
//	Each archetype (a household category such as Affluent or Adversity)
//	carries an ordered table of weighted Gaussian components. The profile
//	is the weighted sum of their densities evaluated at every grid point:
//
//		p(t) = Σ wᵢ · N(t; μᵢ, σᵢ)
//
//	Weights are used as stored; a table whose weights do not sum to 1
//	scales the profile rather than being renormalized.
//
// Packages:
//
//	mixture/    Gaussian components and their weighted sum
//	catalogue/  versioned archetype parameter tables (YAML dump/load)
//	timegrid/   the canonical 48-slot day grid and other evenly spaced grids
//	housemodel/ one archetype's model: compute, stored profile, summary
//	series/     the (index, value) handoff table with CSV/YAML/JSON codecs
//	forecast/   the Forecaster boundary, a seasonal-naive baseline, accuracy
//	dtw/        dynamic time warping for comparing profile shapes
//	registry/   every archetype computed once on one grid, read-only after
//	config/     YAML run configuration for the command
//	cmd/loadprofile  the command-line front end
//
// Quick example:
//
//	r, err := registry.New(timegrid.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	t, _ := r.Table(catalogue.Affluent)
//	_ = t.WriteCSV(os.Stdout)
//
// Grid slots:
//
//	slot  0 ──── 00:00
//	slot 16 ──── 08:00   morning shoulder
//	slot 36 ──── 18:00   evening peak
//	slot 47 ──── 23:30
package loadprofile
