package mixture_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loadprofile/mixture"
)

// TestNewComponent_Validation checks every rejection class and that the
// accepted boundary (weight=0) passes.
func TestNewComponent_Validation(t *testing.T) {
	cases := []struct {
		name           string
		w, mean, sigma float64
		wantErr        bool
	}{
		{"valid", 1, 0, 1, false},
		{"zero weight allowed", 0, 10, 2, false},
		{"negative weight", -1, 0, 1, true},
		{"zero stddev", 1, 0, 0, true},
		{"negative stddev", 1, 0, -0.5, true},
		{"NaN mean", 1, math.NaN(), 1, true},
		{"Inf stddev", 1, 0, math.Inf(1), true},
		{"-Inf weight", math.Inf(-1), 0, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := mixture.NewComponent(tc.w, tc.mean, tc.sigma)
			if tc.wantErr {
				assert.ErrorIs(t, err, mixture.ErrInvalidParameter)
				assert.Equal(t, mixture.Component{}, c, "no component on failure")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.w, c.Weight())
			assert.Equal(t, tc.mean, c.Mean())
			assert.Equal(t, tc.sigma, c.StdDev())
		})
	}
}

// TestComponent_StandardNormalPeak checks 1·N(0,1) at 0 equals 1/√(2π).
func TestComponent_StandardNormalPeak(t *testing.T) {
	c, err := mixture.NewComponent(1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), c.Density(0), 1e-12)
	assert.InDelta(t, 0.39894, c.Density(0), 1e-5)
}

// TestComponent_DensityFormula compares against the closed form directly.
func TestComponent_DensityFormula(t *testing.T) {
	w, mu, sigma := 0.4, 16.0, 2.0
	c, err := mixture.NewComponent(w, mu, sigma)
	require.NoError(t, err)
	for _, x := range []float64{0, 10, 16, 17.5, 30} {
		want := w * (1 / (sigma * math.Sqrt(2*math.Pi))) * math.Exp(-(x-mu)*(x-mu)/(2*sigma*sigma))
		assert.InDelta(t, want, c.Density(x), 1e-12, "x=%v", x)
	}
}

// TestNew_Empty verifies that zero components are rejected.
func TestNew_Empty(t *testing.T) {
	d, err := mixture.New()
	assert.ErrorIs(t, err, mixture.ErrEmptyMixture)
	assert.Nil(t, d)

	d, err = mixture.FromParams(nil)
	assert.ErrorIs(t, err, mixture.ErrEmptyMixture)
	assert.Nil(t, d)
}

// TestNew_ZeroValueComponent verifies that an unvalidated Component is rejected.
func TestNew_ZeroValueComponent(t *testing.T) {
	d, err := mixture.New(mixture.Component{})
	assert.ErrorIs(t, err, mixture.ErrInvalidParameter)
	assert.Nil(t, d)
}

// TestFromParams_RejectsBadEntry verifies that one bad entry aborts the whole build.
func TestFromParams_RejectsBadEntry(t *testing.T) {
	d, err := mixture.FromParams([]mixture.Params{
		{Weight: 0.5, Mean: 10, StdDev: 2},
		{Weight: -1, Mean: 20, StdDev: 2},
	})
	assert.ErrorIs(t, err, mixture.ErrInvalidParameter)
	assert.Nil(t, d)
}

// TestEvaluate_SumOfDensities checks Evaluate is the plain sum of its terms.
func TestEvaluate_SumOfDensities(t *testing.T) {
	a, err := mixture.NewComponent(0.4, 16, 2)
	require.NoError(t, err)
	b, err := mixture.NewComponent(0.6, 36, 3)
	require.NoError(t, err)
	d, err := mixture.New(a, b)
	require.NoError(t, err)

	for _, x := range []float64{0, 16, 26, 36, 47} {
		assert.Equal(t, a.Density(x)+b.Density(x), d.Evaluate(x), "x=%v", x)
	}
}

// TestEvaluate_NonNegative sweeps valid mixtures over a wide range of x.
func TestEvaluate_NonNegative(t *testing.T) {
	d, err := mixture.FromParams([]mixture.Params{
		{Weight: 0, Mean: 0, StdDev: 1},
		{Weight: 3, Mean: -1e3, StdDev: 1e-3},
		{Weight: 0.2, Mean: 24, StdDev: 50},
	})
	require.NoError(t, err)
	for _, x := range []float64{-1e308, -1e6, -1000, -1, 0, 0.5, 24, 1e6, 1e308} {
		v := d.Evaluate(x)
		assert.GreaterOrEqual(t, v, 0.0, "x=%v", x)
		assert.False(t, math.IsNaN(v), "x=%v", x)
	}
}

// TestEvaluate_TinyStdDev verifies a valid σ whose square underflows still
// yields a non-negative, non-NaN density at and around the mean.
func TestEvaluate_TinyStdDev(t *testing.T) {
	c, err := mixture.NewComponent(1, 10, 1e-170)
	require.NoError(t, err)
	d, err := mixture.New(c)
	require.NoError(t, err)

	for _, x := range []float64{10, 10 + 1e-170, 10 + 1e-160, 9, 0, 1e308} {
		v := d.Evaluate(x)
		assert.False(t, math.IsNaN(v), "x=%v", x)
		assert.GreaterOrEqual(t, v, 0.0, "x=%v", x)
	}
	assert.Greater(t, d.Evaluate(10), 0.0)
	assert.Equal(t, 0.0, d.Evaluate(9))
}

// TestEvaluate_NotNormalized verifies weights are used raw.
func TestEvaluate_NotNormalized(t *testing.T) {
	one, err := mixture.FromParams([]mixture.Params{{Weight: 1, Mean: 0, StdDev: 1}})
	require.NoError(t, err)
	two, err := mixture.FromParams([]mixture.Params{{Weight: 2, Mean: 0, StdDev: 1}})
	require.NoError(t, err)

	assert.InDelta(t, 2*one.Evaluate(0.3), two.Evaluate(0.3), 1e-15)
	assert.Equal(t, 2.0, two.TotalWeight())
}

// TestEvaluate_Deterministic verifies bit-identical repeated evaluation.
func TestEvaluate_Deterministic(t *testing.T) {
	d, err := mixture.FromParams([]mixture.Params{
		{Weight: 0.4, Mean: 16, StdDev: 2},
		{Weight: 0.6, Mean: 36, StdDev: 3},
	})
	require.NoError(t, err)
	xs := []float64{0, 1.5, 16, 36, 47}
	first := d.EvaluateAll(xs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.EvaluateAll(xs))
	}
}

// TestDistribution_Immutable verifies the caller cannot mutate internal state.
func TestDistribution_Immutable(t *testing.T) {
	a, _ := mixture.NewComponent(1, 0, 1)
	b, _ := mixture.NewComponent(2, 5, 1)
	in := []mixture.Component{a, b}
	d, err := mixture.New(in...)
	require.NoError(t, err)

	in[0] = b
	got := d.Components()
	got[1] = a
	assert.Equal(t, []mixture.Params{
		{Weight: 1, Mean: 0, StdDev: 1},
		{Weight: 2, Mean: 5, StdDev: 1},
	}, d.Params(), "insertion order and values preserved")
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "1·N(0, 1) + 2·N(5, 1)", d.String())
}
