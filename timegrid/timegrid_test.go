package timegrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loadprofile/timegrid"
)

// TestDefault_CanonicalDay verifies the 48-point 0..47 unit-step grid.
func TestDefault_CanonicalDay(t *testing.T) {
	g := timegrid.Default()
	require.Len(t, g, timegrid.DayLength)
	for i, v := range g {
		assert.Equal(t, float64(i), v, "point %d", i)
	}
}

// TestDefault_ReturnsCopy verifies callers cannot corrupt the shared grid.
func TestDefault_ReturnsCopy(t *testing.T) {
	g := timegrid.Default()
	g[0] = 99
	assert.Equal(t, 0.0, timegrid.Default()[0])
}

// TestNew_StartStep verifies arbitrary resolutions.
func TestNew_StartStep(t *testing.T) {
	g, err := timegrid.New(4, timegrid.WithStart(0.5), timegrid.WithStep(0.25))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.75, 1.0, 1.25}, g)

	g, err = timegrid.New(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, g, "defaults are start=0 step=1")
}

// TestNew_BadLength verifies that n<1 is rejected.
func TestNew_BadLength(t *testing.T) {
	for _, n := range []int{0, -3} {
		g, err := timegrid.New(n)
		assert.ErrorIs(t, err, timegrid.ErrInvalidGrid)
		assert.Nil(t, g)
	}
}

// TestNew_Overflow verifies that a grid running off to +Inf is rejected.
func TestNew_Overflow(t *testing.T) {
	_, err := timegrid.New(3, timegrid.WithStart(math.MaxFloat64), timegrid.WithStep(math.MaxFloat64))
	assert.ErrorIs(t, err, timegrid.ErrInvalidGrid)
}

// TestOptions_Panic verifies option constructors reject nonsense eagerly.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { timegrid.WithStep(0) })
	assert.Panics(t, func() { timegrid.WithStep(-1) })
	assert.Panics(t, func() { timegrid.WithStep(math.NaN()) })
	assert.Panics(t, func() { timegrid.WithStart(math.Inf(-1)) })
	assert.NotPanics(t, func() { timegrid.WithStart(-12) })
}

// TestHourly verifies the 24-point hourly grid on the half-hour axis.
func TestHourly(t *testing.T) {
	g := timegrid.Hourly()
	require.Len(t, g, 24)
	assert.Equal(t, 0.0, g[0])
	assert.Equal(t, 46.0, g[23])
}

// TestSpan verifies inclusive spacing and rejection rules.
func TestSpan(t *testing.T) {
	g, err := timegrid.Span(0, 47, 95)
	require.NoError(t, err)
	require.Len(t, g, 95)
	assert.Equal(t, 0.0, g[0])
	assert.InDelta(t, 0.5, g[1], 1e-12)
	assert.InDelta(t, 47.0, g[94], 1e-12)

	_, err = timegrid.Span(0, 1, 1)
	assert.ErrorIs(t, err, timegrid.ErrInvalidGrid)
	_, err = timegrid.Span(5, 5, 3)
	assert.ErrorIs(t, err, timegrid.ErrInvalidGrid)
	_, err = timegrid.Span(math.NaN(), 5, 3)
	assert.ErrorIs(t, err, timegrid.ErrInvalidGrid)
}

// TestValidate covers empty and non-finite grids.
func TestValidate(t *testing.T) {
	assert.NoError(t, timegrid.Validate([]float64{3, 1, 2}))
	assert.ErrorIs(t, timegrid.Validate(nil), timegrid.ErrInvalidGrid)
	assert.ErrorIs(t, timegrid.Validate([]float64{}), timegrid.ErrInvalidGrid)
	assert.ErrorIs(t, timegrid.Validate([]float64{0, math.NaN()}), timegrid.ErrInvalidGrid)
	assert.ErrorIs(t, timegrid.Validate([]float64{math.Inf(1)}), timegrid.ErrInvalidGrid)
}
