package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/zephyrtronium/graphcalc"
	"github.com/zephyrtronium/graphcalc/graph"
	"github.com/zephyrtronium/graphcalc/roots"
)

func xs(pts []graph.Point) []float64 {
	r := make([]float64, len(pts))
	for i, p := range pts {
		r[i] = p.X
	}
	return r
}

func TestIntersections(t *testing.T) {
	s, err := graph.NewSheet("x^2", "x+2")
	require.NoError(t, err)
	got, err := graph.Intersections(graph.IntersectionFinder(), s, graph.Window{Min: -5, Max: 5}, graph.DefaultSubintervals)
	require.NoError(t, err)
	require.Len(t, got, 2)
	want := []graph.Point{{X: -1, Y: 1}, {X: 2, Y: 4}}
	for i, p := range got {
		assert.Equal(t, 1, p.With)
		assert.InDelta(t, want[i].X, p.X, 1e-9)
		assert.InDelta(t, want[i].Y, p.Y, 1e-9)
		assert.Equal(t, want[i], p.Point.Round(graph.IntersectionDigits))
	}

	// Switching the active function reports the same points with the other
	// function's values, which here are the same.
	require.NoError(t, s.SetActive(1))
	got, err = graph.Intersections(graph.IntersectionFinder(), s, graph.Window{Min: -5, Max: 5}, graph.DefaultSubintervals)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].With)
}

func TestIntersectionsSeveral(t *testing.T) {
	s, err := graph.NewSheet("0", "x", "x-1", "x^2+1")
	require.NoError(t, err)
	got, err := graph.Intersections(graph.IntersectionFinder(), s, graph.Window{Min: -3, Max: 3}, 600)
	require.NoError(t, err)
	require.Len(t, got, 2, "got %v", got)
	assert.Equal(t, 1, got[0].With)
	assert.InDelta(t, 0, got[0].X, 1e-9)
	assert.Equal(t, 2, got[1].With)
	assert.InDelta(t, 1, got[1].X, 1e-9)
}

func TestZerosDropPoles(t *testing.T) {
	tan := graphcalc.MustCompile("tan(x)")
	w := graph.Window{Min: -5, Max: 5}
	f := graph.ZeroFinder()

	raw, err := f.FindAllRoots(tan, w.Min, w.Max, graph.DefaultSubintervals)
	require.NoError(t, err)

	got, err := graph.Zeros(f, tan, w, graph.DefaultSubintervals)
	require.NoError(t, err)
	want := []float64{-math.Pi, 0, math.Pi}
	require.Len(t, got, len(want), "got %v", got)
	assert.True(t, floats.EqualApprox(xs(got), want, 1e-9), "want %v, got %v", want, xs(got))
	assert.Greater(t, len(raw), len(got), "asymptotes should have looked like roots")
	for _, p := range got {
		assert.Zero(t, p.Y)
	}
}

func TestIntersectionsDropPoles(t *testing.T) {
	s, err := graph.NewSheet("tan(x)", "0")
	require.NoError(t, err)
	got, err := graph.Intersections(graph.IntersectionFinder(), s, graph.Window{Min: -5, Max: 5}, graph.DefaultSubintervals)
	require.NoError(t, err)
	require.Len(t, got, 3, "got %v", got)
	for _, p := range got {
		assert.Less(t, math.Abs(p.Y), 1e-9)
	}
}

func TestActiveZeros(t *testing.T) {
	s, err := graph.NewSheet("x^2-1", "sin(x)")
	require.NoError(t, err)
	got, err := graph.ActiveZeros(graph.ZeroFinder(), s, graph.Window{Min: -2, Max: 2}, 400)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(xs(got), []float64{-1, 1}, 1e-9), "got %v", got)

	_, err = graph.ActiveZeros(graph.ZeroFinder(), &graph.Sheet{}, graph.Window{Min: -2, Max: 2}, 400)
	assert.ErrorIs(t, err, graph.ErrEmpty)
	_, err = graph.Intersections(graph.ZeroFinder(), &graph.Sheet{}, graph.Window{Min: -2, Max: 2}, 400)
	assert.ErrorIs(t, err, graph.ErrEmpty)
}

func TestWindow(t *testing.T) {
	w := graph.Centered(800, 40)
	assert.Equal(t, graph.Window{Min: -10, Max: 10}, w)
	assert.NoError(t, w.Validate())
	assert.NoError(t, graph.Window{Min: 1, Max: 1}.Validate())

	for _, bad := range []graph.Window{
		{Min: 1, Max: -1},
		{Min: math.NaN(), Max: 1},
		{Min: math.Inf(-1), Max: 1},
	} {
		err := bad.Validate()
		assert.ErrorIs(t, err, roots.ErrInvalidInterval, "%v", bad)
		_, err = graph.Zeros(graph.ZeroFinder(), roots.FuncOf(math.Sin), bad, 10)
		assert.ErrorIs(t, err, roots.ErrInvalidInterval, "%v", bad)
	}

	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, graph.Window{Min: -1, Max: 1}.Samples(5))
}

func TestSample(t *testing.T) {
	pts, err := graph.Sample(graphcalc.MustCompile("1/x"), graph.Window{Min: -1, Max: 1}, 3)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, graph.Point{X: -1, Y: -1}, pts[0])
	assert.Equal(t, 0.0, pts[1].X)
	assert.True(t, math.IsNaN(pts[1].Y), "pole should be NaN")
	assert.Equal(t, graph.Point{X: 1, Y: 1}, pts[2])

	_, err = graph.Sample(roots.FuncOf(math.Sin), graph.Window{Min: -1, Max: 1}, 1)
	assert.ErrorIs(t, err, roots.ErrSubintervals)
}

func TestPointRound(t *testing.T) {
	p := graph.Point{X: 1.23456789, Y: -0.00001}
	assert.Equal(t, graph.Point{X: 1.235, Y: 0}, p.Round(graph.ZeroDigits))
	r := p.Round(graph.ZeroDigits)
	assert.False(t, math.Signbit(r.Y), "negative zero")
}
