package roots_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/zephyrtronium/graphcalc/roots"
)

func TestFindAllRootsSin(t *testing.T) {
	f := roots.New(1e-15, 1e-17, 1e-17)
	got, err := f.FindAllRoots(roots.FuncOf(math.Sin), -7, 7, 1000)
	require.NoError(t, err)
	want := []float64{-2 * math.Pi, -math.Pi, 0, math.Pi, 2 * math.Pi}
	require.Len(t, got, len(want), "got %v", got)
	assert.True(t, floats.EqualApprox(got, want, 1e-9), "want %v, got %v", want, got)
	width := 14.0 / 1000
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i]-got[i-1], width/2)
	}
}

func TestFindAllRoots(t *testing.T) {
	cases := []struct {
		name     string
		fn       roots.Func
		min, max float64
		n        int
		want     []float64
	}{
		{
			name: "quadratic",
			fn:   roots.FuncOf(func(x float64) float64 { return x*x - 2 }),
			min:  -3, max: 3, n: 1000,
			want: []float64{-math.Sqrt2, math.Sqrt2},
		},
		{
			name: "intersections",
			fn: roots.Difference{
				F: roots.FuncOf(func(x float64) float64 { return x * x }),
				G: roots.FuncOf(func(x float64) float64 { return x + 2 }),
			},
			min: -5, max: 5, n: 1000,
			want: []float64{-1, 2},
		},
		{
			name: "single-slice",
			fn:   linear(0.25),
			min:  0, max: 1, n: 1,
			want: []float64{0.25},
		},
		{
			name: "root-at-ends",
			fn:   roots.FuncOf(func(x float64) float64 { return x * (x - 1) }),
			min:  0, max: 1, n: 10,
			want: []float64{0, 1},
		},
		{
			name: "none",
			fn:   roots.FuncOf(func(x float64) float64 { return x*x + 1 }),
			min:  -5, max: 5, n: 100,
			want: []float64{},
		},
		{
			name: "empty-interval",
			fn:   linear(0),
			min:  0, max: 0, n: 10,
			want: []float64{},
		},
	}
	f := roots.New(1e-15, 1e-15, 1e-17)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := f.FindAllRoots(c.fn, c.min, c.max, c.n)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Len(t, got, len(c.want), "got %v", got)
			assert.True(t, floats.EqualApprox(got, c.want, 1e-9), "want %v, got %v", c.want, got)
		})
	}
}

func TestFindAllRootsTangent(t *testing.T) {
	// A double root at an interior point of a slice is only found by the
	// tangency search.
	f := roots.New(1e-15, 1e-17, 1e-10)
	square := roots.FuncOf(func(x float64) float64 { return (x - 0.3) * (x - 0.3) })
	got, err := f.FindAllRoots(square, -1, 1, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.3, got[0], 1e-5)
}

func TestFindAllRootsErrors(t *testing.T) {
	f := roots.New(1e-15, 1e-15, 1e-17)
	_, err := f.FindAllRoots(linear(0), -1, 1, 0)
	assert.ErrorIs(t, err, roots.ErrSubintervals)
	_, err = f.FindAllRoots(linear(0), -1, 1, -3)
	assert.ErrorIs(t, err, roots.ErrSubintervals)
	_, err = f.FindAllRoots(linear(0), 1, -1, 10)
	assert.ErrorIs(t, err, roots.ErrInvalidInterval)
	var de *roots.DomainError
	assert.ErrorAs(t, err, &de)

	// Failure to converge is not swallowed.
	f = roots.New(1e-15, 1e-17, 1e-17, roots.MaxIterations(1))
	_, err = f.FindAllRoots(roots.FuncOf(math.Sin), -7, 7, 10)
	assert.ErrorIs(t, err, roots.ErrNoConvergence)
}

func TestFindAllRootsConcurrent(t *testing.T) {
	f := roots.New(1e-15, 1e-17, 1e-17)
	want := []float64{-2 * math.Pi, -math.Pi, 0, math.Pi, 2 * math.Pi}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.FindAllRoots(roots.FuncOf(math.Sin), -7, 7, 1000)
			if assert.NoError(t, err) && assert.Len(t, got, len(want)) {
				assert.True(t, floats.EqualApprox(got, want, 1e-9))
			}
		}()
	}
	wg.Wait()
}

func TestDecluster(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		sep  float64
		want []float64
	}{
		{"empty", nil, 1, []float64{}},
		{"one", []float64{3}, 1, []float64{3}},
		{"merge", []float64{1.00, 1.01, 3.00}, 0.5, []float64{1.00, 3.00}},
		{"unsorted", []float64{3.00, 1.01, 1.00}, 0.5, []float64{1.00, 3.00}},
		{"chain", []float64{0, 0.4, 0.8, 1.2}, 0.5, []float64{0, 0.8}},
		{"exact-separation", []float64{0, 0.5, 1}, 0.5, []float64{0, 1}},
		{"zero-sep", []float64{2, 1, 2}, 0, []float64{1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			orig := append([]float64(nil), c.in...)
			got := roots.Decluster(c.in, c.sep)
			assert.Equal(t, c.want, got)
			assert.Equal(t, orig, append([]float64(nil), c.in...), "input modified")
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i]-got[i-1], c.sep)
			}
		})
	}
}

func BenchmarkFindAllRoots(b *testing.B) {
	f := roots.New(1e-15, 1e-17, 1e-17)
	fn := roots.FuncOf(math.Sin)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.FindAllRoots(fn, -7, 7, 1000)
	}
}

func ExampleFinder_FindAllRoots() {
	f := roots.New(1e-15, 1e-15, 1e-17)
	fn := roots.FuncOf(func(x float64) float64 { return x*x - 2 })
	r, err := f.FindAllRoots(fn, -3, 3, 1000)
	if err != nil {
		panic(err)
	}
	for _, x := range r {
		fmt.Printf("%.6f\n", x)
	}

	// Output:
	// -1.414214
	// 1.414214
}

func ExampleDecluster() {
	fmt.Println(roots.Decluster([]float64{3, 1.01, 1}, 0.5))

	// Output:
	// [1 3]
}
