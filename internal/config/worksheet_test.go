package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/graphcalc"
	"github.com/zephyrtronium/graphcalc/graph"
)

const sample = `functions:
  - x^2
  - x+2
active: 1
window: {min: -5, max: 5}
subintervals: 500
`

func TestParseWorksheet(t *testing.T) {
	ws, err := ParseWorksheet([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"x^2", "x+2"}, ws.Functions)
	assert.Equal(t, 1, ws.Active)
	assert.Equal(t, graph.Window{Min: -5, Max: 5}, ws.GraphWindow())
	assert.Equal(t, 500, ws.SubintervalsOr(1000))

	s, err := ws.Sheet()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Active())
}

func TestParseWorksheetDefaults(t *testing.T) {
	ws, err := ParseWorksheet([]byte("functions: [sin(x)]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ws.Active)
	assert.Equal(t, graph.Window{Min: -10, Max: 10}, ws.GraphWindow())
	assert.Equal(t, 1000, ws.SubintervalsOr(1000))
}

func TestParseWorksheetErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no-functions", "functions: []\n"},
		{"unknown-field", "functions: [x]\ncolor: red\n"},
		{"active-range", "functions: [x]\nactive: 1\n"},
		{"active-negative", "functions: [x]\nactive: -1\n"},
		{"window", "functions: [x]\nwindow: {min: 1, max: -1}\n"},
		{"subintervals", "functions: [x]\nsubintervals: -4\n"},
		{"syntax", "functions: [x\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseWorksheet([]byte(c.src))
			assert.Error(t, err)
		})
	}
}

func TestWorksheetBadFunction(t *testing.T) {
	ws, err := ParseWorksheet([]byte("functions: [x, \"2*(x\"]\n"))
	require.NoError(t, err)
	_, err = ws.Sheet()
	assert.ErrorIs(t, err, graphcalc.ErrSyntax)
}

func TestLoadWorksheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	ws, err := LoadWorksheet(path)
	require.NoError(t, err)
	assert.Len(t, ws.Functions, 2)

	_, err = LoadWorksheet(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// A worksheet written by Marshal reads back the same.
	b, err := ws.Marshal()
	require.NoError(t, err)
	again, err := ParseWorksheet(b)
	require.NoError(t, err)
	assert.Equal(t, ws, again)
}
