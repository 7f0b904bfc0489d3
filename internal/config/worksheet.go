package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/zephyrtronium/graphcalc/graph"
)

// Worksheet is a worksheet file: a list of functions, the active one, and the
// window to search.
//
//	functions:
//	  - x^2
//	  - x+2
//	active: 0
//	window: {min: -5, max: 5}
//	subintervals: 1000
type Worksheet struct {
	Functions    []string `yaml:"functions"`
	Active       int      `yaml:"active"`
	Window       *Window  `yaml:"window,omitempty"`
	Subintervals int      `yaml:"subintervals,omitempty"`
}

// Window is the x range of a worksheet.
type Window struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultWindow is the window of a worksheet that does not name one.
var DefaultWindow = Window{Min: -10, Max: 10}

// ParseWorksheet decodes a worksheet. Unknown fields are errors.
func ParseWorksheet(data []byte) (*Worksheet, error) {
	var ws Worksheet
	if err := yaml.UnmarshalWithOptions(data, &ws, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("invalid worksheet: %w", err)
	}
	if len(ws.Functions) == 0 {
		return nil, fmt.Errorf("invalid worksheet: no functions")
	}
	if ws.Active < 0 || ws.Active >= len(ws.Functions) {
		return nil, fmt.Errorf("invalid worksheet: active function %d out of range", ws.Active)
	}
	if ws.Subintervals < 0 {
		return nil, fmt.Errorf("invalid worksheet: negative subintervals")
	}
	if err := ws.GraphWindow().Validate(); err != nil {
		return nil, fmt.Errorf("invalid worksheet: %w", err)
	}
	return &ws, nil
}

// LoadWorksheet reads and decodes a worksheet file.
func LoadWorksheet(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	ws, err := ParseWorksheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// Marshal encodes the worksheet as YAML.
func (ws *Worksheet) Marshal() ([]byte, error) {
	return yaml.Marshal(ws)
}

// Sheet compiles the worksheet's functions.
func (ws *Worksheet) Sheet() (*graph.Sheet, error) {
	s, err := graph.NewSheet(ws.Functions...)
	if err != nil {
		return nil, err
	}
	if err := s.SetActive(ws.Active); err != nil {
		return nil, err
	}
	return s, nil
}

// GraphWindow returns the worksheet's window, or DefaultWindow if it has
// none.
func (ws *Worksheet) GraphWindow() graph.Window {
	w := DefaultWindow
	if ws.Window != nil {
		w = *ws.Window
	}
	return graph.Window{Min: w.Min, Max: w.Max}
}

// SubintervalsOr returns the worksheet's subintervals, or def if it has none.
func (ws *Worksheet) SubintervalsOr(def int) int {
	if ws.Subintervals > 0 {
		return ws.Subintervals
	}
	return def
}
