package models

import (
	"fmt"
	"strings"
)

// Row maps a column name to a scalar cell value: string, int64, float64 or nil for an empty cell.
type Row map[string]any

type DType string

const (
	DTypeInt    DType = "int64"
	DTypeFloat  DType = "float64"
	DTypeObject DType = "object"
)

// IsNumeric reports whether the column holds int64 or float64 values.
func (d DType) IsNumeric() bool {
	return d == DTypeInt || d == DTypeFloat
}

// Table is an ordered set of rows sharing one column set.
// DTypes is parallel to Columns.
type Table struct {
	Columns []string
	DTypes  []DType
	Rows    []Row
}

// Head returns at most n leading rows.
func (t *Table) Head(n int) []Row {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	out := make([]Row, n)
	copy(out, t.Rows[:n])
	return out
}

// DTypeOf returns the inferred type of column, or DTypeObject for unknown columns.
func (t *Table) DTypeOf(column string) DType {
	for i, c := range t.Columns {
		if c == column && i < len(t.DTypes) {
			return t.DTypes[i]
		}
	}
	return DTypeObject
}

// ChartKind is the closed set of chart types a configuration can carry.
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartScatter ChartKind = "scatter"
	ChartPie     ChartKind = "pie"
	ChartArea    ChartKind = "area"
	ChartNetwork ChartKind = "network"
)

var chartKinds = []ChartKind{ChartBar, ChartLine, ChartScatter, ChartPie, ChartArea, ChartNetwork}

func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range chartKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart type %q", s)
}

// Title returns the kind with its first letter upper-cased, e.g. "Bar".
func (k ChartKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat maps a requested format to the file written next to the
// chart document. Image formats are rendered by the client from the JSON
// document, so png and svg resolve to ExportJSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", ExportJSON, "png", "svg":
		return ExportJSON, nil
	case ExportCSV, ExportXLSX:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// ChartConfig is the persisted chart document.
type ChartConfig struct {
	Type   ChartKind `json:"type"`
	Data   []Row     `json:"data"`
	Title  string    `json:"title"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

// DatasetSummary describes one dataset file without its full contents.
type DatasetSummary struct {
	Name       string
	Filename   string
	Rows       int
	Columns    []string
	Sample     []Row
	ChartTypes []ChartKind
}

// ColumnStats summarizes a single column. Numeric fields are nil for object columns.
type ColumnStats struct {
	Name    string   `json:"name"`
	DType   DType    `json:"dtype"`
	NonNull int      `json:"non_null"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Mean    *float64 `json:"mean,omitempty"`
	Std     *float64 `json:"std,omitempty"`
}
