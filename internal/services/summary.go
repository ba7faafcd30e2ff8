package services

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"chartserver/internal/models"
)

// Summarize computes per-column statistics. Numeric columns get min, max, mean
// and sample standard deviation over their non-null cells.
func Summarize(table *models.Table) []models.ColumnStats {
	out := make([]models.ColumnStats, 0, len(table.Columns))
	for i, col := range table.Columns {
		dtype := models.DTypeObject
		if i < len(table.DTypes) {
			dtype = table.DTypes[i]
		}
		cs := models.ColumnStats{Name: col, DType: dtype}

		values := make([]float64, 0, len(table.Rows))
		for _, row := range table.Rows {
			v := row[col]
			if v == nil {
				continue
			}
			cs.NonNull++
			if f, ok := ToFloat(v); ok && dtype.IsNumeric() {
				values = append(values, f)
			}
		}

		if len(values) > 0 {
			minV, maxV, mean := floats.Min(values), floats.Max(values), stat.Mean(values, nil)
			cs.Min, cs.Max, cs.Mean = &minV, &maxV, &mean
			if len(values) > 1 {
				std := stat.StdDev(values, nil)
				cs.Std = &std
			}
		}
		out = append(out, cs)
	}
	return out
}
