package services

import "chartserver/internal/models"

var (
	temporalColumns    = map[string]bool{"month": true, "quarter": true, "date": true}
	categoricalColumns = map[string]bool{"category": true, "product": true, "type": true}
)

// Recommend suggests chart kinds from column names and types. dtypes is parallel
// to columns. The result is deduplicated, in enum order, and never empty.
func Recommend(columns []string, dtypes []models.DType) []models.ChartKind {
	set := make(map[models.ChartKind]bool)
	numeric := 0
	for i, col := range columns {
		if temporalColumns[col] {
			set[models.ChartLine] = true
			set[models.ChartArea] = true
			set[models.ChartBar] = true
		}
		if categoricalColumns[col] {
			set[models.ChartPie] = true
			set[models.ChartBar] = true
		}
		if i < len(dtypes) && dtypes[i].IsNumeric() {
			numeric++
		}
	}
	if numeric >= 2 {
		set[models.ChartScatter] = true
	}
	if len(set) == 0 {
		return []models.ChartKind{models.ChartBar}
	}

	out := make([]models.ChartKind, 0, len(set))
	for _, kind := range []models.ChartKind{
		models.ChartBar, models.ChartLine, models.ChartScatter,
		models.ChartPie, models.ChartArea, models.ChartNetwork,
	} {
		if set[kind] {
			out = append(out, kind)
		}
	}
	return out
}
