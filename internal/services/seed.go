package services

import (
	"fmt"
	"time"

	"chartserver/internal/models"
)

type sampleDataset struct {
	name    string
	columns []string
	rows    []models.Row
}

// SeedSampleData writes the bundled sample datasets, replacing files with the
// same names, and returns the names written.
func SeedSampleData(store *DatasetStore) ([]string, error) {
	datasets := sampleDatasets()
	names := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		table, err := TableFromRows(ds.columns, ds.rows)
		if err != nil {
			return names, fmt.Errorf("sample dataset %s: %w", ds.name, err)
		}
		if err := store.Write(ds.name, table); err != nil {
			return names, err
		}
		names = append(names, ds.name)
	}
	return names, nil
}

func sampleDatasets() []sampleDataset {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	sales := []int64{12000, 19000, 13000, 25000, 22000, 30000, 28000, 32000, 27000, 35000, 40000, 38000}
	expenses := []int64{8000, 12000, 9000, 15000, 14000, 18000, 16000, 19000, 15000, 20000, 24000, 22000}
	profit := []int64{4000, 7000, 4000, 10000, 8000, 12000, 12000, 13000, 12000, 15000, 16000, 16000}
	salesRows := make([]models.Row, len(months))
	for i := range months {
		salesRows[i] = models.Row{"month": months[i], "sales": sales[i], "expenses": expenses[i], "profit": profit[i]}
	}

	quarters := []string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2024"}
	qSales := []int64{44000, 77000, 87000, 113000}
	qExpenses := []int64{29000, 47000, 50000, 66000}
	qProfit := []int64{15000, 30000, 37000, 47000}
	quarterRows := make([]models.Row, len(quarters))
	for i := range quarters {
		quarterRows[i] = models.Row{"quarter": quarters[i], "sales": qSales[i], "expenses": qExpenses[i], "profit": qProfit[i]}
	}

	products := []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	pSales := []int64{85000, 65000, 45000, 35000, 25000}
	units := []int64{850, 1300, 750, 500, 400}
	margins := []float64{0.35, 0.28, 0.42, 0.31, 0.38}
	productRows := make([]models.Row, len(products))
	for i := range products {
		productRows[i] = models.Row{"product": products[i], "sales": pSales[i], "units_sold": units[i], "profit_margin": margins[i]}
	}

	ages := []int64{23, 45, 56, 78, 32, 24, 35, 67, 29, 45, 39, 52, 28, 33, 41, 59, 26, 37, 48, 55}
	incomes := []int64{35000, 65000, 80000, 45000, 55000, 38000, 62000, 70000, 42000, 68000, 58000, 75000,
		40000, 51000, 64000, 82000, 36000, 59000, 71000, 77000}
	satisfaction := []float64{7.2, 8.1, 6.8, 7.9, 8.4, 6.9, 7.6, 8.2, 7.1, 8.0, 7.8, 8.3, 6.7, 7.4, 8.1, 7.7, 7.0, 8.2, 7.9, 8.0}
	userRows := make([]models.Row, len(ages))
	for i := range ages {
		userRows[i] = models.Row{"age": ages[i], "income": incomes[i], "satisfaction": satisfaction[i]}
	}

	categories := []string{"Technology", "Healthcare", "Finance", "Education", "Entertainment", "Retail"}
	values := []int64{350, 280, 220, 180, 160, 140}
	colors := []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#ffeaa7", "#dda0dd"}
	categoryRows := make([]models.Row, len(categories))
	for i := range categories {
		categoryRows[i] = models.Row{"category": categories[i], "value": values[i], "color": colors[i]}
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	timeRows := make([]models.Row, 50)
	for i := range timeRows {
		n := int64(i)
		timeRows[i] = models.Row{
			"date":        start.AddDate(0, 0, i).Format("2006-01-02"),
			"visitors":    100 + n*5 + (n%7)*20,
			"page_views":  300 + n*15 + (n%5)*50,
			"conversions": 10 + n*2 + (n%3)*8,
		}
	}

	return []sampleDataset{
		{name: "sales_data", columns: []string{"month", "sales", "expenses", "profit"}, rows: salesRows},
		{name: "quarterly_sales", columns: []string{"quarter", "sales", "expenses", "profit"}, rows: quarterRows},
		{name: "product_performance", columns: []string{"product", "sales", "units_sold", "profit_margin"}, rows: productRows},
		{name: "user_data", columns: []string{"age", "income", "satisfaction"}, rows: userRows},
		{name: "category_data", columns: []string{"category", "value", "color"}, rows: categoryRows},
		{name: "time_series_data", columns: []string{"date", "visitors", "page_views", "conversions"}, rows: timeRows},
	}
}
