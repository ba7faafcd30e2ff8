package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartserver/internal/models"
)

func TestSeedSampleData(t *testing.T) {
	store := newTestDatasetStore(t)

	names, err := SeedSampleData(store)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"sales_data", "quarterly_sales", "product_performance",
		"user_data", "category_data", "time_series_data",
	}, names)

	rows := map[string]int{
		"sales_data":          12,
		"quarterly_sales":     4,
		"product_performance": 5,
		"user_data":           20,
		"category_data":       6,
		"time_series_data":    50,
	}
	for name, want := range rows {
		table, err := store.Read(name)
		require.NoError(t, err, name)
		assert.Len(t, table.Rows, want, name)
	}

	sales, err := store.Read("sales_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"month", "sales", "expenses", "profit"}, sales.Columns)
	assert.Equal(t, models.DTypeInt, sales.DTypeOf("sales"))

	series, err := store.Read("time_series_data")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", series.Rows[0]["date"])
	assert.Equal(t, "2024-02-19", series.Rows[49]["date"])

	again, err := SeedSampleData(store)
	require.NoError(t, err)
	assert.Len(t, again, 6)
	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}
