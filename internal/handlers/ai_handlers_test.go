package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"chartserver/internal/models"
	"chartserver/internal/services"
)

func TestCreateSalesData(t *testing.T) {
	env := setupTestRouter(t)

	body := map[string]any{
		"name":        "Q3 Sales",
		"description": "third quarter",
		"data": []map[string]any{
			{"month": "Jul", "sales": 12000, "expenses": 7000},
			{"month": "Aug", "sales": 13000},
			{"month": "Sep", "sales": 15000, "expenses": 8000, "profit": 6500},
		},
	}
	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/create-sales-data", body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	response := decode[toolEnvelope[models.CreateSalesDataResult]](t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "Sales dataset 'Q3 Sales' created successfully", response.Message)
	assert.Equal(t, "q3_sales.csv", response.Data.Filename)
	assert.Equal(t, 3, response.Data.Records)
	assert.Equal(t, "/api/data/q3_sales", response.Data.APIEndpoint)

	table, err := env.datasets.Read("q3_sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"month", "sales", "expenses", "profit"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, 5000.0, table.Rows[0]["profit"])
	assert.Equal(t, 0.0, table.Rows[1]["expenses"])
	assert.Equal(t, 13000.0, table.Rows[1]["profit"])
	assert.Equal(t, 6500.0, table.Rows[2]["profit"])
}

func TestCreateSalesDataInvalidBody(t *testing.T) {
	env := setupTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"data": []map[string]any{{"month": "Jan", "sales": 1}}}},
		{"empty data", map[string]any{"name": "x", "data": []map[string]any{}}},
		{"missing sales", map[string]any{"name": "x", "data": []map[string]any{{"month": "Jan"}}}},
		{"missing month", map[string]any{"name": "x", "data": []map[string]any{{"sales": 10}}}},
		{"path in name", map[string]any{"name": "../evil", "data": []map[string]any{{"month": "Jan", "sales": 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/create-sales-data", tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[models.ErrorResponse](t, w).Detail)
		})
	}
}

func TestGenerateChartRoundTrip(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
		"chart_type":   "bar",
		"dataset_name": "sales_data",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	response := decode[toolEnvelope[models.ChartConfig]](t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "Chart generated successfully", response.Message)
	assert.Equal(t, models.ChartBar, response.Data.Type)
	assert.Equal(t, "Bar Chart - sales_data", response.Data.Title)
	assert.Equal(t, 500, response.Data.Width)
	assert.Equal(t, 300, response.Data.Height)
	assert.Len(t, response.Data.Data, 12)
	require.True(t, strings.HasPrefix(response.ChartURL, "/api/charts/"))

	token := strings.TrimPrefix(response.ChartURL, "/api/charts/")
	assert.Equal(t, "/api/exports/chart_"+token+".json", response.ExportURL)

	w = env.do(httptest.NewRequest(http.MethodGet, response.ChartURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	stored := decode[models.ChartConfig](t, w)
	assert.Equal(t, response.Data, stored)

	w = env.do(httptest.NewRequest(http.MethodGet, response.ExportURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "chart_"+token+".json")
}

func TestGenerateChartOverrides(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
		"chart_type":   "pie",
		"dataset_name": "Category Data",
		"title":        "Share",
		"width":        800,
		"height":       600,
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	response := decode[toolEnvelope[models.ChartConfig]](t, w)
	assert.Equal(t, models.ChartPie, response.Data.Type)
	assert.Equal(t, "Share", response.Data.Title)
	assert.Equal(t, 800, response.Data.Width)
	assert.Equal(t, 600, response.Data.Height)
	assert.Len(t, response.Data.Data, 6)
}

func TestGenerateChartCSVExport(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
		"chart_type":    "line",
		"dataset_name":  "quarterly_sales",
		"export_format": "csv",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	response := decode[toolEnvelope[models.ChartConfig]](t, w)
	require.True(t, strings.HasSuffix(response.ExportURL, ".csv"))

	w = env.do(httptest.NewRequest(http.MethodGet, response.ExportURL, nil))
	require.Equal(t, http.StatusOK, w.Code)

	exported, err := services.ParseCSV(w.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter", "sales", "expenses", "profit"}, exported.Columns)
	assert.Len(t, exported.Rows, 4)
}

func TestGenerateChartXLSXExport(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
		"chart_type":    "scatter",
		"dataset_name":  "user_data",
		"export_format": "xlsx",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	response := decode[toolEnvelope[models.ChartConfig]](t, w)
	require.True(t, strings.HasSuffix(response.ExportURL, ".xlsx"))

	w = env.do(httptest.NewRequest(http.MethodGet, response.ExportURL, nil))
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 21)
	assert.Equal(t, []string{"age", "income", "satisfaction"}, rows[0])
}

func TestGenerateChartImageFormatsExportJSON(t *testing.T) {
	env := setupTestRouter(t)

	for _, format := range []string{"png", "svg"} {
		w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
			"chart_type":    "bar",
			"dataset_name":  "sales_data",
			"export_format": format,
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		response := decode[toolEnvelope[models.ChartConfig]](t, w)
		token := strings.TrimPrefix(response.ChartURL, "/api/charts/")
		assert.Equal(t, "/api/exports/chart_"+token+".json", response.ExportURL, format)

		w = env.do(httptest.NewRequest(http.MethodGet, response.ExportURL, nil))
		assert.Equal(t, http.StatusOK, w.Code, format)
	}
}

func TestGenerateChartErrors(t *testing.T) {
	env := setupTestRouter(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"unknown dataset", map[string]any{"chart_type": "bar", "dataset_name": "nonexistent"}, http.StatusNotFound},
		{"unknown chart type", map[string]any{"chart_type": "radar", "dataset_name": "sales_data"}, http.StatusBadRequest},
		{"missing chart type", map[string]any{"dataset_name": "sales_data"}, http.StatusBadRequest},
		{"missing dataset", map[string]any{"chart_type": "bar"}, http.StatusBadRequest},
		{"zero width", map[string]any{"chart_type": "bar", "dataset_name": "sales_data", "width": 0}, http.StatusBadRequest},
		{"unknown export", map[string]any{"chart_type": "bar", "dataset_name": "sales_data", "export_format": "pdf"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", tt.body))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[models.ErrorResponse](t, w).Detail)
		})
	}

	w := env.do(jsonRequest(t, http.MethodPost, "/api/ai/generate-chart", map[string]any{
		"chart_type": "bar", "dataset_name": "nonexistent",
	}))
	assert.Equal(t, "Dataset nonexistent not found", decode[models.ErrorResponse](t, w).Detail)
}

func TestListDatasetsForAI(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/ai/datasets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[toolEnvelope[models.ToolDatasetList]](t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "Found 6 datasets", response.Message)
	require.Len(t, response.Data.Datasets, 6)
	for _, ds := range response.Data.Datasets {
		assert.Equal(t, ds.Name+".csv", ds.Filename)
		assert.Equal(t, "/api/data/"+ds.Name, ds.APIEndpoint)
		assert.LessOrEqual(t, len(ds.Sample), 2)
	}
}
