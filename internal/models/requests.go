package models

// SalesDataPoint is one month of a programmatically created sales dataset.
// Expenses defaults to 0 and Profit to Sales-Expenses when omitted.
type SalesDataPoint struct {
	Month    string   `json:"month" binding:"required"`
	Sales    *float64 `json:"sales" binding:"required"`
	Expenses *float64 `json:"expenses"`
	Profit   *float64 `json:"profit"`
}

type CreateSalesDataRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Data        []SalesDataPoint `json:"data" binding:"required,min=1,dive"`
}

type GenerateChartRequest struct {
	ChartType    string `json:"chart_type" binding:"required"`
	DatasetName  string `json:"dataset_name" binding:"required"`
	Title        string `json:"title"`
	Width        *int   `json:"width" binding:"omitempty,min=1"`
	Height       *int   `json:"height" binding:"omitempty,min=1"`
	ExportFormat string `json:"export_format"`
}

type GetDatasetRequest struct {
	Name string `uri:"name" binding:"required"`
}

type GetChartRequest struct {
	ID string `uri:"id" binding:"required"`
}

type GetExportRequest struct {
	Filename string `uri:"filename" binding:"required"`
}
