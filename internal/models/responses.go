package models

// ToolResponse is the envelope returned by the /ai endpoints.
type ToolResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	ChartURL  string `json:"chart_url,omitempty"`
	ExportURL string `json:"export_url,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type CreateSalesDataResult struct {
	Filename    string `json:"filename"`
	Records     int    `json:"records"`
	APIEndpoint string `json:"api_endpoint"`
}

type UploadResult struct {
	Filename    string   `json:"filename"`
	Rows        int      `json:"rows"`
	Columns     []string `json:"columns"`
	Sample      []Row    `json:"sample"`
	APIEndpoint string   `json:"api_endpoint"`
}

type ToolDataset struct {
	Name        string   `json:"name"`
	Filename    string   `json:"filename"`
	Rows        int      `json:"rows"`
	Columns     []string `json:"columns"`
	Sample      []Row    `json:"sample"`
	APIEndpoint string   `json:"api_endpoint"`
}

type ToolDatasetList struct {
	Datasets []ToolDataset `json:"datasets"`
}

type DatasetEntry struct {
	Name       string      `json:"name"`
	Filename   string      `json:"filename"`
	Rows       int         `json:"rows"`
	Columns    []string    `json:"columns"`
	Sample     []Row       `json:"sample"`
	ChartTypes []ChartKind `json:"chart_types"`
}

type DatasetListResponse struct {
	Datasets []DatasetEntry `json:"datasets"`
}

type DatasetMetadata struct {
	Rows              int         `json:"rows"`
	Columns           []string    `json:"columns"`
	RecommendedCharts []ChartKind `json:"recommended_charts"`
}

type DatasetResponse struct {
	Data     []Row           `json:"data"`
	Metadata DatasetMetadata `json:"metadata"`
}

type SummaryResponse struct {
	Name    string        `json:"name"`
	Rows    int           `json:"rows"`
	Columns []ColumnStats `json:"columns"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	DatasetsCount int    `json:"datasets_count"`
	Server        string `json:"server"`
}

type RootResponse struct {
	Message          string   `json:"message"`
	Version          string   `json:"version"`
	AIEndpoints      []string `json:"ai_endpoints"`
	DataEndpoints    []string `json:"data_endpoints"`
	ChartEndpoints   []string `json:"chart_endpoints"`
	UtilityEndpoints []string `json:"utility_endpoints"`
}
