package handlers

import (
	"chartserver/internal/services"
)

const (
	ServerName    = "AI D3.js Tool Server"
	ServerVersion = "1.0.0"

	defaultChartWidth  = 500
	defaultChartHeight = 300
	toolSampleRows     = 2
)

// Handler serves the dataset and chart endpoints. It holds no request state.
type Handler struct {
	datasets   *services.DatasetStore
	charts     *services.ChartStore
	uploads    *services.CsvUploadService
	sampleRows int
	baseURL    string
}

type Options struct {
	// SampleRows is the number of sample rows in /datasets summaries.
	SampleRows int
	// BaseURL is the public server address shown in the documentation page.
	BaseURL string
}

func NewHandler(datasets *services.DatasetStore, charts *services.ChartStore, uploads *services.CsvUploadService, opts Options) *Handler {
	if opts.SampleRows <= 0 {
		opts.SampleRows = 3
	}
	return &Handler{
		datasets:   datasets,
		charts:     charts,
		uploads:    uploads,
		sampleRows: opts.SampleRows,
		baseURL:    opts.BaseURL,
	}
}

func dataEndpoint(name string) string {
	return "/api/data/" + name
}
