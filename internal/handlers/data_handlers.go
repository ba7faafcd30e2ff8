package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chartserver/internal/models"
	"chartserver/internal/services"
)

func (handler *Handler) Root(ctx *gin.Context) {
	dataEndpoints := []string{}
	if names, err := handler.datasets.Names(); err == nil {
		for _, name := range names {
			dataEndpoints = append(dataEndpoints, dataEndpoint(name))
		}
	} else {
		zap.S().Warnw("Failed to list datasets for endpoint inventory", "error", err)
	}

	ctx.JSON(http.StatusOK, models.RootResponse{
		Message: ServerName,
		Version: ServerVersion,
		AIEndpoints: []string{
			"/api/ai/create-sales-data",
			"/api/ai/upload-csv",
			"/api/ai/generate-chart",
			"/api/ai/datasets",
		},
		DataEndpoints:    dataEndpoints,
		ChartEndpoints:   []string{"/api/charts/{chart_id}", "/api/exports/{filename}"},
		UtilityEndpoints: []string{"/api/datasets", "/api/health", "/api/docs/ai"},
	})
}

// Health counts dataset files without parsing them.
func (handler *Handler) Health(ctx *gin.Context) {
	status := "healthy"
	count, err := handler.datasets.Count()
	if err != nil {
		zap.S().Warnw("Health check could not count datasets", "error", err)
		status = "degraded"
	}
	ctx.JSON(http.StatusOK, models.HealthResponse{
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		DatasetsCount: count,
		Server:        ServerName,
	})
}

func (handler *Handler) ListDatasets(ctx *gin.Context) {
	summaries, err := handler.datasets.List(handler.sampleRows)
	if err != nil {
		handleInternalServerError(ctx, err)
		return
	}
	datasets := make([]models.DatasetEntry, 0, len(summaries))
	for _, s := range summaries {
		datasets = append(datasets, models.DatasetEntry{
			Name:       s.Name,
			Filename:   s.Filename,
			Rows:       s.Rows,
			Columns:    s.Columns,
			Sample:     s.Sample,
			ChartTypes: s.ChartTypes,
		})
	}
	ctx.JSON(http.StatusOK, models.DatasetListResponse{Datasets: datasets})
}

func (handler *Handler) GetDataset(ctx *gin.Context) {
	table, name, ok := handler.readDataset(ctx)
	if !ok {
		return
	}
	zap.S().Debugw("[DATA] Dataset served", "dataset", name, "rows", len(table.Rows))
	ctx.JSON(http.StatusOK, models.DatasetResponse{
		Data: table.Rows,
		Metadata: models.DatasetMetadata{
			Rows:              len(table.Rows),
			Columns:           table.Columns,
			RecommendedCharts: services.Recommend(table.Columns, table.DTypes),
		},
	})
}

func (handler *Handler) GetDatasetSummary(ctx *gin.Context) {
	table, name, ok := handler.readDataset(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, models.SummaryResponse{
		Name:    name,
		Rows:    len(table.Rows),
		Columns: services.Summarize(table),
	})
}

func (handler *Handler) readDataset(ctx *gin.Context) (*models.Table, string, bool) {
	var request models.GetDatasetRequest
	if err := ctx.BindUri(&request); err != nil {
		handleInvalidInputError(ctx, err)
		return nil, "", false
	}
	name := services.DeriveName(request.Name)
	if err := services.ValidateName(name); err != nil {
		handleInvalidInputError(ctx, err)
		return nil, "", false
	}
	table, err := handler.datasets.Read(name)
	if err != nil {
		handleStoreError(ctx, err, fmt.Sprintf("Dataset %s not found", request.Name))
		return nil, "", false
	}
	return table, name, true
}

func (handler *Handler) GetChart(ctx *gin.Context) {
	var request models.GetChartRequest
	if err := ctx.BindUri(&request); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	cfg, err := handler.charts.Read(request.ID)
	if err != nil {
		handleStoreError(ctx, err, fmt.Sprintf("Chart %s not found", request.ID))
		return
	}
	ctx.JSON(http.StatusOK, cfg)
}

// DownloadExport streams an export file from disk.
func (handler *Handler) DownloadExport(ctx *gin.Context) {
	var request models.GetExportRequest
	if err := ctx.BindUri(&request); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	path, err := handler.charts.ExportPath(request.Filename)
	if err != nil {
		handleStoreError(ctx, err, "File not found")
		return
	}
	ctx.FileAttachment(path, request.Filename)
}
