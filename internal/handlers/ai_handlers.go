package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chartserver/internal/metrics"
	"chartserver/internal/models"
	"chartserver/internal/services"
)

var salesColumns = []string{"month", "sales", "expenses", "profit"}

func (handler *Handler) CreateSalesData(ctx *gin.Context) {
	var request models.CreateSalesDataRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	name := services.DeriveName(request.Name)
	if err := services.ValidateName(name); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}

	rows := make([]models.Row, 0, len(request.Data))
	for _, point := range request.Data {
		expenses := 0.0
		if point.Expenses != nil {
			expenses = *point.Expenses
		}
		profit := *point.Sales - expenses
		if point.Profit != nil {
			profit = *point.Profit
		}
		rows = append(rows, models.Row{
			"month":    point.Month,
			"sales":    *point.Sales,
			"expenses": expenses,
			"profit":   profit,
		})
	}

	table, err := services.TableFromRows(salesColumns, rows)
	if err != nil {
		handleInternalServerError(ctx, err)
		return
	}
	if err := handler.datasets.Write(name, table); err != nil {
		handleInternalServerError(ctx, err)
		return
	}
	metrics.DatasetsWritten.WithLabelValues("create").Inc()
	zap.S().Infow("[CREATE] Sales dataset written", "dataset", name, "records", len(rows), "description", request.Description)

	ctx.JSON(http.StatusOK, models.ToolResponse{
		Success: true,
		Message: fmt.Sprintf("Sales dataset '%s' created successfully", request.Name),
		Data: models.CreateSalesDataResult{
			Filename:    services.Filename(name),
			Records:     len(rows),
			APIEndpoint: dataEndpoint(name),
		},
	})
}

func (handler *Handler) GenerateChart(ctx *gin.Context) {
	var request models.GenerateChartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	kind, err := models.ParseChartKind(request.ChartType)
	if err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	format, err := models.ParseExportFormat(request.ExportFormat)
	if err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	name := services.DeriveName(request.DatasetName)
	if err := services.ValidateName(name); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}

	table, err := handler.datasets.Read(name)
	if err != nil {
		handleStoreError(ctx, err, fmt.Sprintf("Dataset %s not found", request.DatasetName))
		return
	}

	cfg := models.ChartConfig{
		Type:   kind,
		Data:   table.Rows,
		Title:  request.Title,
		Width:  defaultChartWidth,
		Height: defaultChartHeight,
	}
	if cfg.Title == "" {
		cfg.Title = fmt.Sprintf("%s Chart - %s", kind.Title(), request.DatasetName)
	}
	if request.Width != nil {
		cfg.Width = *request.Width
	}
	if request.Height != nil {
		cfg.Height = *request.Height
	}

	token, exportFile, err := handler.charts.Create(cfg, format, table)
	if err != nil {
		handleInternalServerError(ctx, err)
		return
	}
	metrics.ChartsGenerated.WithLabelValues(string(kind)).Inc()
	zap.S().Infow("[CHART] Chart generated", "token", token, "kind", kind, "dataset", name, "export", exportFile)

	ctx.JSON(http.StatusOK, models.ToolResponse{
		Success:   true,
		Message:   "Chart generated successfully",
		Data:      cfg,
		ChartURL:  "/api/charts/" + token,
		ExportURL: "/api/exports/" + exportFile,
	})
}

func (handler *Handler) ListDatasetsForAI(ctx *gin.Context) {
	summaries, err := handler.datasets.List(toolSampleRows)
	if err != nil {
		handleInternalServerError(ctx, err)
		return
	}
	datasets := make([]models.ToolDataset, 0, len(summaries))
	for _, s := range summaries {
		datasets = append(datasets, models.ToolDataset{
			Name:        s.Name,
			Filename:    s.Filename,
			Rows:        s.Rows,
			Columns:     s.Columns,
			Sample:      s.Sample,
			APIEndpoint: dataEndpoint(s.Name),
		})
	}
	ctx.JSON(http.StatusOK, models.ToolResponse{
		Success: true,
		Message: fmt.Sprintf("Found %d datasets", len(datasets)),
		Data:    models.ToolDatasetList{Datasets: datasets},
	})
}
