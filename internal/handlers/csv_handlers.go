package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chartserver/internal/metrics"
	"chartserver/internal/models"
	"chartserver/internal/services"
)

func (handler *Handler) UploadCSV(ctx *gin.Context) {
	startTime := time.Now()
	clientIP := ctx.ClientIP()

	zap.S().Infow("[UPLOAD] Starting file upload request", "ip", clientIP, "user_agent", ctx.GetHeader("User-Agent"))

	if limit := handler.uploads.MaxRequestSize(); limit > 0 {
		if ctx.Request.ContentLength > limit {
			zap.S().Infow("[UPLOAD] Rejected oversized request", "ip", clientIP, "content_length", ctx.Request.ContentLength)
			handleInvalidInputError(ctx, handler.uploads.TooLargeError())
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			zap.S().Infow("[UPLOAD] Rejected oversized request", "ip", clientIP, "limit", tooLarge.Limit)
			handleInvalidInputError(ctx, handler.uploads.TooLargeError())
			return
		}
		handleInvalidInputError(ctx, errors.New("no file provided"))
		return
	}
	datasetName := ctx.PostForm("dataset_name")
	if strings.TrimSpace(datasetName) == "" {
		handleInvalidInputError(ctx, errors.New("dataset_name is required"))
		return
	}
	name := services.DeriveName(datasetName)
	if err := services.ValidateName(name); err != nil {
		handleInvalidInputError(ctx, err)
		return
	}
	if err := handler.uploads.ValidateFile(fileHeader); err != nil {
		zap.S().Infow("[UPLOAD] Rejected file", "file", fileHeader.Filename, "ip", clientIP, "error", err)
		handleInvalidInputError(ctx, err)
		return
	}

	table, err := handler.uploads.ProcessFile(fileHeader, name)
	if err != nil {
		zap.S().Errorw("[UPLOAD] File processing failed", "file", fileHeader.Filename, "dataset", name, "ip", clientIP, "error", err)
		handleInternalServerError(ctx, err)
		return
	}
	metrics.DatasetsWritten.WithLabelValues("upload").Inc()

	zap.S().Infow("[UPLOAD] File upload successful",
		"dataset", name,
		"file", fileHeader.Filename,
		"size", fileHeader.Size,
		"rows", len(table.Rows),
		"duration", time.Since(startTime),
		"ip", clientIP,
	)

	ctx.JSON(http.StatusOK, models.ToolResponse{
		Success: true,
		Message: fmt.Sprintf("CSV file uploaded as '%s'", datasetName),
		Data: models.UploadResult{
			Filename:    services.Filename(name),
			Rows:        len(table.Rows),
			Columns:     table.Columns,
			Sample:      table.Head(3),
			APIEndpoint: dataEndpoint(name),
		},
	})
}
