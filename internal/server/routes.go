package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"chartserver/internal/handlers"
	"chartserver/internal/metrics"
)

// NewRouter builds the gin engine with middleware and all /api routes.
func NewRouter(handler *handlers.Handler, logger *zap.Logger, maxMultipartMemory int64) *gin.Engine {
	router := gin.New()
	if maxMultipartMemory > 0 {
		router.MaxMultipartMemory = maxMultipartMemory
	}

	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(metrics.Middleware())

	router.SetHTMLTemplate(handlers.DocsTemplate)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", handler.Root)
		api.GET("/health", handler.Health)
		api.GET("/datasets", handler.ListDatasets)
		api.GET("/data/:name", handler.GetDataset)
		api.GET("/data/:name/summary", handler.GetDatasetSummary)
		api.GET("/charts/:id", handler.GetChart)
		api.GET("/exports/:filename", handler.DownloadExport)
		api.GET("/docs/ai", handler.AIDocumentation)

		ai := api.Group("/ai")
		{
			ai.POST("/create-sales-data", handler.CreateSalesData)
			ai.POST("/upload-csv", handler.UploadCSV)
			ai.POST("/generate-chart", handler.GenerateChart)
			ai.GET("/datasets", handler.ListDatasetsForAI)
		}
	}

	return router
}
