package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsTemplateName = "docs_ai"

// DocsTemplate is the HTML documentation page, registered on the engine with SetHTMLTemplate.
var DocsTemplate = template.Must(template.New(docsTemplateName).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Server}} - Documentation</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .endpoint { background: #f5f5f5; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .method { background: #007bff; color: white; padding: 5px 10px; border-radius: 3px; }
        code { background: #e9ecef; padding: 2px 4px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>{{.Server}} - API Documentation</h1>

    <h2>AI Integration Endpoints</h2>

    <div class="endpoint">
        <h3><span class="method">POST</span> /api/ai/create-sales-data</h3>
        <p>Create sales datasets programmatically</p>
        <code>curl -X POST "{{.BaseURL}}/api/ai/create-sales-data" -H "Content-Type: application/json" -d '{"name": "my_sales", "data": [{"month": "Jan", "sales": 10000, "expenses": 5000}]}'</code>
    </div>

    <div class="endpoint">
        <h3><span class="method">POST</span> /api/ai/upload-csv</h3>
        <p>Upload CSV files</p>
        <code>curl -X POST "{{.BaseURL}}/api/ai/upload-csv" -F "file=@data.csv" -F "dataset_name=my_dataset"</code>
    </div>

    <div class="endpoint">
        <h3><span class="method">POST</span> /api/ai/generate-chart</h3>
        <p>Generate charts programmatically. chart_type is one of bar, line, scatter, pie, area, network; export_format is json, csv or xlsx.</p>
        <code>curl -X POST "{{.BaseURL}}/api/ai/generate-chart" -H "Content-Type: application/json" -d '{"chart_type": "bar", "dataset_name": "sales_data", "title": "Sales Chart"}'</code>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> /api/ai/datasets</h3>
        <p>List all datasets</p>
        <code>curl "{{.BaseURL}}/api/ai/datasets"</code>
    </div>

    <h2>Data Endpoints</h2>
    <div class="endpoint">
        <h3><span class="method">GET</span> /api/data/{dataset_name}</h3>
        <p>Get data for any dataset</p>
        <code>curl "{{.BaseURL}}/api/data/sales_data"</code>
    </div>
    <div class="endpoint">
        <h3><span class="method">GET</span> /api/data/{dataset_name}/summary</h3>
        <p>Column types and numeric statistics</p>
        <code>curl "{{.BaseURL}}/api/data/sales_data/summary"</code>
    </div>

    <h2>Server Info</h2>
    <p>Base URL: <code>{{.BaseURL}}</code></p>
    <p>Health Check: <code>{{.BaseURL}}/api/health</code></p>
</body>
</html>
`))

func (handler *Handler) AIDocumentation(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, docsTemplateName, gin.H{
		"Server":  ServerName,
		"BaseURL": handler.baseURL,
	})
}
