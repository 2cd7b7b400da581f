package v1

import (
	"net/http"
	"os"

	"arxiv_daily_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for serving the generated report artifacts
type ReportHandler interface {
	GetHTMLReport(ctx *gin.Context)
	GetJSONArchive(ctx *gin.Context)
}

// reportHandler struct holds the report settings
type reportHandler struct {
	settings *config.ReportSettings
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(settings *config.ReportSettings) ReportHandler {
	return &reportHandler{
		settings: settings,
	}
}

// GetHTMLReport handles the GET request to serve the rendered report page
// @Summary Serve the rendered HTML report page
// @Description Serve the index.html generated by the most recent crawl or rebuild.
// @Tags Report
// @Produce html
// @Success 200 {file} file "Rendered report page"
// @Failure 404 {object} ErrorResponse
// @Router /index.html [get]
func (handler *reportHandler) GetHTMLReport(ctx *gin.Context) {
	handler.serveFile(ctx, handler.settings.HTMLPath)
}

// GetJSONArchive handles the GET request to serve the JSON archive
// @Summary Serve the JSON paper archive
// @Description Serve the keyword-keyed arxiv-daily.json archive file.
// @Tags Report
// @Produce json
// @Success 200 {file} file "JSON paper archive"
// @Failure 404 {object} ErrorResponse
// @Router /arxiv-daily.json [get]
func (handler *reportHandler) GetJSONArchive(ctx *gin.Context) {
	handler.serveFile(ctx, handler.settings.JSONPath)
}

func (handler *reportHandler) serveFile(ctx *gin.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "report not generated yet"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.File(path)
}
