package v1

import (
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	paperMetadataService papers.PaperMetadataService,
	crawlService papers.CrawlService,
	reportSettings *config.ReportSettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Papers Routes
	paperHandler := NewPaperHandler(paperMetadataService)
	v1.GET("/papers", paperHandler.ListMetadata)
	v1.GET("/papers/:key", paperHandler.GetMetadataByKey)
	v1.DELETE("/papers/:key", paperHandler.DeleteByKey)

	// Crawl Routes
	crawlHandler := NewCrawlHandler(crawlService)
	v1.POST("/crawls", crawlHandler.Trigger)
	v1.GET("/crawls", crawlHandler.ListRuns)

	// Report Routes
	reportHandler := NewReportHandler(reportSettings)
	v1.GET("/index.html", reportHandler.GetHTMLReport)
	v1.GET("/arxiv-daily.json", reportHandler.GetJSONArchive)
}
