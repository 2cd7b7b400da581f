package v1

import (
	"fmt"
	"net/http"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// CrawlHandler defines the interface for handling crawl operations
type CrawlHandler interface {
	Trigger(ctx *gin.Context)
	ListRuns(ctx *gin.Context)
}

// crawlHandler struct holds the services
type crawlHandler struct {
	crawlService papers.CrawlService
}

// NewCrawlHandler creates a new CrawlHandler
func NewCrawlHandler(crawlService papers.CrawlService) CrawlHandler {
	return &crawlHandler{
		crawlService: crawlService,
	}
}

// Trigger handles the POST request to run a crawl synchronously
// @Summary Trigger a crawl over the configured keywords
// @Description Fetch papers from the arXiv feed for the requested keywords (all configured keywords when omitted), store them and refresh the report artifacts.
// @Tags Crawl
// @Accept json
// @Produce json
// @Param requestBody body TriggerCrawlRequest false "Keywords to crawl"
// @Success 201 {object} CrawlRunResponse
// @Failure 400 {object} ErrorResponse
// @Router /crawls [post]
func (handler *crawlHandler) Trigger(ctx *gin.Context) {

	var request TriggerCrawlRequest

	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid crawl request: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	run, err := handler.crawlService.Crawl(ctx, request.Keywords)
	if err != nil {
		errorResponse := ErrorResponse{
			Message: fmt.Sprintf("crawl failed: %v", err.Error()),
		}
		if run != nil {
			// The run was recorded; report its failure state.
			ctx.JSON(http.StatusBadGateway, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewCrawlRunResponse(run))
}

// ListRuns handles the GET request to list recent crawl runs
// @Summary List recent crawl runs
// @Description Fetch the most recent crawl runs, newest first.
// @Tags Crawl
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Success 200 {array} CrawlRunResponse
// @Failure 404 {object} ErrorResponse
// @Router /crawls [get]
func (handler *crawlHandler) ListRuns(ctx *gin.Context) {
	limit := 0
	if rawLimit := ctx.Query("limit"); len(rawLimit) > 0 {
		limit = strutil.ConvertToInt(rawLimit)
	}

	runs, err := handler.crawlService.ListRuns(ctx, limit)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []CrawlRunResponse{}
	for _, run := range runs {
		listResponse = append(listResponse, NewCrawlRunResponse(run))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
