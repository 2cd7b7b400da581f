package v1

import (
	"fmt"
	"net/http"
	"time"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// PaperHandler defines the interface for handling paper metadata operations
type PaperHandler interface {
	ListMetadata(ctx *gin.Context)
	GetMetadataByKey(ctx *gin.Context)
	DeleteByKey(ctx *gin.Context)
}

// paperHandler struct holds the services
type paperHandler struct {
	paperMetadataService papers.PaperMetadataService
}

// NewPaperHandler creates a new PaperHandler
func NewPaperHandler(paperMetadataService papers.PaperMetadataService) PaperHandler {
	return &paperHandler{
		paperMetadataService: paperMetadataService,
	}
}

// ListMetadata handles the GET request to list stored papers with optional query parameters
// @Summary List stored papers based on query parameters
// @Description Fetch a list of stored papers filtered by keyword, category, title and publish date, with pagination and sorting options.
// @Tags Paper
// @Accept json
// @Produce json
// @Param keyword query string false "Configured topic keyword"
// @Param category query string false "Primary arXiv category"
// @Param title query string false "Title substring"
// @Param publishedSince query string false "Publish date lower bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} PaperResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /papers [get]
func (handler *paperHandler) ListMetadata(ctx *gin.Context) {
	query := papers.NewPaperQuery()

	if keyword := ctx.Query("keyword"); len(keyword) > 0 {
		query.Keyword = keyword
	}

	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}

	if title := ctx.Query("title"); len(title) > 0 {
		query.Title = title
	}

	if publishedSince := ctx.Query("publishedSince"); len(publishedSince) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, publishedSince)
		if err == nil {
			query.PublishedSince = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	paperList, err := handler.paperMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []PaperResponse{}
	for _, paper := range paperList {
		listResponse = append(listResponse, NewPaperResponse(paper))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByKey handles the GET request to retrieve a paper by its versionless key
// @Summary Retrieve a stored paper by its versionless arXiv key
// @Description Fetch the most recently crawled paper for the given versionless key.
// @Tags Paper
// @Accept json
// @Produce json
// @Param key path string true "Versionless arXiv key"
// @Success 200 {object} PaperResponse
// @Failure 404 {object} ErrorResponse
// @Router /papers/{key} [get]
func (handler *paperHandler) GetMetadataByKey(ctx *gin.Context) {
	key := ctx.Param("key")

	paper, err := handler.paperMetadataService.GetByKey(ctx, key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("paper with key %s not found", key)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, NewPaperResponse(paper))
}

// DeleteByKey handles the DELETE request to remove all rows of a paper key
// @Summary Delete a stored paper by its versionless arXiv key
// @Description Delete all stored rows for the given versionless key across keywords.
// @Tags Paper
// @Accept json
// @Produce json
// @Param key path string true "Versionless arXiv key"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /papers/{key} [delete]
func (handler *paperHandler) DeleteByKey(ctx *gin.Context) {
	key := ctx.Param("key")

	if err := handler.paperMetadataService.DeleteByKey(ctx, key); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting paper with key %s", key)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted paper with key %s", key)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
