package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "baamview/internal/errors"
	"baamview/internal/loader"
	"baamview/internal/models"
	"baamview/internal/services"
)

// CategoryHandler handles category-mapping preview requests
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// PreviewOptions are the query options for a category preview.
type PreviewOptions struct {
	// FallbackColor replaces the default gray for records without a
	// usable color, so the frontend can match its theme.
	FallbackColor string `form:"fallback_color" binding:"omitempty,hex_color"`
}

// CategoryPreviewResponse documents the preview payload for Swagger.
type CategoryPreviewResponse struct {
	Categories []models.CategoryRecord `json:"categories"`
	Count      int                     `json:"count"`
}

// Preview builds and returns the category table for a mapping export
// @Summary     Preview a category-mapping export
// @Description Build the deduplicated category table (uncategorized entry first) for badge rendering
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       fallback_color query string false "Hex color used instead of the default gray for records without a valid color"
// @Success     200 {object} CategoryPreviewResponse "Category table in insertion order"
// @Failure     400 {object} ErrorResponse "Invalid category file"
// @Router      /categories/preview [post]
func (h *CategoryHandler) Preview(c *gin.Context) {
	var opts PreviewOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	records, err := loader.ParseCategoryFile(data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fallback := opts.FallbackColor
	if fallback == "" {
		fallback = models.DefaultColor
	}
	table := services.BuildCategoryTableWithFallback(records, fallback)

	c.JSON(http.StatusOK, gin.H{
		"categories": table.Records(),
		"count":      table.Len(),
	})
}
