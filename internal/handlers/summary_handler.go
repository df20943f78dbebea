package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "baamview/internal/errors"
	"baamview/internal/loader"
	"baamview/internal/logger"
	"baamview/internal/models"
	"baamview/internal/services"
	"baamview/internal/uuid"
)

// SummaryHandler handles statement aggregation requests
type SummaryHandler struct {
	summarizer services.Summarizer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summarizer services.Summarizer) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer}
}

// SummarizeRequest carries the raw exports as the frontend read them
// from disk. Categories are optional; without them every transaction
// lands in the uncategorized bucket.
type SummarizeRequest struct {
	Transactions json.RawMessage `json:"transactions" binding:"required"`
	Categories   json.RawMessage `json:"categories"`
}

// SummaryResponse wraps the aggregation result
type SummaryResponse struct {
	Summary *models.Summary `json:"summary"`
}

// Summarize aggregates a transaction export posted as JSON
// @Summary     Summarize a transaction export
// @Description Aggregate a raw transaction export (and optional category-mapping export) into daily, category and type rollups
// @Tags        summaries
// @Accept      json
// @Produce     json
// @Param       request body SummarizeRequest true "Raw exports"
// @Success     200 {object} SummaryResponse "Aggregated summary"
// @Failure     400 {object} ErrorResponse "Invalid transaction or category file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summaries [post]
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	h.run(c, req.Transactions, req.Categories)
}

// SummarizeUpload aggregates a transaction export posted as multipart files
// @Summary     Summarize uploaded export files
// @Description Same as POST /summaries, but takes the exports as multipart file fields "transactions" and (optionally) "categories"
// @Tags        summaries
// @Accept      multipart/form-data
// @Produce     json
// @Param       transactions formData file true "Transaction export file"
// @Param       categories formData file false "Category-mapping export file"
// @Success     200 {object} SummaryResponse "Aggregated summary"
// @Failure     400 {object} ErrorResponse "Invalid transaction or category file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summaries/upload [post]
func (h *SummaryHandler) SummarizeUpload(c *gin.Context) {
	txFile, err := c.FormFile("transactions")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "transactions file is required"))
		return
	}
	txData, err := readFormFile(txFile)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var catData []byte
	if catFile, err := c.FormFile("categories"); err == nil {
		if catData, err = readFormFile(catFile); err != nil {
			respondWithError(c, err)
			return
		}
	}

	h.run(c, txData, catData)
}

// run executes one aggregation over already-read export bytes.
func (h *SummaryHandler) run(c *gin.Context, txData, catData []byte) {
	txs, err := loader.ParseTransactionFile(txData)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var table *services.CategoryTable
	if len(catData) > 0 {
		records, err := loader.ParseCategoryFile(catData)
		if err != nil {
			respondWithError(c, err)
			return
		}
		table = services.BuildCategoryTable(records)
	}

	summary, err := h.summarizer.Summarize(txs, table)
	if err != nil {
		respondWithError(c, err)
		return
	}

	runID := uuid.New()
	c.Header("X-Run-ID", runID)
	logger.Get().Infow("aggregation run",
		"run_id", runID,
		"transactions", summary.TotalCount,
		"categories", len(summary.Categories),
		"types", len(summary.Types),
		"days", len(summary.DailySummaries),
	)

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
