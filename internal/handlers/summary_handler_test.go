package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "baamview/internal/errors"
	"baamview/internal/models"
	"baamview/internal/services"
)

// --- mock summarizer ---

type mockSummarizer struct {
	summarizeFn func(txs []models.RawTransaction, table *services.CategoryTable) (*models.Summary, error)
}

func (m *mockSummarizer) Summarize(txs []models.RawTransaction, table *services.CategoryTable) (*models.Summary, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(txs, table)
	}
	return &models.Summary{}, nil
}

var _ services.Summarizer = (*mockSummarizer)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/summaries", handler.Summarize)
	r.POST("/summaries/upload", handler.SummarizeUpload)
	return r
}

const validTransactions = `[
	{"transactionId":"1","transactionDateTime":"2024-01-01T10:00:00Z","creditDebit":"CREDIT","amount":1000,"balance":1000},
	{"transactionId":"2","transactionDateTime":"2024-01-01T12:00:00Z","creditDebit":"DEBIT","amount":400,"balance":600}
]`

const validCategories = `{"resultSet":{"innerResponse":[{"id":5,"name":"Groceries","color":"#FF0000"}]}}`

func TestSummaryHandler_Summarize(t *testing.T) {
	t.Run("returns 200 with aggregated summary", func(t *testing.T) {
		handler := NewSummaryHandler(services.NewAggregationService())
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries",
			`{"transactions":`+validTransactions+`,"categories":`+validCategories+`}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-Run-ID") == "" {
			t.Error("expected an X-Run-ID header")
		}

		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["income"].(float64) != 1000 {
			t.Errorf("expected income 1000, got %v", summary["income"])
		}
		if summary["overallAmount"].(float64) != 1400 {
			t.Errorf("expected overallAmount 1400, got %v", summary["overallAmount"])
		}
		daily := summary["daily_summaries"].(map[string]interface{})
		if _, ok := daily["2024-01-01"]; !ok {
			t.Errorf("expected a daily summary for 2024-01-01, got %v", daily)
		}
	})

	t.Run("works without categories", func(t *testing.T) {
		handler := NewSummaryHandler(services.NewAggregationService())
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries", `{"transactions":`+validTransactions+`}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		categories := summary["categories"].([]interface{})
		first := categories[0].(map[string]interface{})
		if first["name"] != models.UncategorizedName {
			t.Errorf("expected uncategorized bucket, got %v", first["name"])
		}
	})

	t.Run("returns 400 on missing transactions field", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummarizer{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries", `{"categories":`+validCategories+`}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_INPUT" {
			t.Errorf("expected INVALID_INPUT, got %q", code)
		}
	})

	t.Run("returns 400 on non-array transactions", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummarizer{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries", `{"transactions":{"foo":1}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_TRANSACTION_FILE" {
			t.Errorf("expected INVALID_TRANSACTION_FILE, got %q", code)
		}
	})

	t.Run("returns 400 on invalid category file", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummarizer{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries",
			`{"transactions":`+validTransactions+`,"categories":{"foo":1}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_CATEGORY_FILE" {
			t.Errorf("expected INVALID_CATEGORY_FILE, got %q", code)
		}
	})

	t.Run("propagates validation error from the engine", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummarizer{
			summarizeFn: func(_ []models.RawTransaction, _ *services.CategoryTable) (*models.Summary, error) {
				return nil, apperrors.ErrInvalidTransactionFile
			},
		})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "POST", "/summaries", `{"transactions":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_TRANSACTION_FILE" {
			t.Errorf("expected INVALID_TRANSACTION_FILE, got %q", code)
		}
	})
}

func TestSummaryHandler_SummarizeUpload(t *testing.T) {
	t.Run("returns 200 with both files", func(t *testing.T) {
		handler := NewSummaryHandler(services.NewAggregationService())
		r := setupSummaryRouter(handler)

		rec := doMultipartRequest(t, r, "/summaries/upload", map[string]string{
			"transactions": validTransactions,
			"categories":   validCategories,
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["totalCount"].(float64) != 2 {
			t.Errorf("expected totalCount 2, got %v", summary["totalCount"])
		}
	})

	t.Run("returns 200 without categories file", func(t *testing.T) {
		handler := NewSummaryHandler(services.NewAggregationService())
		r := setupSummaryRouter(handler)

		rec := doMultipartRequest(t, r, "/summaries/upload", map[string]string{
			"transactions": validTransactions,
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on missing transactions file", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummarizer{})
		r := setupSummaryRouter(handler)

		rec := doMultipartRequest(t, r, "/summaries/upload", map[string]string{
			"categories": validCategories,
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
