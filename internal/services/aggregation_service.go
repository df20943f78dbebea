package services

import (
	"sort"
	"time"

	"baamview/internal/models"
)

// aggregationService folds a transaction export into summary rollups.
type aggregationService struct{}

// NewAggregationService creates a new Summarizer.
func NewAggregationService() Summarizer {
	return &aggregationService{}
}

// Summarize validates the export, sorts it by timestamp (stable, so
// same-timestamp records keep their input order) and folds it into a
// fresh Summary. The table may be nil when no category file was loaded;
// every transaction then lands in the uncategorized bucket.
//
// Accumulation rules, per transaction:
//   - CREDIT adds to income, DEBIT to expense; any other token counts
//     toward totals only.
//   - The day bucket accumulates income/expense and overwrites its
//     balance, so the day ends with the balance of its last transaction.
//   - The category bucket is resolved through the table, falling back
//     to uncategorized when the claimed id is unknown.
//   - The type bucket is keyed by description.
//   - OverallAmount adds every amount unsigned, regardless of
//     direction: it is a volume figure, not a net balance.
func (s *aggregationService) Summarize(raw []models.RawTransaction, table *CategoryTable) (*models.Summary, error) {
	if err := ValidateTransactions(raw); err != nil {
		return nil, err
	}
	if table == nil {
		table = BuildCategoryTable(nil)
	}

	txs := make([]models.NormalizedTransaction, len(raw))
	for i, r := range raw {
		txs[i] = Canonicalize(r)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.Before(txs[j].Timestamp)
	})

	summary := &models.Summary{
		StartDate:      txs[0].Timestamp.UTC().Format(time.RFC3339),
		EndDate:        txs[len(txs)-1].Timestamp.UTC().Format(time.RFC3339),
		TotalCount:     len(txs),
		DailySummaries: make(map[string]*models.DailySummary),
		Categories:     []*models.CategorySummary{},
		Types:          []*models.TypeSummary{},
	}

	categoryIndex := make(map[int64]*models.CategorySummary)
	typeIndex := make(map[string]*models.TypeSummary)

	for _, tx := range txs {
		switch tx.Direction {
		case models.DirectionCredit:
			summary.Income += tx.Amount
			summary.IncomeCount++
		case models.DirectionDebit:
			summary.Expense += tx.Amount
			summary.ExpenseCount++
		}

		day := summary.DailySummaries[tx.DayKey]
		if day == nil {
			day = &models.DailySummary{}
			summary.DailySummaries[tx.DayKey] = day
		}
		switch tx.Direction {
		case models.DirectionCredit:
			day.Income += tx.Amount
		case models.DirectionDebit:
			day.Expense += tx.Amount
		}
		day.Balance = tx.Balance

		rec := table.Lookup(tx.CategoryID)
		category := categoryIndex[rec.ID]
		if category == nil {
			category = &models.CategorySummary{ID: rec.ID, Name: rec.Name, Color: rec.Color}
			categoryIndex[rec.ID] = category
			summary.Categories = append(summary.Categories, category)
		}
		category.Add(tx.Direction, tx.Amount)

		typ := typeIndex[tx.Description]
		if typ == nil {
			typ = &models.TypeSummary{Name: tx.Description}
			typeIndex[tx.Description] = typ
			summary.Types = append(summary.Types, typ)
		}
		typ.Add(tx.Direction, tx.Amount)

		summary.OverallAmount += tx.Amount
	}

	return summary, nil
}
