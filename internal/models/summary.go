package models

// BucketTotals accumulates one bucket's worth of transactions.
// OTHER-direction transactions count toward TotalAmount and
// TransactionCount only.
type BucketTotals struct {
	Income           int64 `json:"income"`
	IncomeCount      int   `json:"incomeCount"`
	Expense          int64 `json:"expense"`
	ExpenseCount     int   `json:"expenseCount"`
	TotalAmount      int64 `json:"totalAmount"`
	TransactionCount int   `json:"transactionCount"`
}

// Add records one transaction against the bucket.
func (b *BucketTotals) Add(dir Direction, amount int64) {
	switch dir {
	case DirectionCredit:
		b.Income += amount
		b.IncomeCount++
	case DirectionDebit:
		b.Expense += amount
		b.ExpenseCount++
	}
	b.TotalAmount += amount
	b.TransactionCount++
}

// DailySummary is the per-calendar-day rollup. Income and expense
// accumulate; Balance is overwritten by each transaction processed for
// the day, so it ends up as the balance of the chronologically last one.
type DailySummary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// CategorySummary is the per-category rollup. Name and color are
// denormalized copies from the category table so the presentation layer
// can render badges without a second lookup.
type CategorySummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	BucketTotals
}

// TypeSummary is the rollup per transaction description. The name is
// the bucket key itself.
type TypeSummary struct {
	Name string `json:"name"`
	BucketTotals
}

// Summary is the aggregate produced by one aggregation run. It owns all
// of its nested maps and lists; nothing aliases the input transactions
// or the category table. Category and type lists are in first-encounter
// order, which keeps downstream chart output deterministic.
type Summary struct {
	StartDate      string                   `json:"startDate"`
	EndDate        string                   `json:"endDate"`
	Income         int64                    `json:"income"`
	IncomeCount    int                      `json:"incomeCount"`
	Expense        int64                    `json:"expense"`
	ExpenseCount   int                      `json:"expenseCount"`
	OverallAmount  int64                    `json:"overallAmount"`
	TotalCount     int                      `json:"totalCount"`
	DailySummaries map[string]*DailySummary `json:"daily_summaries"`
	Categories     []*CategorySummary       `json:"categories"`
	Types          []*TypeSummary           `json:"types"`
}
