package services

import "baamview/internal/models"

// Summarizer aggregates a raw transaction export into a Summary.
type Summarizer interface {
	Summarize(txs []models.RawTransaction, table *CategoryTable) (*models.Summary, error)
}
