package services

import (
	"time"

	apperrors "baamview/internal/errors"
	"baamview/internal/models"
)

// dayKeyLayout is the canonical sortable day key. Day bucketing is done
// in UTC; calendar display conventions belong to the presentation layer.
const dayKeyLayout = "2006-01-02"

// timestampLayouts are the timestamp formats observed across export
// versions, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ValidateTransactions is the structural sniff-test for a decoded
// transaction export: it must be non-empty and the first record must
// carry a transaction identifier. It is not per-record validation;
// malformed individual records degrade during canonicalization instead.
func ValidateTransactions(txs []models.RawTransaction) error {
	if len(txs) == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidTransactionFile, "transaction file is empty")
	}
	if txs[0].TransactionID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidTransactionFile, "first record has no transactionId")
	}
	return nil
}

// ParseTimestamp parses a transaction timestamp. The second return
// value reports success; on failure the zero time is returned so the
// record can still be aggregated.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Canonicalize turns one raw record into its normalized form. It never
// fails: an unparseable timestamp becomes the zero time (sorting first
// and bucketing under 0001-01-01), an unrecognized direction token
// becomes OTHER, a missing category id resolves to the uncategorized
// id, and an empty description gets the unknown-type label.
func Canonicalize(raw models.RawTransaction) models.NormalizedTransaction {
	ts, _ := ParseTimestamp(raw.TransactionDateTime)

	dir := models.DirectionOther
	switch models.Direction(raw.CreditDebit) {
	case models.DirectionCredit:
		dir = models.DirectionCredit
	case models.DirectionDebit:
		dir = models.DirectionDebit
	}

	categoryID := models.UncategorizedID
	if raw.CategoryID != nil {
		categoryID = *raw.CategoryID
	}

	description := raw.TransactionDescription
	if description == "" {
		description = models.UnknownTypeLabel
	}

	return models.NormalizedTransaction{
		ID:          string(raw.TransactionID),
		Timestamp:   ts,
		DayKey:      ts.UTC().Format(dayKeyLayout),
		Direction:   dir,
		Amount:      raw.Amount,
		Balance:     raw.Balance,
		Description: description,
		CategoryID:  categoryID,
	}
}
