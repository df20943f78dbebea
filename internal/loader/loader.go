// Package loader decodes the two statement export formats. It enforces
// the file shape contract only; per-record anomalies are left for the
// normalizer to degrade gracefully.
package loader

import (
	"encoding/json"

	apperrors "baamview/internal/errors"
	"baamview/internal/models"
)

// categoryEnvelope mirrors the nesting of a category-mapping export:
// the records live under resultSet.innerResponse.
type categoryEnvelope struct {
	ResultSet struct {
		InnerResponse json.RawMessage `json:"innerResponse"`
	} `json:"resultSet"`
}

// ParseCategoryFile decodes a category-mapping export. Anything that is
// not an object holding an array at resultSet.innerResponse is rejected
// with ErrInvalidCategoryFile.
func ParseCategoryFile(data []byte) ([]models.CategoryRecord, error) {
	var env categoryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCategoryFile, err)
	}
	if len(env.ResultSet.InnerResponse) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategoryFile, "missing resultSet.innerResponse")
	}

	var records []models.CategoryRecord
	if err := json.Unmarshal(env.ResultSet.InnerResponse, &records); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCategoryFile, err)
	}
	if records == nil {
		// innerResponse was JSON null, not an array.
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategoryFile, "resultSet.innerResponse is not an array")
	}
	return records, nil
}

// ParseTransactionFile decodes a transaction export, which is a bare
// JSON array of records. Malformed JSON or a non-array is rejected with
// ErrInvalidTransactionFile; an empty array is decoded successfully and
// left for ValidateTransactions to reject.
func ParseTransactionFile(data []byte) ([]models.RawTransaction, error) {
	var txs []models.RawTransaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidTransactionFile, err)
	}
	if txs == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransactionFile, "transaction file is not an array")
	}
	return txs, nil
}
