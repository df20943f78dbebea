package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// UnknownTypeLabel is the type bucket for transactions that carry no
// description.
const UnknownTypeLabel = "Unknown"

// Direction classifies how a transaction moves the account balance.
// Anything other than the two known export tokens is coerced to
// DirectionOther: it still counts toward totals but never toward the
// income or expense buckets.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
	DirectionOther  Direction = "OTHER"
)

// FlexID is a transaction identifier that may arrive as either a JSON
// string or a JSON number; exports are inconsistent about this across
// app versions. It normalizes to the string form.
type FlexID string

// UnmarshalJSON accepts a string, a number, or null.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// RawTransaction is one record of a bank transaction export, exactly as
// shipped. Amounts and balances are in the smallest currency unit (Rial).
// Records are immutable once decoded.
type RawTransaction struct {
	TransactionID          FlexID `json:"transactionId"`
	TransactionDateTime    string `json:"transactionDateTime"`
	CreditDebit            string `json:"creditDebit"`
	Amount                 int64  `json:"amount"`
	Balance                int64  `json:"balance"`
	TransactionDescription string `json:"transactionDescription,omitempty"`
	CategoryID             *int64 `json:"categoryId,omitempty"`
}

// NormalizedTransaction is a RawTransaction after canonicalization:
// parsed timestamp, UTC day key, coerced direction, resolved category id
// and defaulted description.
type NormalizedTransaction struct {
	ID          string
	Timestamp   time.Time
	DayKey      string
	Direction   Direction
	Amount      int64
	Balance     int64
	Description string
	CategoryID  int64
}
