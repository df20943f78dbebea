package testutil

import (
	"fmt"
	"sync/atomic"

	"baamview/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Tx builds a raw transaction with a unique identifier.
func Tx(timestamp, direction string, amount, balance int64) models.RawTransaction {
	return models.RawTransaction{
		TransactionID:       models.FlexID(fmt.Sprintf("tx-%d", nextID())),
		TransactionDateTime: timestamp,
		CreditDebit:         direction,
		Amount:              amount,
		Balance:             balance,
	}
}

// TxWithCategory builds a raw transaction attributed to the given category.
func TxWithCategory(timestamp, direction string, amount, balance, categoryID int64) models.RawTransaction {
	tx := Tx(timestamp, direction, amount, balance)
	tx.CategoryID = &categoryID
	return tx
}

// TxWithDescription builds a raw transaction with the given description.
func TxWithDescription(timestamp, direction string, amount, balance int64, description string) models.RawTransaction {
	tx := Tx(timestamp, direction, amount, balance)
	tx.TransactionDescription = description
	return tx
}

// Category builds a category record.
func Category(id int64, name, color string) models.CategoryRecord {
	return models.CategoryRecord{ID: id, Name: name, Color: color}
}
