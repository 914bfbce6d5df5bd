package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferResult is the outcome of a transfer. TransferID is set only on success.
type TransferResult struct {
	TransferID    string
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Success       bool
	Message       string
	Timestamp     time.Time
}

const TransferSucceededMessage = "transfer completed successfully"

func TransferSucceeded(transferID string, fromID, toID int64, amount decimal.Decimal) TransferResult {
	return TransferResult{
		TransferID:    transferID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Success:       true,
		Message:       TransferSucceededMessage,
		Timestamp:     time.Now().UTC(),
	}
}

func TransferFailed(fromID, toID int64, amount decimal.Decimal, reason string) TransferResult {
	return TransferResult{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Message:       reason,
		Timestamp:     time.Now().UTC(),
	}
}
