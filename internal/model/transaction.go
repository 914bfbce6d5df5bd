package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit     TransactionKind = "DEPOSIT"
	TransactionWithdrawal  TransactionKind = "WITHDRAWAL"
	TransactionTransferIn  TransactionKind = "TRANSFER_IN"
	TransactionTransferOut TransactionKind = "TRANSFER_OUT"
)

// Transaction is a single balance movement on one account.
type Transaction struct {
	ID          string
	AccountID   int64
	Amount      decimal.Decimal
	Kind        TransactionKind
	Timestamp   time.Time
	Description string
}

// NewTransaction stamps a transaction with a fresh id and the current time.
func NewTransaction(accountID int64, amount decimal.Decimal, kind TransactionKind, description string) Transaction {
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AccountID:   accountID,
		Amount:      amount,
		Kind:        kind,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}
}
