package transaction

import (
	"time"

	"github.com/carson-networks/account-server/internal/model"
)

// Transaction is the API response model for a history entry.
type Transaction struct {
	ID          string    `json:"id" doc:"Transaction id"`
	AccountID   int64     `json:"accountId" doc:"Account id"`
	Amount      float64   `json:"amount" doc:"Signed amount"`
	Type        string    `json:"type" enum:"DEPOSIT,WITHDRAWAL,TRANSFER_IN,TRANSFER_OUT" doc:"Kind of movement"`
	Timestamp   time.Time `json:"timestamp" doc:"When the movement happened"`
	Description string    `json:"description" doc:"Free text description"`
}

func toTransaction(tx model.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Amount:      tx.Amount.InexactFloat64(),
		Type:        string(tx.Kind),
		Timestamp:   tx.Timestamp,
		Description: tx.Description,
	}
}
