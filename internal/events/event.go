package events

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/model"
)

type Kind string

const (
	KindAccountCreated Kind = "ACCOUNT_CREATED"
	KindBalanceChanged Kind = "BALANCE_CHANGED"
	KindAccountDeleted Kind = "ACCOUNT_DELETED"
)

// Event records a mutation that has already succeeded.
type Event interface {
	Kind() Kind
}

type AccountCreated struct {
	Account model.Account
}

func (AccountCreated) Kind() Kind { return KindAccountCreated }

type BalanceChanged struct {
	Account    model.Account
	OldBalance decimal.Decimal
	NewBalance decimal.Decimal
}

func (BalanceChanged) Kind() Kind { return KindBalanceChanged }

type AccountDeleted struct {
	AccountID int64
}

func (AccountDeleted) Kind() Kind { return KindAccountDeleted }
