package model

import (
	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Account is a balance holder owned by a User.
type Account struct {
	ID      int64
	OwnerID int64
	Balance decimal.Decimal
}

// WithBalance returns a copy of the account carrying the given balance.
func (a Account) WithBalance(balance decimal.Decimal) Account {
	return Account{ID: a.ID, OwnerID: a.OwnerID, Balance: balance}
}

// Draft returns the account as a fully populated draft.
func (a Account) Draft() AccountDraft {
	return AccountDraft{
		ID:      omit.From(a.ID),
		OwnerID: omit.From(a.OwnerID),
		Balance: omit.From(a.Balance),
	}
}

// AccountDraft is an account as received from a caller. Any field may be unset.
type AccountDraft struct {
	ID      omit.Val[int64]
	OwnerID omit.Val[int64]
	Balance omit.Val[decimal.Decimal]
}

// Account converts the draft to a concrete account. Unset fields become zero
// values, so callers validate first.
func (d AccountDraft) Account() Account {
	return Account{
		ID:      d.ID.GetOrZero(),
		OwnerID: d.OwnerID.GetOrZero(),
		Balance: d.Balance.GetOrZero(),
	}
}
