package validation

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/model"
)

// Strategy is a single account predicate paired with the message reported when it fails.
type Strategy interface {
	Validate(account model.AccountDraft) bool
	ErrorMessage() string
}

// MinimumBalance requires a non-negative balance. An unset balance is left to ActiveAccount.
type MinimumBalance struct{}

func (MinimumBalance) Validate(account model.AccountDraft) bool {
	balance, ok := account.Balance.Get()
	if !ok {
		return true
	}
	return balance.GreaterThanOrEqual(decimal.Zero)
}

func (MinimumBalance) ErrorMessage() string {
	return "balance cannot be less than 0"
}

// ActiveAccount requires the id and balance to be present.
type ActiveAccount struct{}

func (ActiveAccount) Validate(account model.AccountDraft) bool {
	return account.ID.IsValue() && account.Balance.IsValue()
}

func (ActiveAccount) ErrorMessage() string {
	return "account must be active with complete data"
}

// OwnerExists checks the shape of the owner id only. Whether the owner is
// registered is checked by the account service.
type OwnerExists struct{}

func (OwnerExists) Validate(account model.AccountDraft) bool {
	ownerID, ok := account.OwnerID.Get()
	return ok && ownerID > 0
}

func (OwnerExists) ErrorMessage() string {
	return "account must have a valid owner id"
}
