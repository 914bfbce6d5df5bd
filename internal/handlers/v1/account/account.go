package account

import "github.com/carson-networks/account-server/internal/model"

// Account is the API model for an account.
type Account struct {
	ID      int64   `json:"id" doc:"Account id"`
	OwnerID int64   `json:"ownerId" doc:"Id of the owning user"`
	Balance float64 `json:"balance" doc:"Current balance"`
}

func toAccount(a model.Account) Account {
	return Account{
		ID:      a.ID,
		OwnerID: a.OwnerID,
		Balance: a.Balance.InexactFloat64(),
	}
}

func toAccounts(accounts []model.Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = toAccount(a)
	}
	return out
}

// AccountIDInput addresses a single account by path.
type AccountIDInput struct {
	ID int64 `path:"id" doc:"Account id"`
}

// AccountOutput is the Huma output carrying one account.
type AccountOutput struct {
	Body Account
}

// AccountListOutput is the Huma output carrying a list of accounts.
type AccountListOutput struct {
	Body []Account
}
