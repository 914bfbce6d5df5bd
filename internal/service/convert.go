package service

import (
	"context"
	"errors"

	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

func accountFromStorage(row *sqlconfig.Account) model.Account {
	return model.Account{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Balance: row.Balance,
	}
}

func accountToStorage(account model.Account) *sqlconfig.Account {
	return &sqlconfig.Account{
		ID:      account.ID,
		OwnerID: account.OwnerID,
		Balance: account.Balance,
	}
}

func accountsFromStorage(rows []*sqlconfig.Account) []model.Account {
	accounts := make([]model.Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts
}

func userFromStorage(row *sqlconfig.User) model.User {
	return model.User{
		ID:     row.ID,
		Name:   row.Name,
		Type:   row.Type,
		Number: row.Number,
		Email:  row.Email,
		Active: row.Active,
	}
}

func accountNotFound(id int64) error {
	return newError(ErrNotFound, "account not found: %d", id)
}

// accountLoader reads accounts for the cache, mapping a missing row to
// ErrNotFound.
type accountLoader struct {
	accounts sqlconfig.IAccountTable
}

func (l accountLoader) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	row, err := l.accounts.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}
