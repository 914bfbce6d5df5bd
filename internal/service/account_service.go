package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-server/internal/cache"
	"github.com/carson-networks/account-server/internal/category"
	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/history"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
	"github.com/carson-networks/account-server/internal/validation"
)

// EventPublisher delivers events to subscribed listeners.
type EventPublisher interface {
	Publish(event events.Event)
}

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	cache     *cache.AccountCache
	pipeline  *validation.Pipeline
	publisher EventPublisher
	history   *history.TransactionHistory
	tree      *category.Node
	log       logrus.FieldLogger
}

func NewAccountService(
	store *storage.Storage,
	accountCache *cache.AccountCache,
	pipeline *validation.Pipeline,
	publisher EventPublisher,
	transactions *history.TransactionHistory,
	tree *category.Node,
	log logrus.FieldLogger,
) *AccountService {
	return &AccountService{
		storage:   store,
		cache:     accountCache,
		pipeline:  pipeline,
		publisher: publisher,
		history:   transactions,
		tree:      tree,
		log:       log,
	}
}

// CreateAccount validates the draft, checks the owner exists and persists the
// account.
func (s *AccountService) CreateAccount(ctx context.Context, draft model.AccountDraft) (*model.Account, error) {
	if !s.pipeline.Validate(draft) {
		return nil, newError(ErrInvalidArgument, "account validation failed: %s",
			strings.Join(s.pipeline.ValidateWithErrors(draft), ", "))
	}

	account := draft.Account()
	ownerExists, err := s.storage.Users.Exists(ctx, account.OwnerID)
	if err != nil {
		s.log.WithError(err).WithField("ownerID", account.OwnerID).Error("AccountService.CreateAccount.Users.Exists")
		return nil, err
	}
	if !ownerExists {
		return nil, newError(ErrPreconditionFailed, "user does not exist: %d", account.OwnerID)
	}

	row, err := s.storage.Accounts.Save(ctx, accountToStorage(account))
	if err != nil {
		s.log.WithError(err).WithField("accountID", account.ID).Error("AccountService.CreateAccount.Accounts.Save")
		return nil, err
	}

	saved := accountFromStorage(row)
	// Save replaces an existing row with the same id.
	s.cache.Invalidate(saved.ID)
	s.publisher.Publish(events.AccountCreated{Account: saved})
	return &saved, nil
}

// GetAccount reads an account straight from storage.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return accountLoader{accounts: s.storage.Accounts}.GetAccount(ctx, id)
}

// GetAccountCached reads an account through the cache.
func (s *AccountService) GetAccountCached(ctx context.Context, id int64) (*model.Account, error) {
	return s.cache.FindByIDWithCache(ctx, id)
}

// ClearCache drops every cached account.
func (s *AccountService) ClearCache() {
	s.cache.Clear()
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

func (s *AccountService) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]model.Account, error) {
	rows, err := s.storage.Accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

// UpdateBalance sets an account's balance, records the movement and announces
// it.
func (s *AccountService) UpdateBalance(ctx context.Context, id int64, newBalance decimal.Decimal) (*model.Account, error) {
	if newBalance.IsNegative() {
		return nil, newError(ErrInvalidArgument, "balance cannot be less than 0")
	}

	current, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := current.WithBalance(newBalance)
	if errs := s.pipeline.ValidateWithErrors(updated.Draft()); len(errs) > 0 {
		return nil, newError(ErrInvalidArgument, "account validation failed: %s", strings.Join(errs, ", "))
	}

	row, err := s.storage.Accounts.Update(ctx, accountToStorage(updated))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		s.log.WithError(err).WithField("accountID", id).Error("AccountService.UpdateBalance.Accounts.Update")
		return nil, err
	}
	s.cache.Invalidate(id)

	saved := accountFromStorage(row)
	s.publisher.Publish(events.BalanceChanged{
		Account:    saved,
		OldBalance: current.Balance,
		NewBalance: saved.Balance,
	})
	s.recordBalanceChange(saved.ID, current.Balance, saved.Balance)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("oldBalance", current.Balance.String())
		logData.AddData("newBalance", saved.Balance.String())
	}

	return &saved, nil
}

func (s *AccountService) recordBalanceChange(accountID int64, oldBalance, newBalance decimal.Decimal) {
	delta := newBalance.Sub(oldBalance)
	switch {
	case delta.IsPositive():
		s.history.Add(model.NewTransaction(accountID, delta, model.TransactionDeposit, "balance update"))
	case delta.IsNegative():
		s.history.Add(model.NewTransaction(accountID, delta, model.TransactionWithdrawal, "balance update"))
	}
}

// DeleteAccount removes an account whose balance is exactly zero.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if account.Balance.IsPositive() {
		return newError(ErrPreconditionFailed, "cannot delete account with positive balance")
	}

	err = s.storage.Accounts.Delete(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return accountNotFound(id)
	}
	if err != nil {
		s.log.WithError(err).WithField("accountID", id).Error("AccountService.DeleteAccount.Accounts.Delete")
		return err
	}
	s.cache.Invalidate(id)
	s.history.Clear(id)

	s.publisher.Publish(events.AccountDeleted{AccountID: id})
	return nil
}

func (s *AccountService) AccountExists(ctx context.Context, id int64) (bool, error) {
	return s.storage.Accounts.Exists(ctx, id)
}

// Category returns the account together with the most specific category
// containing its balance.
func (s *AccountService) Category(ctx context.Context, id int64) (*model.Account, *category.Node, error) {
	account, err := s.GetAccountCached(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	node := s.tree.FindOptimalCategory(account.Balance)
	if node == nil {
		return nil, nil, newError(ErrNotFound, "no category for account %d", id)
	}
	return account, node, nil
}

// History returns the account's recent transactions, most recent first when
// limit is positive and in insertion order otherwise.
func (s *AccountService) History(id int64, limit int) []model.Transaction {
	if limit > 0 {
		return s.history.LastN(id, limit)
	}
	return s.history.All(id)
}
