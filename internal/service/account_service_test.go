package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

// -- CreateAccount tests --

func TestCreateAccount_Success(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().Exists(mock.Anything, int64(10)).Return(true, nil)
	env.accounts.EXPECT().Save(mock.Anything, accountWith(1, "50")).Return(row(1, 10, "50"), nil)

	account, err := env.svc.Account.CreateAccount(context.Background(), model.AccountDraft{
		ID:      omit.From(int64(1)),
		OwnerID: omit.From(int64(10)),
		Balance: omit.From(decimal.NewFromInt(50)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, int64(10), account.OwnerID)
	require.Len(t, env.listener.recorded(), 1)
	created, ok := env.listener.recorded()[0].(events.AccountCreated)
	require.True(t, ok)
	assert.Equal(t, *account, created.Account)
}

func TestCreateAccount_ReplacingExistingDropsCachedEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "500"), nil).Once()
	primed, err := env.svc.Account.GetAccountCached(ctx, 1)
	require.NoError(t, err)
	require.True(t, primed.Balance.Equal(decimal.NewFromInt(500)))

	env.users.EXPECT().Exists(mock.Anything, int64(10)).Return(true, nil)
	env.accounts.EXPECT().Save(mock.Anything, accountWith(1, "42")).Return(row(1, 10, "42"), nil)
	_, err = env.svc.Account.CreateAccount(ctx, model.AccountDraft{
		ID:      omit.From(int64(1)),
		OwnerID: omit.From(int64(10)),
		Balance: omit.From(decimal.NewFromInt(42)),
	})
	require.NoError(t, err)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "42"), nil).Once()
	cached, err := env.svc.Account.GetAccountCached(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cached.Balance.Equal(decimal.NewFromInt(42)), "cached balance %s", cached.Balance)
}

func TestCreateAccount_InvalidOwner(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Account.CreateAccount(context.Background(), model.AccountDraft{
		OwnerID: omit.From(int64(0)),
		Balance: omit.From(decimal.NewFromInt(50)),
	})

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "must have a valid owner id")
	assert.Contains(t, err.Error(), "account must be active with complete data")
	assert.Empty(t, env.listener.recorded())
}

func TestCreateAccount_NegativeBalance(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Account.CreateAccount(context.Background(), model.AccountDraft{
		ID:      omit.From(int64(1)),
		OwnerID: omit.From(int64(10)),
		Balance: omit.From(decimal.NewFromInt(-1)),
	})

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "account validation failed: balance cannot be less than 0", err.Error())
}

func TestCreateAccount_OwnerMissing(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().Exists(mock.Anything, int64(10)).Return(false, nil)

	_, err := env.svc.Account.CreateAccount(context.Background(), model.Account{ID: 1, OwnerID: 10, Balance: decimal.NewFromInt(5)}.Draft())

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Empty(t, env.listener.recorded())
}

func TestCreateAccount_StorageError(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().Exists(mock.Anything, int64(10)).Return(true, nil)
	env.accounts.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	_, err := env.svc.Account.CreateAccount(context.Background(), model.Account{ID: 1, OwnerID: 10, Balance: decimal.NewFromInt(5)}.Draft())

	assert.EqualError(t, err, "insert failed")
	assert.Empty(t, env.listener.recorded())
	assert.Equal(t, "AccountService.CreateAccount.Accounts.Save", env.hook.LastEntry().Message)
}

// -- Read tests --

func TestGetAccount_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, sqlconfig.ErrNotFound)

	_, err := env.svc.Account.GetAccount(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "account not found: 7", err.Error())
}

func TestGetAccountCached_ReadsStoreOnce(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "500"), nil).Once()

	first, err := env.svc.Account.GetAccountCached(context.Background(), 1)
	require.NoError(t, err)
	second, err := env.svc.Account.GetAccountCached(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClearCache_ForcesReload(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "500"), nil).Twice()

	_, err := env.svc.Account.GetAccountCached(context.Background(), 1)
	require.NoError(t, err)
	env.svc.Account.ClearCache()
	_, err = env.svc.Account.GetAccountCached(context.Background(), 1)
	require.NoError(t, err)
}

func TestListAccountsByOwner(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().ListByOwner(mock.Anything, int64(10)).
		Return([]*sqlconfig.Account{row(1, 10, "5"), row(2, 10, "6")}, nil)

	accounts, err := env.svc.Account.ListAccountsByOwner(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(2), accounts[1].ID)
}

func TestListAccounts_Error(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := env.svc.Account.ListAccounts(context.Background())

	assert.EqualError(t, err, "db down")
}

// -- UpdateBalance tests --

func TestUpdateBalance_RejectsNegative(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Account.UpdateBalance(context.Background(), 1, decimal.NewFromInt(-5))

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, env.listener.recorded())
}

func TestUpdateBalance_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "100"), nil).Twice()
	env.accounts.EXPECT().Update(mock.Anything, accountWith(1, "250")).Return(row(1, 10, "250"), nil).Once()
	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "250"), nil).Once()

	_, err := env.svc.Account.GetAccountCached(ctx, 1)
	require.NoError(t, err)

	updated, err := env.svc.Account.UpdateBalance(ctx, 1, decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(250)))

	cached, err := env.svc.Account.GetAccountCached(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cached.Balance.Equal(decimal.NewFromInt(250)))

	recorded := env.listener.recorded()
	require.Len(t, recorded, 1)
	changed := recorded[0].(events.BalanceChanged)
	assert.True(t, changed.OldBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, changed.NewBalance.Equal(decimal.NewFromInt(250)))

	history := env.svc.Account.History(1, 0)
	require.Len(t, history, 1)
	assert.Equal(t, model.TransactionDeposit, history[0].Kind)
	assert.True(t, history[0].Amount.Equal(decimal.NewFromInt(150)))
}

func TestUpdateBalance_WithdrawalAndNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "100"), nil).Once()
	env.accounts.EXPECT().Update(mock.Anything, accountWith(1, "40")).Return(row(1, 10, "40"), nil).Once()
	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "40"), nil).Once()
	env.accounts.EXPECT().Update(mock.Anything, accountWith(1, "40")).Return(row(1, 10, "40"), nil).Once()

	_, err := env.svc.Account.UpdateBalance(ctx, 1, decimal.NewFromInt(40))
	require.NoError(t, err)
	_, err = env.svc.Account.UpdateBalance(ctx, 1, decimal.NewFromInt(40))
	require.NoError(t, err)

	history := env.svc.Account.History(1, 10)
	require.Len(t, history, 1)
	assert.Equal(t, model.TransactionWithdrawal, history[0].Kind)
	assert.True(t, history[0].Amount.Equal(decimal.NewFromInt(-60)))
}

func TestUpdateBalance_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, sqlconfig.ErrNotFound)

	_, err := env.svc.Account.UpdateBalance(context.Background(), 9, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, env.listener.recorded())
}

// -- DeleteAccount tests --

func TestDeleteAccount_PositiveBalance(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "300"), nil).Twice()

	err := env.svc.Account.DeleteAccount(context.Background(), 1)

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Empty(t, env.listener.recorded())

	still, err := env.svc.Account.GetAccount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), still.ID)
}

func TestDeleteAccount_Success(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "0"), nil)
	env.accounts.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	require.NoError(t, env.svc.Account.DeleteAccount(context.Background(), 1))

	recorded := env.listener.recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, events.AccountDeleted{AccountID: 1}, recorded[0])
	assert.Empty(t, env.svc.Account.History(1, 0))
}

// -- Category tests --

func TestCategory(t *testing.T) {
	env := newTestEnv(t)

	env.accounts.EXPECT().FindByID(mock.Anything, int64(1)).Return(row(1, 10, "3500"), nil)

	account, node, err := env.svc.Account.Category(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "PremiumPlus", node.Name())
}
