package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable running its queries on exec, which
// may be the pool or an open transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// FindByIDForUpdate retrieves an account and locks its row until the
// surrounding transaction ends. Only meaningful on a transaction executor.
func (t *AccountsTable) FindByIDForUpdate(ctx context.Context, id int64) (*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// Save inserts the account, replacing any existing row with the same id.
func (t *AccountsTable) Save(ctx context.Context, account *Account) (*Account, error) {
	query := psql.Insert(
		im.Into(accountsTable, "id", "owner_id", "balance"),
		im.Values(psql.Arg(account.ID, account.OwnerID, account.Balance)),
		im.OnConflict("id").DoUpdate(im.SetExcluded("owner_id", "balance")),
		im.Returning(accountColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Account]())
}

// Update replaces an existing account. ErrNotFound when the row is absent.
func (t *AccountsTable) Update(ctx context.Context, account *Account) (*Account, error) {
	query := psql.Update(
		um.Table(accountsTable),
		um.SetCol("owner_id").ToArg(account.OwnerID),
		um.SetCol("balance").ToArg(account.Balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(account.ID))),
		um.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// Delete removes an account. ErrNotFound when the row is absent.
func (t *AccountsTable) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From(accountsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every account ordered by id.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Account]())
}

// ListByOwner returns the owner's accounts ordered by id. Served by the
// accounts_owner_id_idx index.
func (t *AccountsTable) ListByOwner(ctx context.Context, ownerID int64) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Account]())
}

func (t *AccountsTable) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, t.exec, accountsTable, id)
}

func exists(ctx context.Context, exec bob.Executor, table string, id int64) (bool, error) {
	query := psql.Select(
		sm.Columns("count(*)"),
		sm.From(table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	count, err := bob.One(ctx, exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
