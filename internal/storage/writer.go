package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

// IWriter exposes the tables bound to one open transaction.
type IWriter interface {
	Accounts() sqlconfig.IAccountTable
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx       bob.Tx
	accounts *sqlconfig.AccountsTable
}

var _ IWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:       tx,
		accounts: sqlconfig.NewAccountsTable(tx),
	}
}

func (w *Writer) Accounts() sqlconfig.IAccountTable {
	return w.accounts
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
