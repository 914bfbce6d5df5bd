package sqlconfig

import (
	"context"

	"github.com/shopspring/decimal"
)

const accountsTable = "accounts"

var accountColumns = []any{"id", "owner_id", "balance"}

// Account represents an accounts row.
type Account struct {
	ID      int64           `db:"id"`
	OwnerID int64           `db:"owner_id"`
	Balance decimal.Decimal `db:"balance"`
}

// IAccountTable defines the account storage operations the services consume.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter --filename mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*Account, error)
	Save(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, account *Account) (*Account, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Account, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Account, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
