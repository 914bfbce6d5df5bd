package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

var _ IUserTable = (*UsersTable)(nil)

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// Register inserts a user and returns the stored row with its generated id.
func (t *UsersTable) Register(ctx context.Context, create *UserCreate) (*User, error) {
	query := psql.Insert(
		im.Into(usersTable, "name", "type", "number", "email", "active"),
		im.Values(psql.Arg(create.Name, create.Type, create.Number, create.Email, create.Active)),
		im.Returning(userColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
}

func (t *UsersTable) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, t.exec, usersTable, id)
}
