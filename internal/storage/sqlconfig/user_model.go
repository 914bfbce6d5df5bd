package sqlconfig

import "context"

const usersTable = "users"

var userColumns = []any{"id", "name", "type", "number", "email", "active"}

// User represents a users row.
type User struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Type   string `db:"type"`
	Number string `db:"number"`
	Email  string `db:"email"`
	Active bool   `db:"active"`
}

// UserCreate is the input for registering a user. The id is generated.
type UserCreate struct {
	Name   string
	Type   string
	Number string
	Email  string
	Active bool
}

//go:generate mockery --name IUserTable --inpackage --with-expecter --filename mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	Register(ctx context.Context, create *UserCreate) (*User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
