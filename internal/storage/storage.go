package storage

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/account-server/internal/config"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

// Storage holds the tables the services read through, bound to the pool.
type Storage struct {
	sqlDB      *sql.DB
	db         bob.DB
	Accounts   sqlconfig.IAccountTable
	Users      sqlconfig.IUserTable
	Aggregates sqlconfig.IAccountAggregates
}

func NewStorage(env *config.Config) (*Storage, error) {
	connConfig, err := env.ConnConfig()
	if err != nil {
		return nil, err
	}

	return NewStorageFromDB(stdlib.OpenDB(*connConfig)), nil
}

// NewStorageFromDB wraps an already opened database.
func NewStorageFromDB(sqlDB *sql.DB) *Storage {
	db := bob.NewDB(sqlDB)
	return &Storage{
		sqlDB:      sqlDB,
		db:         db,
		Accounts:   sqlconfig.NewAccountsTable(db),
		Users:      sqlconfig.NewUsersTable(db),
		Aggregates: sqlconfig.NewAccountAggregates(db),
	}
}

// Ping verifies the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}

// Write opens a transaction. The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (IWriter, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
