package service

import (
	"context"

	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// StatsService exposes balance aggregates computed by the database.
type StatsService struct {
	storage *storage.Storage
}

func NewStatsService(store *storage.Storage) *StatsService {
	return &StatsService{storage: store}
}

func (s *StatsService) OwnerSummary(ctx context.Context, ownerID int64) (*sqlconfig.OwnerSummary, error) {
	return s.storage.Aggregates.SummaryByOwner(ctx, ownerID)
}

func (s *StatsService) Totals(ctx context.Context) (*sqlconfig.Totals, error) {
	return s.storage.Aggregates.Total(ctx)
}

// TopAccounts returns the richest accounts. A non-positive limit means the
// default; limits above MaxTopLimit are capped.
func (s *StatsService) TopAccounts(ctx context.Context, limit int) ([]model.Account, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	limit = min(limit, MaxTopLimit)

	rows, err := s.storage.Aggregates.TopByBalance(ctx, limit)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

func (s *StatsService) RangeCounts(ctx context.Context) (*sqlconfig.RangeCounts, error) {
	return s.storage.Aggregates.CountByRange(ctx)
}
