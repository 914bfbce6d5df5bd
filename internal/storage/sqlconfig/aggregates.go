package sqlconfig

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Balance range boundaries used by CountByRange.
var (
	LowRangeUpper = decimal.NewFromInt(1000)
	MidRangeUpper = decimal.NewFromInt(5000)
)

// OwnerSummary aggregates the balances of one owner's accounts.
type OwnerSummary struct {
	OwnerID        int64           `db:"-"`
	AccountCount   int64           `db:"account_count"`
	TotalBalance   decimal.Decimal `db:"total_balance"`
	AverageBalance decimal.Decimal `db:"average_balance"`
	MinBalance     decimal.Decimal `db:"min_balance"`
	MaxBalance     decimal.Decimal `db:"max_balance"`
}

// Totals aggregates every account.
type Totals struct {
	AccountCount int64           `db:"account_count"`
	TotalBalance decimal.Decimal `db:"total_balance"`
}

// RangeCounts counts accounts per balance range: [0,1000), [1000,5000) and [5000,inf).
type RangeCounts struct {
	Low  int64 `db:"low"`
	Mid  int64 `db:"mid"`
	High int64 `db:"high"`
}

//go:generate mockery --name IAccountAggregates --inpackage --with-expecter --filename mock_IAccountAggregates.go
type IAccountAggregates interface {
	SummaryByOwner(ctx context.Context, ownerID int64) (*OwnerSummary, error)
	Total(ctx context.Context) (*Totals, error)
	TopByBalance(ctx context.Context, limit int) ([]*Account, error)
	CountByRange(ctx context.Context) (*RangeCounts, error)
}

// AccountAggregates runs server-side aggregate queries over the accounts table.
type AccountAggregates struct {
	exec bob.Executor
}

var _ IAccountAggregates = (*AccountAggregates)(nil)

func NewAccountAggregates(exec bob.Executor) *AccountAggregates {
	return &AccountAggregates{exec: exec}
}

// SummaryByOwner returns a zero-count summary for an owner without accounts.
func (a *AccountAggregates) SummaryByOwner(ctx context.Context, ownerID int64) (*OwnerSummary, error) {
	query := psql.Select(
		sm.Columns(
			"count(*) AS account_count",
			"COALESCE(SUM(balance), 0) AS total_balance",
			"COALESCE(AVG(balance), 0) AS average_balance",
			"COALESCE(MIN(balance), 0) AS min_balance",
			"COALESCE(MAX(balance), 0) AS max_balance",
		),
		sm.From(accountsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	summary, err := bob.One(ctx, a.exec, query, scan.StructMapper[*OwnerSummary]())
	if err != nil {
		return nil, err
	}
	summary.OwnerID = ownerID
	return summary, nil
}

func (a *AccountAggregates) Total(ctx context.Context) (*Totals, error) {
	query := psql.Select(
		sm.Columns(
			"count(*) AS account_count",
			"COALESCE(SUM(balance), 0) AS total_balance",
		),
		sm.From(accountsTable),
	)
	return bob.One(ctx, a.exec, query, scan.StructMapper[*Totals]())
}

// TopByBalance returns up to limit accounts, richest first, ties by id.
func (a *AccountAggregates) TopByBalance(ctx context.Context, limit int) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.OrderBy("balance").Desc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(limit),
	)
	return bob.All(ctx, a.exec, query, scan.StructMapper[*Account]())
}

func (a *AccountAggregates) CountByRange(ctx context.Context) (*RangeCounts, error) {
	query := psql.Select(
		sm.Columns(
			psql.Raw("count(*) FILTER (WHERE balance < ?) AS low", LowRangeUpper),
			psql.Raw("count(*) FILTER (WHERE balance >= ? AND balance < ?) AS mid", LowRangeUpper, MidRangeUpper),
			psql.Raw("count(*) FILTER (WHERE balance >= ?) AS high", MidRangeUpper),
		),
		sm.From(accountsTable),
	)
	return bob.One(ctx, a.exec, query, scan.StructMapper[*RangeCounts]())
}
