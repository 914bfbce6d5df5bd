package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/operator/actions"
	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

// inlineProcessor runs actions synchronously against a writer backed by the
// account table mock.
type inlineProcessor struct {
	accounts sqlconfig.IAccountTable
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, inlineWriter{accounts: p.accounts})
}

type inlineWriter struct {
	accounts sqlconfig.IAccountTable
}

func (w inlineWriter) Accounts() sqlconfig.IAccountTable { return w.accounts }
func (w inlineWriter) Commit(context.Context) error      { return nil }
func (w inlineWriter) Rollback(context.Context) error    { return nil }

type recordingListener struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingListener) Handle(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingListener) recorded() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

type testEnv struct {
	svc        *Service
	accounts   *sqlconfig.MockIAccountTable
	users      *sqlconfig.MockIUserTable
	aggregates *sqlconfig.MockIAccountAggregates
	listener   *recordingListener
	hook       *test.Hook
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger, hook := test.NewNullLogger()

	accounts := sqlconfig.NewMockIAccountTable(t)
	users := sqlconfig.NewMockIUserTable(t)
	aggregates := sqlconfig.NewMockIAccountAggregates(t)
	store := &storage.Storage{Accounts: accounts, Users: users, Aggregates: aggregates}

	listener := &recordingListener{}
	bus := events.NewBus(logger)
	bus.Subscribe(listener)

	return &testEnv{
		svc:        NewService(store, inlineProcessor{accounts: accounts}, bus, logger),
		accounts:   accounts,
		users:      users,
		aggregates: aggregates,
		listener:   listener,
		hook:       hook,
	}
}

func row(id, ownerID int64, balance string) *sqlconfig.Account {
	return &sqlconfig.Account{ID: id, OwnerID: ownerID, Balance: decimal.RequireFromString(balance)}
}

// accountWith matches an account row by id and balance.
func accountWith(id int64, balance string) interface{} {
	want := decimal.RequireFromString(balance)
	return mock.MatchedBy(func(a *sqlconfig.Account) bool {
		return a.ID == id && a.Balance.Equal(want)
	})
}
