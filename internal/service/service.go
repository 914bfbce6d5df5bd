package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-server/internal/cache"
	"github.com/carson-networks/account-server/internal/category"
	"github.com/carson-networks/account-server/internal/history"
	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/validation"
)

// Service holds all business logic services.
type Service struct {
	Account  *AccountService
	Transfer *TransferService
	User     *UserService
	Stats    *StatsService
}

// NewService wires the services over one shared cache and history so that
// transfers and balance updates invalidate the same entries.
func NewService(store *storage.Storage, processor ActionProcessor, publisher EventPublisher, log logrus.FieldLogger) *Service {
	accountCache := cache.NewAccountCache(accountLoader{accounts: store.Accounts})
	transactions := history.NewTransactionHistory(history.DefaultCapacity)

	return &Service{
		Account: NewAccountService(store, accountCache, validation.NewDefaultPipeline(), publisher,
			transactions, category.DefaultTree(), log),
		Transfer: NewTransferService(store, processor, accountCache, publisher, transactions, log),
		User:     NewUserService(store, log),
		Stats:    NewStatsService(store),
	}
}
