package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/account-server/internal/cache"
	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/history"
	"github.com/carson-networks/account-server/internal/metrics"
	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/operator/actions"
	"github.com/carson-networks/account-server/internal/storage"
)

// Transfer rule messages.
const (
	MsgSameAccount        = "cannot transfer to the same account"
	MsgAmountNotPositive  = "amount must be positive"
	MsgAmountOverLimit    = "amount exceeds maximum limit of 10000"
	MsgInsufficientFunds  = "insufficient balance"
	MsgBelowMinimum       = "transfer would leave balance below minimum"
	MsgSourceOwnerMissing = "source account owner not found"
	MsgDestOwnerMissing   = "destination account owner not found"
)

var (
	MaxTransfer    = decimal.NewFromInt(10_000)
	MinPostBalance = decimal.Zero
)

// ActionProcessor runs an action inside a database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransferService moves funds between two accounts.
type TransferService struct {
	storage   *storage.Storage
	processor ActionProcessor
	cache     *cache.AccountCache
	publisher EventPublisher
	history   *history.TransactionHistory
	log       logrus.FieldLogger
}

func NewTransferService(
	store *storage.Storage,
	processor ActionProcessor,
	accountCache *cache.AccountCache,
	publisher EventPublisher,
	transactions *history.TransactionHistory,
	log logrus.FieldLogger,
) *TransferService {
	return &TransferService{
		storage:   store,
		processor: processor,
		cache:     accountCache,
		publisher: publisher,
		history:   transactions,
		log:       log,
	}
}

// Transfer debits fromID and credits toID by amount. Rule violations and
// storage failures are reported in the result, never as an error.
func (s *TransferService) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) model.TransferResult {
	log := s.log.WithFields(logrus.Fields{
		"fromAccountID": fromID,
		"toAccountID":   toID,
		"amount":        amount.String(),
	})

	reject := func(reason string) model.TransferResult {
		log.WithField("reason", reason).Info("TransferService.Transfer.Rejected")
		metrics.ObserveTransfer(metrics.TransferRejected)
		return model.TransferFailed(fromID, toID, amount, reason)
	}
	fail := func(err error) model.TransferResult {
		message := fmt.Sprintf("transfer failed: %v", err)
		if errors.Is(err, ErrNotFound) {
			return reject(message)
		}
		log.WithError(err).Error("TransferService.Transfer.Failed")
		metrics.ObserveTransfer(metrics.TransferFailed)
		return model.TransferFailed(fromID, toID, amount, message)
	}

	switch {
	case fromID == toID:
		return reject(MsgSameAccount)
	case !amount.IsPositive():
		return reject(MsgAmountNotPositive)
	case amount.GreaterThan(MaxTransfer):
		return reject(MsgAmountOverLimit)
	}

	from, to, err := s.loadPair(ctx, fromID, toID)
	if err != nil {
		return fail(err)
	}

	if from.Balance.LessThan(amount) {
		return reject(MsgInsufficientFunds)
	}
	if from.Balance.Sub(amount).LessThan(MinPostBalance) {
		return reject(MsgBelowMinimum)
	}

	fromOwnerExists, err := s.storage.Users.Exists(ctx, from.OwnerID)
	if err != nil {
		return fail(err)
	}
	if !fromOwnerExists {
		return reject(MsgSourceOwnerMissing)
	}
	toOwnerExists, err := s.storage.Users.Exists(ctx, to.OwnerID)
	if err != nil {
		return fail(err)
	}
	if !toOwnerExists {
		return reject(MsgDestOwnerMissing)
	}

	action := &actions.TransferFunds{
		FromID:     fromID,
		ToID:       toID,
		Amount:     amount,
		MinBalance: MinPostBalance,
	}
	err = s.processor.Process(ctx, action)
	var missing *actions.AccountMissingError
	switch {
	case errors.Is(err, actions.ErrInsufficientFunds):
		return reject(MsgInsufficientFunds)
	case errors.Is(err, actions.ErrBelowMinimum):
		return reject(MsgBelowMinimum)
	case errors.As(err, &missing):
		return fail(accountNotFound(missing.ID))
	case err != nil:
		return fail(err)
	}

	s.cache.Invalidate(fromID)
	s.cache.Invalidate(toID)

	updatedFrom := accountFromStorage(action.UpdatedFrom)
	updatedTo := accountFromStorage(action.UpdatedTo)
	s.publisher.Publish(events.BalanceChanged{Account: updatedFrom, OldBalance: action.PreviousFrom.Balance, NewBalance: updatedFrom.Balance})
	s.publisher.Publish(events.BalanceChanged{Account: updatedTo, OldBalance: action.PreviousTo.Balance, NewBalance: updatedTo.Balance})

	transferID := uuid.Must(uuid.NewV4()).String()
	s.history.Add(model.NewTransaction(fromID, amount.Neg(), model.TransactionTransferOut,
		fmt.Sprintf("transfer %s to account %d", transferID, toID)))
	s.history.Add(model.NewTransaction(toID, amount, model.TransactionTransferIn,
		fmt.Sprintf("transfer %s from account %d", transferID, fromID)))

	log.WithField("transferID", transferID).Info("TransferService.Transfer.Complete")
	metrics.ObserveTransfer(metrics.TransferSucceeded)
	return model.TransferSucceeded(transferID, fromID, toID, amount)
}

// loadPair reads both accounts concurrently.
func (s *TransferService) loadPair(ctx context.Context, fromID, toID int64) (model.Account, model.Account, error) {
	loader := accountLoader{accounts: s.storage.Accounts}
	var from, to *model.Account

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = loader.GetAccount(gctx, fromID)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = loader.GetAccount(gctx, toID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Account{}, model.Account{}, err
	}

	return *from, *to, nil
}
