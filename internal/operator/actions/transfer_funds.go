package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/account-server/internal/storage"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrBelowMinimum      = errors.New("balance would fall below minimum")
)

// AccountMissingError reports an account that vanished before it could be
// locked.
type AccountMissingError struct {
	ID int64
}

func (e *AccountMissingError) Error() string {
	return fmt.Sprintf("account not found: %d", e.ID)
}

// TransferFunds moves Amount from FromID to ToID. Both rows are locked and
// the funds checked again inside the transaction, so balances read before
// the action ran are never written back.
type TransferFunds struct {
	FromID     int64
	ToID       int64
	Amount     decimal.Decimal
	MinBalance decimal.Decimal

	// Filled in by Perform with the locked and the stored rows.
	PreviousFrom *sqlconfig.Account
	PreviousTo   *sqlconfig.Account
	UpdatedFrom  *sqlconfig.Account
	UpdatedTo    *sqlconfig.Account
}

var _ IAction = (*TransferFunds)(nil)

func (t *TransferFunds) Perform(ctx context.Context, writer storage.IWriter) error {
	accounts := writer.Accounts()

	// Lock in id order so opposing transfers cannot deadlock.
	lockOrder := []int64{t.FromID, t.ToID}
	if t.FromID > t.ToID {
		lockOrder[0], lockOrder[1] = t.ToID, t.FromID
	}
	locked := make(map[int64]*sqlconfig.Account, 2)
	for _, id := range lockOrder {
		row, err := accounts.FindByIDForUpdate(ctx, id)
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return &AccountMissingError{ID: id}
		}
		if err != nil {
			return fmt.Errorf("lock account %d: %w", id, err)
		}
		locked[id] = row
	}

	from, to := locked[t.FromID], locked[t.ToID]
	if from.Balance.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}
	if from.Balance.Sub(t.Amount).LessThan(t.MinBalance) {
		return ErrBelowMinimum
	}

	debited := *from
	debited.Balance = from.Balance.Sub(t.Amount)
	updatedFrom, err := accounts.Update(ctx, &debited)
	if err != nil {
		return fmt.Errorf("debit account %d: %w", t.FromID, err)
	}

	credited := *to
	credited.Balance = to.Balance.Add(t.Amount)
	updatedTo, err := accounts.Update(ctx, &credited)
	if err != nil {
		return fmt.Errorf("credit account %d: %w", t.ToID, err)
	}

	t.PreviousFrom = from
	t.PreviousTo = to
	t.UpdatedFrom = updatedFrom
	t.UpdatedTo = updatedTo
	return nil
}
