package actions

import (
	"context"

	"github.com/carson-networks/account-server/internal/storage"
)

// IAction is a unit of work run inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer storage.IWriter) error
}
