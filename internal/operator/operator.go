package operator

import (
	"context"

	"github.com/carson-networks/account-server/internal/operator/actions"
	"github.com/carson-networks/account-server/internal/storage"
)

// WriterSource opens the transaction an action runs in.
type WriterSource interface {
	Write(ctx context.Context) (storage.IWriter, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	source WriterSource
	queue  chan ActionItem
}

func NewOperator(source WriterSource, queue chan ActionItem) *Operator {
	return &Operator{
		source: source,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller gave up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.source.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback(item.ctx)
		return err
	}

	return writer.Commit(item.ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
