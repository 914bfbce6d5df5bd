package history

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/carson-networks/account-server/internal/model"
)

// DefaultCapacity is the number of transactions retained per account.
const DefaultCapacity = 100

type accountQueue struct {
	mu sync.Mutex
	q  deque.Deque[model.Transaction]
}

// TransactionHistory keeps the most recent transactions of every account in
// memory. It is a view of recent activity, not a ledger.
type TransactionHistory struct {
	capacity int

	mu     sync.RWMutex
	queues map[int64]*accountQueue
}

func NewTransactionHistory(capacity int) *TransactionHistory {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &TransactionHistory{
		capacity: capacity,
		queues:   make(map[int64]*accountQueue),
	}
}

func (h *TransactionHistory) queue(accountID int64, create bool) *accountQueue {
	h.mu.RLock()
	aq, ok := h.queues[accountID]
	h.mu.RUnlock()
	if ok || !create {
		return aq
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if aq, ok = h.queues[accountID]; !ok {
		aq = &accountQueue{}
		h.queues[accountID] = aq
	}
	return aq
}

// Add appends tx to its account's queue, dropping the oldest entry when full.
func (h *TransactionHistory) Add(tx model.Transaction) {
	aq := h.queue(tx.AccountID, true)

	aq.mu.Lock()
	defer aq.mu.Unlock()
	aq.q.PushBack(tx)
	if aq.q.Len() > h.capacity {
		aq.q.PopFront()
	}
}

// LastN returns up to limit transactions, most recent first.
func (h *TransactionHistory) LastN(accountID int64, limit int) []model.Transaction {
	aq := h.queue(accountID, false)
	if aq == nil || limit <= 0 {
		return nil
	}

	aq.mu.Lock()
	defer aq.mu.Unlock()
	n := min(limit, aq.q.Len())
	out := make([]model.Transaction, 0, n)
	for i := aq.q.Len() - 1; len(out) < n; i-- {
		out = append(out, aq.q.At(i))
	}
	return out
}

// All returns every retained transaction in insertion order.
func (h *TransactionHistory) All(accountID int64) []model.Transaction {
	aq := h.queue(accountID, false)
	if aq == nil {
		return nil
	}

	aq.mu.Lock()
	defer aq.mu.Unlock()
	out := make([]model.Transaction, aq.q.Len())
	for i := range out {
		out[i] = aq.q.At(i)
	}
	return out
}

// Clear empties the account's queue in place, so an Add racing with it lands
// in the same queue.
func (h *TransactionHistory) Clear(accountID int64) {
	aq := h.queue(accountID, false)
	if aq == nil {
		return
	}

	aq.mu.Lock()
	defer aq.mu.Unlock()
	aq.q.Clear()
}
