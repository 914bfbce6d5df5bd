package events

import (
	"fmt"
	"maps"
	"strconv"
	"sync"
	"time"
)

// AuditEntry is one append-only audit record.
type AuditEntry struct {
	Timestamp  time.Time
	Kind       Kind
	Attributes map[string]string
}

func (e AuditEntry) String() string {
	switch e.Kind {
	case KindAccountCreated:
		return fmt.Sprintf("[%s] %s - id: %s, owner: %s, balance: %s",
			e.Timestamp.Format(time.RFC3339), e.Kind, e.Attributes["accountId"], e.Attributes["ownerId"], e.Attributes["balance"])
	case KindBalanceChanged:
		return fmt.Sprintf("[%s] %s - account: %s, old: %s, new: %s",
			e.Timestamp.Format(time.RFC3339), e.Kind, e.Attributes["accountId"], e.Attributes["oldBalance"], e.Attributes["newBalance"])
	default:
		return fmt.Sprintf("[%s] %s - id: %s", e.Timestamp.Format(time.RFC3339), e.Kind, e.Attributes["accountId"])
	}
}

// AuditListener keeps an in-memory audit log.
type AuditListener struct {
	mu      sync.Mutex
	entries []AuditEntry
	now     func() time.Time
}

func NewAuditListener() *AuditListener {
	return &AuditListener{now: func() time.Time { return time.Now().UTC() }}
}

func (a *AuditListener) Handle(event Event) error {
	entry := AuditEntry{Timestamp: a.now(), Kind: event.Kind()}

	switch e := event.(type) {
	case AccountCreated:
		entry.Attributes = map[string]string{
			"accountId": strconv.FormatInt(e.Account.ID, 10),
			"ownerId":   strconv.FormatInt(e.Account.OwnerID, 10),
			"balance":   e.Account.Balance.StringFixed(2),
		}
	case BalanceChanged:
		entry.Attributes = map[string]string{
			"accountId":  strconv.FormatInt(e.Account.ID, 10),
			"oldBalance": e.OldBalance.StringFixed(2),
			"newBalance": e.NewBalance.StringFixed(2),
		}
	case AccountDeleted:
		entry.Attributes = map[string]string{
			"accountId": strconv.FormatInt(e.AccountID, 10),
		}
	default:
		return fmt.Errorf("audit: unknown event kind %q", event.Kind())
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

// Snapshot returns a copy of the log; callers cannot mutate the listener's state.
func (a *AuditListener) Snapshot() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditEntry, len(a.entries))
	for i, entry := range a.entries {
		entry.Attributes = maps.Clone(entry.Attributes)
		out[i] = entry
	}
	return out
}
