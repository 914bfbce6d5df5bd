package cache

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/carson-networks/account-server/internal/model"
)

// Loader fetches an account from the backing store.
type Loader interface {
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
}

// AccountCache is a read-through, id-keyed cache in front of a Loader.
// Concurrent misses for the same id share one load. A load that races with
// Invalidate or Clear is returned to its caller but not stored.
type AccountCache struct {
	loader Loader
	group  singleflight.Group

	mu       sync.RWMutex
	entries  map[int64]model.Account
	versions map[int64]uint64
	epoch    uint64
}

func NewAccountCache(loader Loader) *AccountCache {
	return &AccountCache{
		loader:   loader,
		entries:  make(map[int64]model.Account),
		versions: make(map[int64]uint64),
	}
}

// FindByIDWithCache returns the cached account or loads it. Errors, including
// not-found, are never cached.
func (c *AccountCache) FindByIDWithCache(ctx context.Context, id int64) (*model.Account, error) {
	c.mu.RLock()
	cached, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	result, err, _ := c.group.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		c.mu.RLock()
		version, epoch := c.versions[id], c.epoch
		c.mu.RUnlock()

		account, err := c.loader.GetAccount(ctx, id)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.versions[id] == version && c.epoch == epoch {
			c.entries[id] = *account
		}
		c.mu.Unlock()
		return *account, nil
	})
	if err != nil {
		return nil, err
	}

	account := result.(model.Account)
	return &account, nil
}

// Invalidate drops the entry for id. Invalidating an absent id is a no-op.
func (c *AccountCache) Invalidate(id int64) {
	c.mu.Lock()
	delete(c.entries, id)
	c.versions[id]++
	c.mu.Unlock()
	c.group.Forget(strconv.FormatInt(id, 10))
}

func (c *AccountCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[int64]model.Account)
	c.versions = make(map[int64]uint64)
	c.epoch++
	c.mu.Unlock()
}

func (c *AccountCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
