package memory

import (
	"sync"
	"time"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
)

// Ensure LookupCache implements the interface.
var _ driven.LookupCache = (*LookupCache)(nil)

type lookupEntry struct {
	info     domain.SpeakerInfo
	storedAt time.Time
}

// LookupCache is an in-memory implementation of driven.LookupCache.
// With a zero TTL entries live until Clear is called.
type LookupCache struct {
	mu      sync.RWMutex
	entries map[string]lookupEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewLookupCache creates a cache whose entries expire after ttl.
// A zero ttl keeps entries for the life of the process.
func NewLookupCache(ttl time.Duration) *LookupCache {
	return &LookupCache{
		entries: make(map[string]lookupEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves an entry by record ID.
func (c *LookupCache) Get(id string) (domain.SpeakerInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id]
	if !ok || c.expired(entry) {
		return domain.SpeakerInfo{}, false
	}
	return entry.info, true
}

// Put stores or replaces an entry.
func (c *LookupCache) Put(info domain.SpeakerInfo) {
	if info.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[info.ID] = lookupEntry{info: info, storedAt: c.now()}
}

// Len returns the number of live entries.
func (c *LookupCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, entry := range c.entries {
		if !c.expired(entry) {
			n++
		}
	}
	return n
}

// Clear drops every entry.
func (c *LookupCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]lookupEntry)
}

func (c *LookupCache) expired(entry lookupEntry) bool {
	return c.ttl > 0 && c.now().Sub(entry.storedAt) >= c.ttl
}
