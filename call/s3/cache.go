package s3

import (
	"context"
	"sync"
)

// ClientCache memoizes clients per resolved Options so calls whose templates resolve to the same credentials,
// region and endpoint share one client. Entries live until invalidated.
type ClientCache struct {
	factory ClientFactory

	mu      sync.Mutex
	entries map[Options]cachedClient
}

type cachedClient struct {
	client    Client
	presigner Presigner
}

// NewClientCache returns a cache building missing entries with factory. A nil factory means NewClient.
func NewClientCache(factory ClientFactory) *ClientCache {
	if factory == nil {
		factory = NewClient
	}
	return &ClientCache{
		factory: factory,
		entries: make(map[Options]cachedClient),
	}
}

// Get returns the cached client for opts, building and storing one on a miss. Failed builds are not cached.
// Get has the ClientFactory signature.
func (c *ClientCache) Get(ctx context.Context, opts Options) (Client, Presigner, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[opts]; ok {
		return e.client, e.presigner, nil
	}

	client, presigner, err := c.factory(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	c.entries[opts] = cachedClient{client: client, presigner: presigner}
	return client, presigner, nil
}

// Invalidate drops the entry for opts, if any.
func (c *ClientCache) Invalidate(opts Options) {
	c.mu.Lock()
	delete(c.entries, opts)
	c.mu.Unlock()
}

// Purge drops every entry.
func (c *ClientCache) Purge() {
	c.mu.Lock()
	c.entries = make(map[Options]cachedClient)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *ClientCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
