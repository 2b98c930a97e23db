package catalog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// CacheProvider is pluggable so the server can back catalog searches with
// redis while tests and dev mode use the in-memory default.
type CacheProvider interface {
	Get(key string, dest any) error
	Set(key string, value any, expiration time.Duration) error
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

type MemoryCacheProvider struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{items: map[string]memoryItem{}}
}

func (p *MemoryCacheProvider) Get(key string, dest any) error {
	if p == nil {
		return fmt.Errorf("cache provider is nil")
	}
	p.mu.RLock()
	item, ok := p.items[key]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("cache miss")
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		p.mu.Lock()
		delete(p.items, key)
		p.mu.Unlock()
		return fmt.Errorf("cache expired")
	}
	return json.Unmarshal(item.data, dest)
}

func (p *MemoryCacheProvider) Set(key string, value any, expiration time.Duration) error {
	if p == nil {
		return fmt.Errorf("cache provider is nil")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var expiresAt time.Time
	if expiration > 0 {
		expiresAt = time.Now().Add(expiration)
	}
	p.mu.Lock()
	p.items[key] = memoryItem{data: b, expiresAt: expiresAt}
	p.mu.Unlock()
	return nil
}

var cacheProvider CacheProvider = NewMemoryCacheProvider()

// SetCacheProvider swaps the backing cache; nil restores the in-memory default.
func SetCacheProvider(p CacheProvider) {
	if p == nil {
		cacheProvider = NewMemoryCacheProvider()
		return
	}
	cacheProvider = p
}

func getCacheProvider() CacheProvider {
	if cacheProvider == nil {
		cacheProvider = NewMemoryCacheProvider()
	}
	return cacheProvider
}
