package cache

import (
	"sync"
	"time"
)

// TTL é um cache em memória com expiração fixa por entrada.
// Valores são []byte (tipicamente JSON já serializado).
type TTL struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// New cria um cache cujas entradas expiram após ttl.
// Uma goroutine de limpeza roda em background pela vida do processo.
func New(ttl time.Duration) *TTL {
	c := &TTL{entries: make(map[string]entry), ttl: ttl}
	go c.sweep()
	return c
}

func (c *TTL) sweep() {
	tick := time.NewTicker(c.ttl / 2)
	defer tick.Stop()
	for range tick.C {
		now := time.Now()
		c.mu.Lock()
		for k, e := range c.entries {
			if e.expiresAt.Before(now) {
				delete(c.entries, k)
			}
		}
		c.mu.Unlock()
	}
}

// Get retorna o valor da chave, ou nil se ausente ou expirada.
func (c *TTL) Get(key string) []byte {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.expiresAt.Before(time.Now()) {
		return nil
	}
	return e.data
}

// Set grava o valor com o TTL do cache.
func (c *TTL) Set(key string, value []byte) {
	e := entry{data: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Delete remove a chave.
func (c *TTL) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
