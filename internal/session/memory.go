package session

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	stopCh  chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// NewMemoryStore returns an in-process Store. Sessions held here do not
// survive restarts and are not shared between instances; it is the fallback
// when no Redis address is configured.
func NewMemoryStore(ttl time.Duration) Store {
	s := &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

func (s *memoryStore) Get(ctx context.Context, id string) (Data, bool, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || now.After(entry.expiresAt) {
		delete(s.entries, id)
		return Data{}, false, nil
	}
	entry.expiresAt = now.Add(s.ttl)
	s.entries[id] = entry
	return entry.data, true, nil
}

func (s *memoryStore) Save(ctx context.Context, id string, data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *memoryStore) Ping(ctx context.Context) error { return nil }

func (s *memoryStore) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanup(time.Now())
		case <-s.stopCh:
			return
		}
	}
}

func (s *memoryStore) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *memoryStore) Close() {
	s.once.Do(func() {
		close(s.stopCh)
	})
}
