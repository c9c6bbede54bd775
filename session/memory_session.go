package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	values  map[string]entry
	flashes map[string]flashEntry
}

type entry struct {
	data    []byte
	expires time.Time
}

type flashEntry struct {
	items   []Flash
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		values:  make(map[string]entry),
		flashes: make(map[string]flashEntry),
	}
}

func (s *MemoryStore) Put(ctx context.Context, sid, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[valueKey(sid, key)] = entry{data: b, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Take(ctx context.Context, sid, key string, dst any) (bool, error) {
	s.mu.Lock()
	e, ok := s.values[valueKey(sid, key)]
	delete(s.values, valueKey(sid, key))
	s.mu.Unlock()
	if !ok || s.now().After(e.expires) {
		return false, nil
	}
	if err := json.Unmarshal(e.data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) AddFlash(ctx context.Context, sid string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fe := s.flashes[sid]
	if s.now().After(fe.expires) {
		fe.items = nil
	}
	fe.items = append(fe.items, f)
	fe.expires = s.now().Add(s.ttl)
	s.flashes[sid] = fe
	return nil
}

func (s *MemoryStore) Flashes(ctx context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fe, ok := s.flashes[sid]
	delete(s.flashes, sid)
	if !ok || s.now().After(fe.expires) {
		return nil, nil
	}
	return fe.items, nil
}

// Sweep drops expired entries. The server calls it on a ticker.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for k, e := range s.values {
		if now.After(e.expires) {
			delete(s.values, k)
			n++
		}
	}
	for k, fe := range s.flashes {
		if now.After(fe.expires) {
			delete(s.flashes, k)
			n++
		}
	}
	return n
}
