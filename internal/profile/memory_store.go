package profile

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store. The table is
// immutable after construction; the lock only guards against misuse.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	order    []string // insertion order for stable List output
}

// NewMemoryStore creates an in-memory profile store from the given profiles.
func NewMemoryStore(profiles []*Profile) *MemoryStore {
	s := &MemoryStore{
		profiles: make(map[string]*Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}
	for _, p := range profiles {
		cp := *p
		s.profiles[p.ID] = &cp
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *MemoryStore) Lookup(ctx context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context, fraudOnly bool) ([]*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Profile, 0, len(s.order))
	for _, id := range s.order {
		p := s.profiles[id]
		if fraudOnly && !p.FraudLabel {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles), nil
}
