package risk

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of Store for demo/test use.
type MemoryStore struct {
	mu          sync.RWMutex
	assessments map[string][]*Assessment // recipientID → assessments
}

// NewMemoryStore creates an in-memory assessment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assessments: make(map[string][]*Assessment),
	}
}

func (s *MemoryStore) Record(ctx context.Context, assessment *Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Deep-copy factors
	a := *assessment
	a.RiskFactors = append([]string(nil), assessment.RiskFactors...)
	if assessment.Source != nil {
		src := *assessment.Source
		a.Source = &src
	}

	s.assessments[assessment.RecipientID] = append(s.assessments[assessment.RecipientID], &a)
	return nil
}

func (s *MemoryStore) ListByRecipient(ctx context.Context, recipientID string, before time.Time, limit int) ([]*Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.assessments[recipientID]
	if len(all) == 0 {
		return nil, nil
	}

	// Most recent first, skipping anything at or after the cursor
	result := make([]*Assessment, 0, limit)
	for i := len(all) - 1; i >= 0 && len(result) < limit; i-- {
		if !before.IsZero() && !all[i].EvaluatedAt.Before(before) {
			continue
		}
		a := *all[i]
		a.RiskFactors = append([]string(nil), a.RiskFactors...)
		if all[i].Source != nil {
			src := *all[i].Source
			a.Source = &src
		}
		result = append(result, &a)
	}
	return result, nil
}
