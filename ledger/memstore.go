package ledger

import (
	"sync"
	"time"
)

// MemoryStore is a map-backed Store. Used by the test suite and as the
// backing store when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*DailyLedger
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*DailyLedger)}
}

func (s *MemoryStore) Load(userID uint, day time.Time) (*DailyLedger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.records[dayKey(userID, day)]
	if !ok {
		return nil, nil
	}
	return l.Clone(), nil
}

func (s *MemoryStore) Save(l *DailyLedger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[dayKey(l.UserID, l.Date)] = l.Clone()
	return nil
}

// Len reports how many day records exist, across all users.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
