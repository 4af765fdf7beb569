package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/pkg/metrics"
)

// MemStore implements Store with an RWMutex-guarded slice plus a per-day
// index. Reads dominate: the dataset is loaded once and queried per run.
type MemStore struct {
	mu       sync.RWMutex
	sessions []model.Session
	byDay    map[int64][]int // day unix -> indexes into sessions
	days     []time.Time
}

// NewMemStore creates an in-memory session store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		byDay: make(map[int64][]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps the stored dataset and rebuilds the day index.
func (s *MemStore) Replace(ctx context.Context, sessions []model.Session) {
	byDay := make(map[int64][]int)
	var days []time.Time
	for i, sess := range sessions {
		key := sess.Day().Unix()
		if _, ok := byDay[key]; !ok {
			days = append(days, sess.Day())
		}
		byDay[key] = append(byDay[key], i)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	s.mu.Lock()
	s.sessions = sessions
	s.byDay = byDay
	s.days = days
	s.mu.Unlock()

	metrics.UpdateDatasetSize(len(sessions))
}

// All returns every session in load order.
func (s *MemStore) All(ctx context.Context) []model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Dates returns the distinct session days in ascending order.
func (s *MemStore) Dates(ctx context.Context) []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]time.Time, len(s.days))
	copy(out, s.days)
	return out
}

// ByDate returns the sessions on the given calendar day in load order.
func (s *MemStore) ByDate(ctx context.Context, day time.Time) ([]model.Session, error) {
	y, m, d := day.Date()
	key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byDay[key]
	if !ok {
		return nil, ErrNoSessions
	}
	out := make([]model.Session, len(idx))
	for i, j := range idx {
		out[i] = s.sessions[j]
	}
	return out, nil
}

// Count returns the number of stored sessions.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
