// Package pool runs the scoring map step across a bounded worker pool.
//
// Scoring is pure, so fanning sessions out to workers cannot change any
// observable output as long as results land back at their input index;
// the ranker's filter/sort reduce fixes the final order either way.
package pool

import (
	"context"
	"runtime"
	"sync"

	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/scoring"
	"github.com/okian/confplan/internal/profile"
	"github.com/okian/confplan/pkg/metrics"
)

// Default pool configuration constants.
const (
	defaultQueueSize = 1024
)

// job carries one session and its position in the input slice.
type job struct {
	idx     int
	session model.Session
}

// Pool scores batches of sessions concurrently.
type Pool struct {
	workers   int
	queueSize int
	scorer    *scoring.Scorer
}

// New creates a scoring pool with configuration options.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.NumCPU(),
		queueSize: defaultQueueSize,
		scorer:    scoring.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	metrics.UpdatePoolWorkerCount(p.workers)
	return p
}

// Map scores every session against the profile and returns results in
// input order. Cancelling ctx abandons unscored sessions; their slots
// carry a zero score and no matches.
func (p *Pool) Map(ctx context.Context, sessions []model.Session, prof profile.Profile) []model.ScoredSession {
	out := make([]model.ScoredSession, len(sessions))
	if len(sessions) == 0 {
		return out
	}

	jobs := make(chan job, p.queueSize)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// Workers write to distinct indexes; no lock needed.
				out[j.idx] = p.scorer.Score(j.session, prof)
			}
		}()
	}

feed:
	for i, s := range sessions {
		select {
		case jobs <- job{idx: i, session: s}:
			metrics.UpdatePoolQueueSize(len(jobs))
		case <-ctx.Done():
			// Leave the remaining slots unscored; fill their sessions so
			// callers still see the record.
			for k := i; k < len(sessions); k++ {
				out[k] = model.ScoredSession{Session: sessions[k]}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	metrics.UpdatePoolQueueSize(0)
	metrics.RecordSessionsScored(len(sessions))
	return out
}
