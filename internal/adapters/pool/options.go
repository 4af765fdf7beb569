// Package pool runs the scoring map step across a bounded worker pool.
package pool

import "github.com/okian/confplan/internal/domain/scoring"

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the number of scoring workers.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithQueueSize bounds the in-flight job queue.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// WithScorer replaces the default scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(p *Pool) {
		if s != nil {
			p.scorer = s
		}
	}
}
