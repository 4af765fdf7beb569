// Package repository defines the session store interface and errors.
package repository

import (
	"context"

	"github.com/okian/confplan/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSessions seeds the store with an initial dataset.
func WithSessions(sessions []model.Session) Option {
	return func(s *MemStore) {
		s.Replace(context.Background(), sessions)
	}
}
