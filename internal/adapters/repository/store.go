// Package repository defines the session store interface and its
// in-memory implementation, indexed by calendar date.
package repository

import (
	"context"
	"time"

	"github.com/okian/confplan/internal/domain/model"
)

// Store provides read access to the loaded session records. Records are
// immutable once loaded; Replace swaps the whole dataset atomically.
type Store interface {
	// All returns every session in load order.
	All(ctx context.Context) []model.Session

	// Dates returns the distinct session days in ascending order.
	Dates(ctx context.Context) []time.Time

	// ByDate returns the sessions on the given calendar day in load order.
	// Returns ErrNoSessions if the day has none.
	ByDate(ctx context.Context, day time.Time) ([]model.Session, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) int

	// Replace swaps the stored dataset.
	Replace(ctx context.Context, sessions []model.Session)
}
