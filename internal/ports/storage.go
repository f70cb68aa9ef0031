package ports

import (
	"context"
	"time"

	"github.com/tbreslin/cadence/internal/domain"
)

// SessionLog is the append-only journal of completed sessions and
// cycles. This is a driven port (implemented by adapters).
type SessionLog interface {
	// RecordSession appends a completed session.
	RecordSession(ctx context.Context, record *domain.SessionRecord) error

	// RecordCycle appends a completed full cycle.
	RecordCycle(ctx context.Context, completedAt time.Time) error

	// RecentSessions retrieves completed sessions since a point in time,
	// newest first.
	RecentSessions(ctx context.Context, since time.Time) ([]*domain.SessionRecord, error)

	// DailyStats returns aggregated statistics for a specific date.
	DailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error)

	// Close closes the underlying store.
	Close() error
}
