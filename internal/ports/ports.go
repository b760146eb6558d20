package ports

import (
	"context"
	"time"

	"patiodash/internal/domain"
)

// RecordFeed pulls the current rows of one upstream source. Implementations
// are bound to their URL and fetch strategy at construction.
type RecordFeed interface {
	Fetch(ctx context.Context) ([]domain.Record, error)
}

// Notifier pushes staleness alert digests to an outbound channel.
type Notifier interface {
	PublishAlerts(ctx context.Context, digest string) error
}

// Scheduler controls when refresh cycles execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
