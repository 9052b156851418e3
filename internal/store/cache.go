package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"yieldscan/internal/normalize"
)

// RowSource supplies raw CSV rows, header first.
type RowSource interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// Cache owns the current snapshot and refreshes it from the row source
// when it is older than the TTL. Reads between refreshes never touch the
// network. A failed refresh installs an empty snapshot: the browser shows
// "data unavailable" until the next cycle succeeds rather than serving a
// generation of unknown age.
type Cache struct {
	source RowSource
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	current *Snapshot
}

// NewCache creates a snapshot cache over the given source.
func NewCache(source RowSource, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "snapshot_cache")),
		now:    time.Now,
	}
}

// Current returns the current snapshot, refreshing first if it is stale
// or missing. The returned snapshot is never nil.
func (c *Cache) Current(ctx context.Context) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && c.now().Sub(c.current.FetchedAt()) < c.ttl {
		return c.current
	}
	return c.refreshLocked(ctx)
}

// Refresh forces a fetch regardless of snapshot age.
func (c *Cache) Refresh(ctx context.Context) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Cache) refreshLocked(ctx context.Context) *Snapshot {
	fetchedAt := c.now()

	rows, err := c.source.Fetch(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "fund sheet refresh failed",
			slog.String("error", err.Error()))
		c.current = NewSnapshot(nil, nil, fetchedAt)
		return c.current
	}

	records, fields := normalize.Records(rows)
	c.current = NewSnapshot(records, fields, fetchedAt)

	c.logger.InfoContext(ctx, "snapshot refreshed",
		slog.Int("records", len(records)),
		slog.Int("resolved_fields", len(fields)),
		slog.Int("categories", len(c.current.Categories())))

	return c.current
}
