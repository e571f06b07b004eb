// Package analytics counts page views of the request-served driver.
//
// Views are stored per path in SQLite. A per-client sliding window keeps
// refresh bursts from inflating the counts. Nothing here feeds back into
// rendering.
package analytics

import (
	"context"
	"time"
)

// PageStat represents page view statistics.
type PageStat struct {
	Path     string    `json:"path"`
	Views    int       `json:"views"`
	LastSeen time.Time `json:"last_seen"`
}

// Stats holds aggregated analytics data.
type Stats struct {
	TotalViews int        `json:"total_views"`
	TopPages   []PageStat `json:"top_pages"`
}

// Tracker records page views through a Store, rate limited per client.
type Tracker struct {
	store   *Store
	limiter *Limiter
	now     func() time.Time
}

// NewTracker creates a Tracker. A nil limiter counts every view.
func NewTracker(store *Store, limiter *Limiter) *Tracker {
	return &Tracker{store: store, limiter: limiter, now: time.Now}
}

// Track records a view of path by client. It reports whether the view was
// counted.
func (t *Tracker) Track(ctx context.Context, client, path string) (bool, error) {
	if t.limiter != nil && !t.limiter.Allow(client+" "+path) {
		return false, nil
	}
	if err := t.store.Record(ctx, path, t.now()); err != nil {
		return false, err
	}
	return true, nil
}

// Stats returns the total view count and the limit most viewed pages.
func (t *Tracker) Stats(ctx context.Context, limit int) (Stats, error) {
	total, err := t.store.Total(ctx)
	if err != nil {
		return Stats{}, err
	}
	top, err := t.store.Top(ctx, limit)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalViews: total, TopPages: top}, nil
}

// Close stops the limiter and closes the store.
func (t *Tracker) Close() error {
	if t.limiter != nil {
		t.limiter.Stop()
	}
	return t.store.Close()
}
