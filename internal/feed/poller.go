package feed

import (
	"context"
	"log"
	"time"

	"roomshare/internal/models"
)

// DefaultPollInterval matches the browsing-context cadence of the
// original pages. Configurable; keep one cadence per process so the
// repository is not polled redundantly.
const DefaultPollInterval = 180 * time.Second

// Source is the slice of the listing repository the poller consumes:
// rows strictly newer than since, newest first. An empty city means
// all cities.
type Source interface {
	GetNewListings(ctx context.Context, city string, since time.Time) ([]models.Listing, error)
}

// Poller periodically pulls the delta since the feed head and merges
// it. Rows that survive the idempotent merge are handed to Notify, so
// push subscribers see pulls and direct inserts through one channel.
type Poller struct {
	Feed     *Feed
	Source   Source
	City     string
	Interval time.Duration
	Notify   func(models.Listing)
	InfoLog  *log.Logger
	ErrorLog *log.Logger
}

// Poll performs one delta pull. When the feed is empty there is no
// cursor and no pull is issued.
func (p *Poller) Poll(ctx context.Context) error {
	since, ok := p.Feed.Cursor()
	if !ok {
		return nil
	}
	rows, err := p.Source.GetNewListings(ctx, p.City, since)
	if err != nil {
		return err
	}
	merged := p.Feed.MergePull(rows)
	if len(merged) == 0 {
		return nil
	}
	if p.InfoLog != nil {
		p.InfoLog.Printf("feed: merged %d new listings", len(merged))
	}
	if p.Notify != nil {
		for _, l := range merged {
			p.Notify(l)
		}
	}
	return nil
}

// Run polls once immediately, then on every tick until ctx is done.
// Pull failures are logged and the view stays stale until the next
// tick; they never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	poll := func() {
		if err := p.Poll(ctx); err != nil && p.ErrorLog != nil {
			p.ErrorLog.Printf("feed: delta poll failed: %v", err)
		}
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
