// Package feed maintains the in-memory listing sequence served to
// browsers and keeps it fresh across two delivery channels: periodic
// delta pulls against the repository and per-insert push
// notifications. Both channels can deliver the same row, so every
// merge is idempotent by listing id.
package feed

import (
	"sync"
	"time"

	"roomshare/internal/models"
)

// DefaultHighlight is how long a newly merged row keeps its
// "recently arrived" flag. Cosmetic only.
const DefaultHighlight = 2 * time.Second

// Feed is a single ordered sequence of listings, newest first.
// created_at of the head row is the delta-pull cursor.
type Feed struct {
	mu        sync.Mutex
	listings  []models.Listing
	seen      map[int64]struct{}
	arrived   map[int64]time.Time
	highlight time.Duration
	now       func() time.Time
}

func New(highlight time.Duration) *Feed {
	if highlight <= 0 {
		highlight = DefaultHighlight
	}
	return &Feed{
		seen:      make(map[int64]struct{}),
		arrived:   make(map[int64]time.Time),
		highlight: highlight,
		now:       time.Now,
	}
}

// ReplaceAll resets the sequence to rows (already newest-first).
// Used for the initial load; rows do not get the recent flag.
func (f *Feed) ReplaceAll(rows []models.Listing) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listings = append([]models.Listing(nil), rows...)
	f.seen = make(map[int64]struct{}, len(rows))
	for _, l := range rows {
		f.seen[l.ID] = struct{}{}
	}
	f.arrived = make(map[int64]time.Time)
}

// MergePull prepends the result of a delta pull (rows newest-first),
// skipping ids already present, and returns the rows actually merged.
func (f *Feed) MergePull(rows []models.Listing) []models.Listing {
	f.mu.Lock()
	defer f.mu.Unlock()
	merged := make([]models.Listing, 0, len(rows))
	for _, l := range rows {
		if _, ok := f.seen[l.ID]; ok {
			continue
		}
		merged = append(merged, l)
	}
	if len(merged) == 0 {
		return nil
	}
	now := f.now()
	for _, l := range merged {
		f.seen[l.ID] = struct{}{}
		f.arrived[l.ID] = now
	}
	f.listings = append(append([]models.Listing(nil), merged...), f.listings...)
	return merged
}

// MergePush prepends a single pushed row. Returns false when the id
// was already present (duplicate delivery) and the row was discarded.
func (f *Feed) MergePush(l models.Listing) bool {
	return len(f.MergePull([]models.Listing{l})) == 1
}

// Drop removes a listing, e.g. after a delete.
func (f *Feed) Drop(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seen[id]; !ok {
		return
	}
	delete(f.seen, id)
	delete(f.arrived, id)
	for i, l := range f.listings {
		if l.ID == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			break
		}
	}
}

// Cursor returns the created_at of the current head. ok is false when
// the sequence is empty, in which case no delta pull should be issued.
func (f *Feed) Cursor() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.listings) == 0 {
		return time.Time{}, false
	}
	return f.listings[0].CreatedAt, true
}

// Snapshot returns a copy of the sequence, newest first.
func (f *Feed) Snapshot() []models.Listing {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Listing(nil), f.listings...)
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listings)
}

// RecentIDs returns ids merged within the highlight window, pruning
// expired flags as it goes.
func (f *Feed) RecentIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	var ids []int64
	for id, at := range f.arrived {
		if now.Sub(at) > f.highlight {
			delete(f.arrived, id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
