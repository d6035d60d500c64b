package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewStore is the repository slice the view counter consumes.
type ViewStore interface {
	IncrementViewOnce(ctx context.Context, id int64, viewerKey string) error
}

// ViewService counts listing views at most once per viewer address.
// Everything here is best-effort telemetry: failures are logged and
// swallowed, never surfaced, and never block the detail view.
type ViewService struct {
	ListingRepo ViewStore
	// Redis, when configured, short-circuits repeat views before the
	// database is touched. The database unique key stays the source of
	// truth, so a Redis outage only costs the fast path.
	Redis    *redis.Client
	DedupTTL time.Duration
	ErrorLog *log.Logger
}

const defaultDedupTTL = 24 * time.Hour

// RecordView registers one view for the (listing, viewerKey) pair.
func (s *ViewService) RecordView(ctx context.Context, id int64, viewerKey string) {
	if viewerKey == "" {
		return
	}

	if s.Redis != nil {
		ttl := s.DedupTTL
		if ttl <= 0 {
			ttl = defaultDedupTTL
		}
		key := fmt.Sprintf("view:%d:%s", id, viewerKey)
		fresh, err := s.Redis.SetNX(ctx, key, 1, ttl).Result()
		if err != nil {
			s.logf("view dedup check failed for listing %d: %v", id, err)
		} else if !fresh {
			return
		}
	}

	if err := s.ListingRepo.IncrementViewOnce(ctx, id, viewerKey); err != nil {
		s.logf("view increment failed for listing %d: %v", id, err)
	}
}

func (s *ViewService) logf(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
	}
}
