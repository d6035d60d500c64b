package main

import (
	"context"
	"time"

	"roomshare/internal/config"
	"roomshare/internal/feed"
)

const feedSeedTimeout = 30 * time.Second

// startFeedRefresher seeds the in-memory feed with the current listing
// set, then keeps it fresh with the delta poller. A failed seed is not
// fatal: the browse handler lazily reloads an empty feed.
func startFeedRefresher(ctx context.Context, app *application, cfg config.Config) {
	go func() {
		seedCtx, cancel := context.WithTimeout(ctx, feedSeedTimeout)
		rows, err := app.listingRepo.GetListings(seedCtx, "", 0)
		cancel()
		if err != nil {
			app.errorLog.Printf("feed: initial load failed: %v", err)
		} else {
			app.listingFeed.ReplaceAll(rows)
			app.infoLog.Printf("feed: loaded %d listings", len(rows))
		}

		poller := &feed.Poller{
			Feed:     app.listingFeed,
			Source:   app.listingRepo,
			Interval: time.Duration(cfg.Feed.PollIntervalSeconds) * time.Second,
			Notify:   app.wsManager.Broadcast,
			InfoLog:  app.infoLog,
			ErrorLog: app.errorLog,
		}
		poller.Run(ctx)
	}()
}
