package main

import (
	"context"
	"time"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/service"
)

// startIdleScanner periodically drops battles nobody played for longer than
// the configured idle timeout. It stops when ctx is cancelled.
func startIdleScanner(ctx context.Context, svc *service.BattleService, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := svc.ExpireIdleBattles(now); n > 0 {
					logging.Info("idle battles expired", logging.Fields{constants.LogFieldCount: n})
				}
			}
		}
	}()
}
