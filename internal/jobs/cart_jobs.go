package jobs

import (
	"context"
	"time"

	"rechtent-backend/internal/logger"
)

// ExpireStaleCarts deletes anonymous carts untouched for longer than the
// configured TTL, cascading to their items.
func (jr *JobRunner) ExpireStaleCarts() {
	jr.runWithRecovery("ExpireStaleCarts", func() {
		ctx := context.Background()

		ttl := time.Duration(jr.config.Pricing.CartTTLHours) * time.Hour
		cutoff := time.Now().UTC().Add(-ttl)

		deleted, err := jr.store.DeleteStaleAnonymousCarts(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale carts", "error", err)
			return
		}
		logger.Info("Expired stale anonymous carts", "count", deleted, "cutoff", cutoff.Format(time.RFC3339))
	})
}

// RefreshCartAvailability re-reads each cart line's availability flag from
// the product catalog so open carts show current stock state.
func (jr *JobRunner) RefreshCartAvailability() {
	jr.runWithRecovery("RefreshCartAvailability", func() {
		ctx := context.Background()

		updated, err := jr.store.RefreshAvailability(ctx)
		if err != nil {
			logger.Error("Failed to refresh cart availability", "error", err)
			return
		}
		logger.Info("Refreshed cart item availability", "updated", updated)
	})
}
