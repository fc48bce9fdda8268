package cron

import (
	"context"
	"log/slog"
	"time"
)

// TokenPruner drops revocations of tokens that have already expired.
type TokenPruner interface {
	PruneRevokedTokens() int
}

// MaintenanceJobs keeps in-memory state bounded.
type MaintenanceJobs struct {
	tokens   TokenPruner
	interval time.Duration
}

func NewMaintenanceJobs(tokens TokenPruner, interval time.Duration) *MaintenanceJobs {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &MaintenanceJobs{tokens: tokens, interval: interval}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_tokens", j.interval, j.PruneRevokedTokens)
}

func (j *MaintenanceJobs) PruneRevokedTokens(ctx context.Context) error {
	if removed := j.tokens.PruneRevokedTokens(); removed > 0 {
		slog.InfoContext(ctx, "Cron: pruned revoked tokens", "count", removed)
	}
	return nil
}
