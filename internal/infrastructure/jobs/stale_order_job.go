package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"marketplace.backend/pkg/logger"
)

const staleOrderBatchSize = 100

// StaleOrderCanceller cancels pending orders created before a cutoff
type StaleOrderCanceller interface {
	CancelStalePending(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// StaleOrderJob cancels orders left pending longer than ttl
type StaleOrderJob struct {
	orders   StaleOrderCanceller
	ttl      time.Duration
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

func NewStaleOrderJob(orders StaleOrderCanceller, ttl, interval time.Duration) *StaleOrderJob {
	return &StaleOrderJob{
		orders:   orders,
		ttl:      ttl,
		interval: interval,
		stop:     make(chan struct{}),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Enabled reports whether the job has a positive ttl and interval
func (j *StaleOrderJob) Enabled() bool {
	return j.ttl > 0 && j.interval > 0
}

// Start blocks until ctx is cancelled or Stop is called. It returns at once
// when the job is disabled.
func (j *StaleOrderJob) Start(ctx context.Context) {
	if !j.Enabled() {
		logger.Info(ctx, "Stale order job disabled")
		return
	}
	logger.Info(ctx, "Starting stale order job",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Stale order job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Stale order job stopped")
			return
		case <-ticker.C:
			j.processStaleOrders(ctx)
		}
	}
}

func (j *StaleOrderJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *StaleOrderJob) processStaleOrders(ctx context.Context) {
	cutoff := j.now().Add(-j.ttl)
	cancelled, err := j.orders.CancelStalePending(ctx, cutoff, staleOrderBatchSize)
	if err != nil {
		logger.Error(ctx, "Error cancelling stale orders", zap.Error(err), zap.Int("cancelled", cancelled))
		return
	}
	if cancelled == 0 {
		return
	}
	logger.Info(ctx, "Cancelled stale orders", zap.Int("count", cancelled), zap.Time("cutoff", cutoff))
}
