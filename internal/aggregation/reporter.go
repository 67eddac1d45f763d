package aggregation

import (
	"context"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/notification-stats/internal/api/v1"
)

// Snapshotter is the read side of the notification counters.
type Snapshotter interface {
	Snapshot() v1.NotificationStats
}

// Reporter logs the counters on a fixed interval.
// It only reads: reporting never changes a counter.
type Reporter struct {
	interval time.Duration
	stats    Snapshotter
	logger   *slog.Logger
}

// NewReporter creates a periodic reporter. A non-positive interval yields a
// reporter whose Start returns as soon as ctx is cancelled without logging.
func NewReporter(interval time.Duration, stats Snapshotter, logger *slog.Logger) *Reporter {
	if stats == nil {
		panic("aggregation: stats must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		interval: interval,
		stats:    stats,
		logger:   logger,
	}
}

// Start emits a snapshot every interval and one final snapshot on shutdown.
// Runs until context is cancelled.
func (r *Reporter) Start(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info("[Reporter] Periodic stats report disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("[Reporter] Starting stats reporter", "interval", r.interval)

	for {
		select {
		case <-ticker.C:
			r.report("Notification stats")
		case <-ctx.Done():
			r.report("Final notification stats")
			return nil
		}
	}
}

func (r *Reporter) report(msg string) {
	s := r.stats.Snapshot()
	r.logger.Info("[Reporter] "+msg,
		"received", s.Received,
		"ack_delivered", s.AckDelivered,
		"ack_failed", s.AckFailed,
	)
}
