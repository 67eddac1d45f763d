package aggregation

import (
	"sync/atomic"

	v1 "github.com/aevon-lab/notification-stats/internal/api/v1"
)

// StatsAggregator owns the process-wide notification counters.
// Counters start at zero, only ever increase and are never persisted.
// Every mutation is a single atomic add, so concurrent dispatchers never
// lose an update.
type StatsAggregator struct {
	received     atomic.Uint64
	ackDelivered atomic.Uint64
	ackFailed    atomic.Uint64
}

// NewStatsAggregator returns an aggregator with all counters at zero.
func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{}
}

// OnReceived counts one validated UserNotificationEvent.
func (a *StatsAggregator) OnReceived() {
	a.received.Add(1)
}

// OnAck counts one validated delivery ack. Anything other than DELIVERED
// lands in the failed counter; validation has already narrowed status to
// the two enumerated values.
func (a *StatsAggregator) OnAck(status v1.AckStatus) {
	if status == v1.AckDelivered {
		a.ackDelivered.Add(1)
		return
	}
	a.ackFailed.Add(1)
}

// Snapshot copies the counters. Each field is read atomically; the three
// reads are not taken under a common lock.
func (a *StatsAggregator) Snapshot() v1.NotificationStats {
	return v1.NotificationStats{
		Received:     a.received.Load(),
		AckDelivered: a.ackDelivered.Load(),
		AckFailed:    a.ackFailed.Load(),
	}
}
