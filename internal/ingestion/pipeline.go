package ingestion

import (
	"errors"
	"log/slog"

	"github.com/aevon-lab/notification-stats/internal/core/aggregation"
	"github.com/aevon-lab/notification-stats/internal/schema"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome classifies what happened to one bus message.
type Outcome string

const (
	OutcomeAccepted     Outcome = "accepted"
	OutcomeDecodeFailed Outcome = "decode_failed"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeIgnored      Outcome = "ignored"
)

// Topics names the two subscribed topics.
type Topics struct {
	User string
	Ack  string
}

// List returns the topics in subscription order.
func (t Topics) List() []string {
	return []string{t.User, t.Ack}
}

// Dispatcher consumes one bus message. Implementations must not block.
type Dispatcher interface {
	Handle(topic string, payload []byte) Outcome
}

// Pipeline runs decode -> validate -> aggregate for each inbound message.
// Failures are logged and dropped here; nothing propagates to the caller.
type Pipeline struct {
	topics    Topics
	validator *schema.Validator
	stats     *aggregation.StatsAggregator
	messages  *prometheus.CounterVec
}

// NewPipeline wires a pipeline and registers its outcome counter.
// A nil registerer falls back to prometheus.DefaultRegisterer.
func NewPipeline(topics Topics, validator *schema.Validator, stats *aggregation.StatsAggregator, reg prometheus.Registerer) (*Pipeline, error) {
	if validator == nil {
		panic("ingestion: validator must not be nil")
	}
	if stats == nil {
		panic("ingestion: stats must not be nil")
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	messages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notification",
			Subsystem: "ingest",
			Name:      "messages_total",
			Help:      "Bus messages routed to the ingestion pipeline, by topic and outcome",
		},
		[]string{"topic", "outcome"},
	)
	if err := reg.Register(messages); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		messages = existing
	}

	return &Pipeline{
		topics:    topics,
		validator: validator,
		stats:     stats,
		messages:  messages,
	}, nil
}

// Handle routes by exact topic match. Messages on any other topic are
// ignored without logging.
func (p *Pipeline) Handle(topic string, payload []byte) Outcome {
	var outcome Outcome
	switch topic {
	case p.topics.User:
		outcome = p.handleUserNotification(topic, payload)
	case p.topics.Ack:
		outcome = p.handleDeliveryAck(topic, payload)
	default:
		return OutcomeIgnored
	}
	p.messages.WithLabelValues(topic, string(outcome)).Inc()
	return outcome
}

func (p *Pipeline) handleUserNotification(topic string, payload []byte) Outcome {
	v, err := schema.Decode(payload)
	if err != nil {
		logRejected(topic, OutcomeDecodeFailed, len(payload), err)
		return OutcomeDecodeFailed
	}

	evt, err := p.validator.ValidateUserNotification(v)
	if err != nil {
		logRejected(topic, OutcomeInvalid, len(payload), err)
		return OutcomeInvalid
	}

	p.stats.OnReceived()
	slog.Debug("User notification counted",
		"topic", topic,
		"notification_id", evt.NotificationID,
		"request_id", evt.RequestID,
		"priority", evt.Priority)
	return OutcomeAccepted
}

func (p *Pipeline) handleDeliveryAck(topic string, payload []byte) Outcome {
	v, err := schema.Decode(payload)
	if err != nil {
		logRejected(topic, OutcomeDecodeFailed, len(payload), err)
		return OutcomeDecodeFailed
	}

	ack, err := p.validator.ValidateDeliveryAck(v)
	if err != nil {
		logRejected(topic, OutcomeInvalid, len(payload), err)
		return OutcomeInvalid
	}

	p.stats.OnAck(ack.Status)
	slog.Debug("Delivery ack counted",
		"topic", topic,
		"notification_id", ack.NotificationID,
		"request_id", ack.RequestID,
		"status", ack.Status)
	return OutcomeAccepted
}

func logRejected(topic string, outcome Outcome, size int, err error) {
	attrs := []any{
		"topic", topic,
		"outcome", outcome,
		"payload_size", size,
		"error", err,
	}
	var multi *schema.MultiValidationError
	if errors.As(err, &multi) {
		attrs = append(attrs, "fields", multi.Fields())
	}
	slog.Warn("Dropped bus message", attrs...)
}
