package v1

// Priority is the delivery priority a producer attaches to a notification.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the enumerated priorities.
// Matching is case-sensitive.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// AckStatus is the outcome reported by a delivery acknowledgement.
type AckStatus string

const (
	AckDelivered AckStatus = "DELIVERED"
	AckFailed    AckStatus = "FAILED"
)

// Valid reports whether s is one of the enumerated ack statuses.
func (s AckStatus) Valid() bool {
	return s == AckDelivered || s == AckFailed
}

// UserNotificationEvent is published when a notification is dispatched to a user.
// It is immutable once parsed and is discarded after it has been counted.
type UserNotificationEvent struct {
	NotificationID string   `json:"notificationId"`
	RequestID      string   `json:"requestId"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Priority       Priority `json:"priority"`
}

// NotificationDeliveryAckEvent reports the delivery outcome for a notification.
type NotificationDeliveryAckEvent struct {
	RequestID      string    `json:"requestId"`
	NotificationID string    `json:"notificationId"`
	AcknowledgedAt string    `json:"acknowledgedAt"` // ISO-8601, kept verbatim
	Status         AckStatus `json:"status"`

	// FailureReason is nil when the field was absent from the payload.
	// It is usually set only for FAILED acks but that is not enforced.
	FailureReason *string `json:"failureReason,omitempty"`
}

// NotificationStats is a point-in-time copy of the process-wide counters.
type NotificationStats struct {
	Received     uint64 `json:"received"`
	AckDelivered uint64 `json:"ackDelivered"`
	AckFailed    uint64 `json:"ackFailed"`
}
