package schema

import (
	v1 "github.com/aevon-lab/notification-stats/internal/api/v1"
)

const (
	SchemaUserNotification = "UserNotificationEvent"
	SchemaDeliveryAck      = "NotificationDeliveryAckEvent"
)

// field describes one string-typed payload key.
type field struct {
	name     string
	required bool
	enum     []string // empty means any string
}

var userNotificationFields = []field{
	{name: "notificationId", required: true},
	{name: "requestId", required: true},
	{name: "title", required: true},
	{name: "body", required: true},
	{name: "priority", required: true, enum: []string{
		string(v1.PriorityLow), string(v1.PriorityNormal), string(v1.PriorityHigh),
	}},
}

var deliveryAckFields = []field{
	{name: "requestId", required: true},
	{name: "notificationId", required: true},
	{name: "acknowledgedAt", required: true},
	{name: "status", required: true, enum: []string{
		string(v1.AckDelivered), string(v1.AckFailed),
	}},
	{name: "failureReason"},
}

// Validator checks decoded payloads against the two event schemas.
// Validation fails closed: any deviation rejects the whole event.
type Validator struct {
	// Strict additionally rejects keys that the schema does not declare.
	Strict bool
}

// NewValidator creates a validator. strict enables unknown-key rejection.
func NewValidator(strict bool) *Validator {
	return &Validator{Strict: strict}
}

var defaultValidator = &Validator{}

// ValidateUserNotification validates with the default, non-strict validator.
func ValidateUserNotification(v Value) (v1.UserNotificationEvent, error) {
	return defaultValidator.ValidateUserNotification(v)
}

// ValidateDeliveryAck validates with the default, non-strict validator.
func ValidateDeliveryAck(v Value) (v1.NotificationDeliveryAckEvent, error) {
	return defaultValidator.ValidateDeliveryAck(v)
}

// ValidateUserNotification returns the typed event or an error matching ErrInvalid.
func (val *Validator) ValidateUserNotification(v Value) (v1.UserNotificationEvent, error) {
	got, err := val.check(SchemaUserNotification, v, userNotificationFields)
	if err != nil {
		return v1.UserNotificationEvent{}, err
	}
	return v1.UserNotificationEvent{
		NotificationID: got["notificationId"],
		RequestID:      got["requestId"],
		Title:          got["title"],
		Body:           got["body"],
		Priority:       v1.Priority(got["priority"]),
	}, nil
}

// ValidateDeliveryAck returns the typed ack or an error matching ErrInvalid.
// An absent failureReason is valid; a present non-string one is not.
func (val *Validator) ValidateDeliveryAck(v Value) (v1.NotificationDeliveryAckEvent, error) {
	got, err := val.check(SchemaDeliveryAck, v, deliveryAckFields)
	if err != nil {
		return v1.NotificationDeliveryAckEvent{}, err
	}
	evt := v1.NotificationDeliveryAckEvent{
		RequestID:      got["requestId"],
		NotificationID: got["notificationId"],
		AcknowledgedAt: got["acknowledgedAt"],
		Status:         v1.AckStatus(got["status"]),
	}
	if reason, ok := got["failureReason"]; ok {
		evt.FailureReason = &reason
	}
	return evt, nil
}

// check walks every field spec and collects all failures before returning,
// so a rejected payload is logged with its full list of problems.
func (val *Validator) check(schemaName string, v Value, fields []field) (map[string]string, error) {
	if v.Kind() != KindObject {
		return nil, &ValidationError{
			Schema:       schemaName,
			Message:      "payload must be an object",
			ExpectedType: KindObject.String(),
			ActualType:   v.Kind().String(),
		}
	}

	if val.Strict {
		if unknown := unknownKeys(v, fields); len(unknown) > 0 {
			return nil, NewUnknownFieldsError(schemaName, unknown)
		}
	}

	got := make(map[string]string, len(fields))
	var errs []*ValidationError
	for _, f := range fields {
		raw, exists := v.Field(f.name)
		if !exists {
			if f.required {
				errs = append(errs, NewRequiredFieldError(schemaName, f.name))
			}
			continue
		}

		// Present-but-null is a type mismatch, never "absent".
		s, ok := raw.AsString()
		if !ok {
			errs = append(errs, NewTypeMismatchError(schemaName, f.name, KindString.String(), raw.Kind().String()))
			continue
		}

		if len(f.enum) > 0 && !contains(f.enum, s) {
			errs = append(errs, NewEnumError(schemaName, f.name, s, f.enum))
			continue
		}
		got[f.name] = s
	}

	if len(errs) > 0 {
		return nil, &MultiValidationError{Errors: errs}
	}
	return got, nil
}

func unknownKeys(v Value, fields []field) []string {
	var unknown []string
	for _, key := range v.Keys() {
		declared := false
		for _, f := range fields {
			if f.name == key {
				declared = true
				break
			}
		}
		if !declared {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func contains(allowed []string, s string) bool {
	for _, a := range allowed {
		if a == s {
			return true
		}
	}
	return false
}
