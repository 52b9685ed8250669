package service

import (
	"context"
)

// Routing keys for appointment events
const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentReminder  = "appointment.reminder"
)

// EventPublisher publishes domain events as JSON under a routing key
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishJSON(context.Context, string, any) error { return nil }
