package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// Donors subscribe their devices to a per-profile topic; the service pushes
// to that topic so no device registry is needed server-side.
type NotificationService interface {
	// SendToTopic sends a push notification to every device subscribed to the topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
