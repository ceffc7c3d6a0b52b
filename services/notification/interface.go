package notification

import (
	"context"

	"bookflow/models"
)

// Service defines the outbound notification surface of the gateway.
// Delivery is asynchronous; enqueue failures are the caller's to log,
// never to fail a booking on.
type Service interface {
	SendConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}
