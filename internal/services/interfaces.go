package services

import (
	"context"
	"io"

	"kyc-service/internal/event"
)

// ObjectStorage is the one operation the services need from the object
// store: write a stream, get back its public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
}

// EventPublisher notifies the external verification worker. Publishing is
// fire-and-forget; a nil publisher disables events entirely.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event event.KYCEvent) error
}
