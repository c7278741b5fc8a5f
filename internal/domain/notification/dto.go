package notification

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/sse"
)

// Repository defines data access for notifications.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByStudent(ctx context.Context, studentID int) ([]Notification, error)
	MarkAllRead(ctx context.Context, studentID int) error
}

// Service defines notification operations.
type Service interface {
	// Notify stores a notification and pushes it to live subscribers.
	Notify(ctx context.Context, studentID int, message, link string) error

	// Broadcast pushes an event to every live subscriber without storing
	// it; used by the sync engine for "N new check-ins" signals.
	Broadcast(event string, data interface{})

	ListForStudent(ctx context.Context, studentID int) ([]Notification, error)
	MarkAllRead(ctx context.Context, studentID int) error

	// Subscribe attaches an SSE listener for one student.
	Subscribe(studentID int) (chan sse.Event, func())
}
