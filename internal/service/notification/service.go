package notification

import (
	"context"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sse"
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{repo: repo, hub: hub}
}

func (s *service) Notify(ctx context.Context, studentID int, message, link string) error {
	created, err := s.repo.Create(ctx, notification.Notification{
		StudentID: studentID,
		Message:   message,
		Link:      link,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}

	s.hub.Publish(studentID, sse.Event{
		StudentID: studentID,
		Event:     "notification",
		Data:      created,
	})
	return nil
}

func (s *service) Broadcast(event string, data interface{}) {
	s.hub.Broadcast(sse.Event{Event: event, Data: data})
}

func (s *service) ListForStudent(ctx context.Context, studentID int) ([]notification.Notification, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *service) MarkAllRead(ctx context.Context, studentID int) error {
	return s.repo.MarkAllRead(ctx, studentID)
}

func (s *service) Subscribe(studentID int) (chan sse.Event, func()) {
	return s.hub.Subscribe(studentID)
}
