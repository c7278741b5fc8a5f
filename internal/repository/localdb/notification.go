package localdb

import (
	"context"
	"sort"

	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	err := r.db.Update(func(doc *database.Document) error {
		n.ID = nextNotificationID(doc.Notifications)
		doc.Notifications = append(doc.Notifications, n)
		return nil
	})
	return n, err
}

func (r *notificationRepository) ListByStudent(ctx context.Context, studentID int) ([]notification.Notification, error) {
	items := []notification.Notification{}
	err := r.db.View(func(doc *database.Document) error {
		for _, n := range doc.Notifications {
			if n.StudentID == studentID {
				items = append(items, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, studentID int) error {
	return r.db.Update(func(doc *database.Document) error {
		for i := range doc.Notifications {
			if doc.Notifications[i].StudentID == studentID {
				doc.Notifications[i].IsRead = true
			}
		}
		return nil
	})
}

func nextNotificationID(items []notification.Notification) int {
	next := 1
	for _, n := range items {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}
