package notification

import "time"

// Notification is an in-app message for one student.
type Notification struct {
	ID        int       `json:"id"`
	StudentID int       `json:"studentId"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"isRead"`
	Timestamp time.Time `json:"timestamp"`
}
