package entity

import (
	"errors"
	"time"
)

// NotificationPriority orders notifications in the owner's inbox.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is the payload published to the owner's notification channel.
type Notification struct {
	UserID    string               `json:"user_id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Priority  NotificationPriority `json:"priority"`
	ActionURL string               `json:"action_url"`
	CreatedAt time.Time            `json:"created_at"`
}

// NewNotification validates and builds a notification.
func NewNotification(userID, title, message string, priority NotificationPriority, actionURL string) (*Notification, error) {
	if userID == "" {
		return nil, errors.New("notification user id is required")
	}
	if title == "" {
		return nil, errors.New("notification title is required")
	}

	return &Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Priority:  priority,
		ActionURL: actionURL,
		CreatedAt: time.Now(),
	}, nil
}
