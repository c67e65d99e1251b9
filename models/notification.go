package models

import "time"

type NotificationType string

const (
	NotifStatus NotificationType = "status"
	NotifInfo   NotificationType = "info"
	NotifPromo  NotificationType = "promo"
)

// Notification is an in-app notification. The list is append-only within a
// session; entries are never deleted, only marked read.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}

// NotificationPrefs holds the per-channel delivery toggles.
type NotificationPrefs struct {
	Push  bool `json:"push"`
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	ServiceName string `json:"serviceName"`
	FireDate    string `json:"fireDate"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}
