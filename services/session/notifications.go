package session

import (
	"trustmate/models"

	"github.com/google/uuid"
)

func (s *Session) addNotificationLocked(title, message string, typ models.NotificationType) {
	notif := models.Notification{
		ID:      uuid.New().String(),
		Title:   title,
		Message: message,
		Date:    s.deps.Now(),
		Read:    false,
		Type:    typ,
	}
	s.notifications = append([]models.Notification{notif}, s.notifications...)
}

// Notifications returns a copy of the feed, newest first.
func (s *Session) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *Session) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkNotificationRead flags a single notification as read, copy on write.
func (s *Session) MarkNotificationRead(id string) {
	s.mu.Lock()
	updated := make([]models.Notification, len(s.notifications))
	copy(updated, s.notifications)
	changed := false
	for i := range updated {
		if updated[i].ID == id && !updated[i].Read {
			updated[i].Read = true
			changed = true
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.notifications = updated
	s.mu.Unlock()
	s.notifyChange()
}

// MarkAllNotificationsRead flags the whole feed as read.
func (s *Session) MarkAllNotificationsRead() {
	s.mu.Lock()
	updated := make([]models.Notification, len(s.notifications))
	copy(updated, s.notifications)
	for i := range updated {
		updated[i].Read = true
	}
	s.notifications = updated
	s.mu.Unlock()
	s.notifyChange()
}

// ToggleNotificationPref flips one of the push/email/sms switches. Unknown
// keys are ignored.
func (s *Session) ToggleNotificationPref(key string) {
	s.mu.Lock()
	switch key {
	case "push":
		s.prefs.Push = !s.prefs.Push
	case "email":
		s.prefs.Email = !s.prefs.Email
	case "sms":
		s.prefs.SMS = !s.prefs.SMS
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notifyChange()
}

// NotificationPrefs returns the current preference switches.
func (s *Session) NotificationPrefs() models.NotificationPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}
