package store

import (
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// AddNotification prepends a notification.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	return n
}

// NotificationsFor returns the notifications addressed to the given role,
// most recent first.
func (s *Store) NotificationsFor(role string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.VisibleTo(role) {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead marks one notification as read and returns it.
func (s *Store) MarkNotificationRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return s.notifications[i], nil
		}
	}
	return models.Notification{}, fmt.Errorf("notification %s: %w", id, ErrNotFound)
}

// MarkAllNotificationsRead marks every notification visible to the role as
// read and returns the updated records.
func (s *Store) MarkAllNotificationsRead(role string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for i := range s.notifications {
		if s.notifications[i].VisibleTo(role) {
			s.notifications[i].IsRead = true
			out = append(out, s.notifications[i])
		}
	}
	return out
}
