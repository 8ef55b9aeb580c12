package services

import (
	"errors"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService reads a recipient's notifications and drives the
// unread -> read transition. Creation happens only inside the follow, like
// and comment services.
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications repositories.NotificationRepository, users repositories.UserRepository) *NotificationService {
	return &NotificationService{notifications: notifications, users: users}
}

// EnrichedNotification includes actor info
type EnrichedNotification struct {
	models.Notification
	Actor models.UserCompact `json:"actor"`
}

// List returns the recipient's notifications newest first, optionally
// restricted to unread ones.
func (s *NotificationService) List(recipientID uint, unreadOnly bool, page, limit int) ([]EnrichedNotification, int64, error) {
	notifications, total, err := s.notifications.GetByRecipientID(recipientID, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	actorCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedNotification, len(notifications))
	for i, n := range notifications {
		enriched[i] = EnrichedNotification{Notification: n}
		if actor, ok := actorCache[n.ActorID]; ok {
			enriched[i].Actor = actor
			continue
		}
		if user, err := s.users.GetUserByID(n.ActorID); err == nil {
			compact := user.ToCompact()
			actorCache[n.ActorID] = compact
			enriched[i].Actor = compact
		}
	}
	return enriched, total, nil
}

func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.notifications.GetUnreadCount(recipientID)
}

// MarkRead flips one of the recipient's notifications to read. Marking an
// already-read notification again is a no-op.
func (s *NotificationService) MarkRead(recipientID, notificationID uint) error {
	if err := s.notifications.MarkAsRead(recipientID, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return s.notifications.MarkAllAsRead(recipientID)
}
