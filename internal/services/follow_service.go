package services

import (
	"errors"
	"strconv"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"gorm.io/gorm"
)

// FollowService owns the follow graph: edge creation/removal and the
// follow notification fan-out.
type FollowService struct {
	follows       repositories.FollowRepository
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository, notifications repositories.NotificationRepository) *FollowService {
	return &FollowService{follows: follows, users: users, notifications: notifications}
}

// Follow adds a directed edge from actor to target. Re-following is a
// no-op; only a newly created edge notifies the target.
func (s *FollowService) Follow(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	if _, err := s.users.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	created, err := s.follows.CreateFollow(&models.Follow{
		FollowerID:  actorID,
		FollowingID: targetID,
	})
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	return s.notifications.CreateNotification(&models.Notification{
		RecipientID: targetID,
		ActorID:     actorID,
		Verb:        "started following you",
		TargetKind:  models.TargetUser,
		TargetID:    strconv.FormatUint(uint64(targetID), 10),
	})
}

// Unfollow removes the edge. Removing an absent edge succeeds silently and
// nothing is notified.
func (s *FollowService) Unfollow(actorID, targetID uint) error {
	if _, err := s.users.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.follows.DeleteFollow(actorID, targetID)
}
