package services

import (
	"context"
	"errors"
	"log"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"gorm.io/gorm"
)

// LikeService owns like/unlike and the like notification fan-out.
type LikeService struct {
	likes         repositories.LikeRepository
	posts         repositories.PostRepository
	notifications repositories.NotificationRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likes repositories.LikeRepository, posts repositories.PostRepository, notifications repositories.NotificationRepository) *LikeService {
	return &LikeService{likes: likes, posts: posts, notifications: notifications}
}

// Like records that userID liked postID. Duplicate likes are rejected by the
// storage constraint, not a pre-check, so concurrent identical requests
// cannot insert two rows.
func (s *LikeService) Like(ctx context.Context, userID uint, postID string) (*models.Like, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	like := &models.Like{PostID: postID, UserID: userID}
	if err := s.likes.CreateLike(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	if err := s.posts.IncrementLikesCount(ctx, postID); err != nil {
		log.Printf("Failed to increment likes count for post %s: %v", postID, err)
	}

	if post.AuthorID != userID {
		n := &models.Notification{
			RecipientID: post.AuthorID,
			ActorID:     userID,
			Verb:        "liked your post",
			TargetKind:  models.TargetPost,
			TargetID:    postID,
		}
		if err := s.notifications.CreateNotification(n); err != nil {
			log.Printf("Failed to create like notification for post %s: %v", postID, err)
		}
	}

	return like, nil
}

// Unlike removes the like. Unliking a post that was never liked is an error.
func (s *LikeService) Unlike(ctx context.Context, userID uint, postID string) error {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.likes.DeleteLike(postID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotLiked
		}
		return err
	}

	if err := s.posts.DecrementLikesCount(ctx, postID); err != nil {
		log.Printf("Failed to decrement likes count for post %s: %v", postID, err)
	}
	return nil
}
