package services

import (
	"context"
	"errors"
	"log"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"gorm.io/gorm"
)

// CommentService owns comment CRUD and the comment notification fan-out.
type CommentService struct {
	comments      repositories.CommentRepository
	posts         repositories.PostRepository
	notifications repositories.NotificationRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository, notifications repositories.NotificationRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, notifications: notifications}
}

// Add creates a comment on a post and notifies the post author, unless the
// commenter is the author.
func (s *CommentService) Add(ctx context.Context, userID uint, postID, content string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	if err := s.posts.IncrementCommentsCount(ctx, postID); err != nil {
		log.Printf("Failed to increment comments count for post %s: %v", postID, err)
	}

	if post.AuthorID != userID {
		n := &models.Notification{
			RecipientID: post.AuthorID,
			ActorID:     userID,
			Verb:        "commented on your post",
			TargetKind:  models.TargetPost,
			TargetID:    postID,
		}
		if err := s.notifications.CreateNotification(n); err != nil {
			log.Printf("Failed to create comment notification for post %s: %v", postID, err)
		}
	}

	return comment, nil
}

// ListByPost returns a post's comments oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID string, page, limit int) ([]models.Comment, int64, error) {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	return s.comments.GetCommentsByPostID(postID, page, limit)
}

func (s *CommentService) Get(id uint) (*models.Comment, error) {
	comment, err := s.comments.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

// Update replaces the comment body. Only the comment author may update.
func (s *CommentService) Update(actorID, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.Get(commentID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actorID, ActionUpdateComment, comment.UserID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.UpdateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment. Only the comment author may delete.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID uint) error {
	comment, err := s.Get(commentID)
	if err != nil {
		return err
	}
	if err := Authorize(actorID, ActionDeleteComment, comment.UserID); err != nil {
		return err
	}

	if err := s.comments.DeleteComment(commentID); err != nil {
		return err
	}

	if err := s.posts.DecrementCommentsCount(ctx, comment.PostID); err != nil {
		log.Printf("Failed to decrement comments count for post %s: %v", comment.PostID, err)
	}
	return nil
}
