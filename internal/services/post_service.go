package services

import (
	"context"
	"errors"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
)

// PostService owns post CRUD. Mutations are restricted to the author via the
// ownership policy; deleting a post cascades to its comments.
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, comments repositories.CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

func (s *PostService) Create(ctx context.Context, authorID uint, title, content string) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns posts newest first, optionally filtered by a search term
// matching title or content.
func (s *PostService) List(ctx context.Context, search string, page, limit int) ([]models.Post, int64, error) {
	skip := int64((page - 1) * limit)
	posts, err := s.posts.GetPosts(ctx, search, skip, int64(limit))
	if err != nil {
		return nil, 0, err
	}
	total, err := s.posts.CountPosts(ctx, search)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) Update(ctx context.Context, actorID uint, id string, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actorID, ActionUpdatePost, post.AuthorID); err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if err := s.posts.UpdatePost(ctx, id, post); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes the post and its comments.
func (s *PostService) Delete(ctx context.Context, actorID uint, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(actorID, ActionDeletePost, post.AuthorID); err != nil {
		return err
	}

	if err := s.posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.comments.DeleteCommentsByPostID(id)
}
