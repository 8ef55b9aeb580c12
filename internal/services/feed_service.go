package services

import (
	"context"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
)

// FeedService assembles a user's timeline: posts authored by the users they
// follow, newest first.
type FeedService struct {
	follows repositories.FollowRepository
	posts   repositories.PostRepository
	users   repositories.UserRepository
	likes   repositories.LikeRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(follows repositories.FollowRepository, posts repositories.PostRepository, users repositories.UserRepository, likes repositories.LikeRepository) *FeedService {
	return &FeedService{follows: follows, posts: posts, users: users, likes: likes}
}

// FeedPost is a post enriched with author info and the caller's like status.
type FeedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
}

// Feed returns one page of the user's timeline and the total post count
// across their follow graph. An empty following set short-circuits to an
// empty page.
func (s *FeedService) Feed(ctx context.Context, userID uint, page, limit int) ([]FeedPost, int64, error) {
	followingIDs, err := s.follows.GetFollowingIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []FeedPost{}, 0, nil
	}

	skip := int64((page - 1) * limit)
	posts, err := s.posts.GetPostsByAuthorIDs(ctx, followingIDs, skip, int64(limit))
	if err != nil {
		return nil, 0, err
	}
	total, err := s.posts.CountPostsByAuthorIDs(ctx, followingIDs)
	if err != nil {
		return nil, 0, err
	}

	authorCache := make(map[uint]models.UserCompact)
	feed := make([]FeedPost, len(posts))
	for i, p := range posts {
		author, ok := authorCache[p.AuthorID]
		if !ok {
			if user, err := s.users.GetUserByID(p.AuthorID); err == nil {
				author = user.ToCompact()
			}
			authorCache[p.AuthorID] = author
		}

		liked, _ := s.likes.HasUserLikedPost(p.ID.Hex(), userID)
		feed[i] = FeedPost{Post: p, Author: author, IsLiked: liked}
	}
	return feed, total, nil
}
