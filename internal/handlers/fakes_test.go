package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// Minimal in-memory repositories backing the handler tests. Only the
// behavior the routed services touch is modeled.

type stubUserRepo struct {
	users map[uint]*models.User
}

func (r *stubUserRepo) CreateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) UpdateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

type stubFollowRepo struct {
	edges map[[2]uint]bool
}

func (r *stubFollowRepo) CreateFollow(follow *models.Follow) (bool, error) {
	key := [2]uint{follow.FollowerID, follow.FollowingID}
	if r.edges[key] {
		return false, nil
	}
	r.edges[key] = true
	return true, nil
}

func (r *stubFollowRepo) DeleteFollow(followerID, followingID uint) error {
	delete(r.edges, [2]uint{followerID, followingID})
	return nil
}

func (r *stubFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return r.edges[[2]uint{followerID, followingID}], nil
}

func (r *stubFollowRepo) GetFollowers(userID uint) ([]models.User, error)  { return nil, nil }
func (r *stubFollowRepo) GetFollowing(userID uint) ([]models.User, error) { return nil, nil }

func (r *stubFollowRepo) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	for key := range r.edges {
		if key[1] == userID {
			count++
		}
	}
	return count, nil
}

func (r *stubFollowRepo) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	for key := range r.edges {
		if key[0] == userID {
			count++
		}
	}
	return count, nil
}

func (r *stubFollowRepo) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.edges {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

type stubLikeRepo struct {
	likes map[string]map[uint]bool
}

func (r *stubLikeRepo) CreateLike(like *models.Like) error {
	if r.likes[like.PostID] == nil {
		r.likes[like.PostID] = make(map[uint]bool)
	}
	if r.likes[like.PostID][like.UserID] {
		return gorm.ErrDuplicatedKey
	}
	r.likes[like.PostID][like.UserID] = true
	return nil
}

func (r *stubLikeRepo) DeleteLike(postID string, userID uint) error {
	if !r.likes[postID][userID] {
		return gorm.ErrRecordNotFound
	}
	delete(r.likes[postID], userID)
	return nil
}

func (r *stubLikeRepo) HasUserLikedPost(postID string, userID uint) (bool, error) {
	return r.likes[postID][userID], nil
}

func (r *stubLikeRepo) GetLikesCountByPostID(postID string) (int64, error) {
	return int64(len(r.likes[postID])), nil
}

type stubPostRepo struct {
	posts map[string]*models.Post
}

func (r *stubPostRepo) seed(authorID uint, title string) *models.Post {
	post := &models.Post{
		ID:        primitive.NewObjectID(),
		AuthorID:  authorID,
		Title:     title,
		Content:   title + " content",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.posts[post.ID.Hex()] = post
	return post
}

func (r *stubPostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *stubPostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	return post, nil
}

func (r *stubPostRepo) GetPosts(ctx context.Context, search string, skip, limit int64) ([]models.Post, error) {
	var out []models.Post
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPostRepo) CountPosts(ctx context.Context, search string) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *stubPostRepo) GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, skip, limit int64) ([]models.Post, error) {
	set := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		set[id] = true
	}
	var out []models.Post
	for _, p := range r.posts {
		if set[p.AuthorID] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPostRepo) CountPostsByAuthorIDs(ctx context.Context, authorIDs []uint) (int64, error) {
	posts, _ := r.GetPostsByAuthorIDs(ctx, authorIDs, 0, 0)
	return int64(len(posts)), nil
}

func (r *stubPostRepo) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	existing, ok := r.posts[id]
	if !ok {
		return repositories.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	return nil
}

func (r *stubPostRepo) DeletePost(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) IncrementLikesCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.LikesCount++
	}
	return nil
}

func (r *stubPostRepo) DecrementLikesCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.LikesCount--
	}
	return nil
}

func (r *stubPostRepo) IncrementCommentsCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount++
	}
	return nil
}

func (r *stubPostRepo) DecrementCommentsCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount--
	}
	return nil
}

type stubNotificationRepo struct {
	notifications []models.Notification
}

func (r *stubNotificationRepo) CreateNotification(notification *models.Notification) error {
	notification.ID = uint(len(r.notifications) + 1)
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *stubNotificationRepo) GetByRecipientID(recipientID uint, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *stubNotificationRepo) MarkAsRead(recipientID, notificationID uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID && r.notifications[i].RecipientID == recipientID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for i := range r.notifications {
		if r.notifications[i].RecipientID == recipientID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

// newTestContext builds an Echo context for a request already past the auth
// middleware, with the given user's claims attached.
func newTestContext(method, target string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}
