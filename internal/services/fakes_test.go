package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the storage-level behavior the
// services depend on: unique-index rejections, row-count semantics and
// sort orders.

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == firebaseUID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeFollowRepo struct {
	edges  []models.Follow
	nextID uint
}

func (r *fakeFollowRepo) indexOf(followerID, followingID uint) int {
	for i, e := range r.edges {
		if e.FollowerID == followerID && e.FollowingID == followingID {
			return i
		}
	}
	return -1
}

func (r *fakeFollowRepo) CreateFollow(follow *models.Follow) (bool, error) {
	if r.indexOf(follow.FollowerID, follow.FollowingID) >= 0 {
		return false, nil
	}
	r.nextID++
	follow.ID = r.nextID
	follow.CreatedAt = time.Now()
	r.edges = append(r.edges, *follow)
	return true, nil
}

func (r *fakeFollowRepo) DeleteFollow(followerID, followingID uint) error {
	if i := r.indexOf(followerID, followingID); i >= 0 {
		r.edges = append(r.edges[:i], r.edges[i+1:]...)
	}
	return nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return r.indexOf(followerID, followingID) >= 0, nil
}

func (r *fakeFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	for _, e := range r.edges {
		if e.FollowerID == userID {
			ids = append(ids, e.FollowingID)
		}
	}
	return ids, nil
}

type fakeLikeRepo struct {
	likes  []models.Like
	nextID uint
}

func (r *fakeLikeRepo) indexOf(postID string, userID uint) int {
	for i, l := range r.likes {
		if l.PostID == postID && l.UserID == userID {
			return i
		}
	}
	return -1
}

func (r *fakeLikeRepo) CreateLike(like *models.Like) error {
	if r.indexOf(like.PostID, like.UserID) >= 0 {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	like.ID = r.nextID
	like.CreatedAt = time.Now()
	r.likes = append(r.likes, *like)
	return nil
}

func (r *fakeLikeRepo) DeleteLike(postID string, userID uint) error {
	i := r.indexOf(postID, userID)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	r.likes = append(r.likes[:i], r.likes[i+1:]...)
	return nil
}

func (r *fakeLikeRepo) HasUserLikedPost(postID string, userID uint) (bool, error) {
	return r.indexOf(postID, userID) >= 0, nil
}

func (r *fakeLikeRepo) GetLikesCountByPostID(postID string) (int64, error) {
	var count int64
	for _, l := range r.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

// addPost seeds a post with a controlled creation time.
func (r *fakePostRepo) addPost(authorID uint, title string, createdAt time.Time) *models.Post {
	post := &models.Post{
		ID:        primitive.NewObjectID(),
		AuthorID:  authorID,
		Title:     title,
		Content:   title + " content",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	r.posts[post.ID.Hex()] = post
	return post
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	return post, nil
}

func (r *fakePostRepo) matching(filter func(*models.Post) bool) []models.Post {
	var out []models.Post
	for _, p := range r.posts {
		if filter(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func paginate(posts []models.Post, skip, limit int64) []models.Post {
	if skip >= int64(len(posts)) {
		return nil
	}
	posts = posts[skip:]
	if limit < int64(len(posts)) {
		posts = posts[:limit]
	}
	return posts
}

func (r *fakePostRepo) GetPosts(ctx context.Context, search string, skip, limit int64) ([]models.Post, error) {
	posts := r.matching(func(p *models.Post) bool {
		if search == "" {
			return true
		}
		s := strings.ToLower(search)
		return strings.Contains(strings.ToLower(p.Title), s) || strings.Contains(strings.ToLower(p.Content), s)
	})
	return paginate(posts, skip, limit), nil
}

func (r *fakePostRepo) CountPosts(ctx context.Context, search string) (int64, error) {
	posts, _ := r.GetPosts(ctx, search, 0, int64(len(r.posts)))
	return int64(len(posts)), nil
}

func (r *fakePostRepo) GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, skip, limit int64) ([]models.Post, error) {
	set := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		set[id] = true
	}
	posts := r.matching(func(p *models.Post) bool { return set[p.AuthorID] })
	return paginate(posts, skip, limit), nil
}

func (r *fakePostRepo) CountPostsByAuthorIDs(ctx context.Context, authorIDs []uint) (int64, error) {
	posts, _ := r.GetPostsByAuthorIDs(ctx, authorIDs, 0, int64(len(r.posts)))
	return int64(len(posts)), nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	existing, ok := r.posts[id]
	if !ok {
		return repositories.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementLikesCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.LikesCount++
	}
	return nil
}

func (r *fakePostRepo) DecrementLikesCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.LikesCount--
	}
	return nil
}

func (r *fakePostRepo) IncrementCommentsCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount++
	}
	return nil
}

func (r *fakePostRepo) DecrementCommentsCount(ctx context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount--
	}
	return nil
}

type fakeCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID == id {
			c := r.comments[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCommentRepo) GetCommentsByPostID(postID string, page, limit int) ([]models.Comment, int64, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	total := int64(len(out))

	offset := (page - 1) * limit
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeCommentRepo) UpdateComment(comment *models.Comment) error {
	for i := range r.comments {
		if r.comments[i].ID == comment.ID {
			r.comments[i] = *comment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCommentRepo) DeleteComment(id uint) error {
	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCommentRepo) DeleteCommentsByPostID(postID string) error {
	var kept []models.Comment
	for _, c := range r.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        uint
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipientID(recipientID uint, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))

	offset := (page - 1) * limit
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(recipientID, notificationID uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID && r.notifications[i].RecipientID == recipientID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for i := range r.notifications {
		if r.notifications[i].RecipientID == recipientID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

// forRecipient returns the raw notification rows for a recipient.
func (r *fakeNotificationRepo) forRecipient(recipientID uint) []models.Notification {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}
