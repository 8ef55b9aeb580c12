package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPostNotFound is returned when a post ID resolves to no document.
// Malformed ObjectIDs map to the same error: an ID that cannot exist
// behaves like one that doesn't.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPosts(ctx context.Context, search string, skip, limit int64) ([]models.Post, error)
	CountPosts(ctx context.Context, search string) (int64, error)
	GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, skip, limit int64) ([]models.Post, error)
	CountPostsByAuthorIDs(ctx context.Context, authorIDs []uint) (int64, error)
	UpdatePost(ctx context.Context, id string, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	IncrementLikesCount(ctx context.Context, postID string) error
	DecrementLikesCount(ctx context.Context, postID string) error
	IncrementCommentsCount(ctx context.Context, postID string) error
	DecrementCommentsCount(ctx context.Context, postID string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// searchFilter matches title or content case-insensitively; an empty search
// matches everything.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := primitive.Regex{Pattern: search, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": regex},
		bson.M{"content": regex},
	}}
}

// GetPosts retrieves posts newest first, optionally filtered by search term.
func (r *MongoPostRepository) GetPosts(ctx context.Context, search string, skip, limit int64) ([]models.Post, error) {
	return r.find(ctx, searchFilter(search), skip, limit)
}

func (r *MongoPostRepository) CountPosts(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, searchFilter(search))
}

// GetPostsByAuthorIDs retrieves posts authored by any of the given users,
// newest first. This is the feed query.
func (r *MongoPostRepository) GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, skip, limit int64) ([]models.Post, error) {
	return r.find(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}}, skip, limit)
}

func (r *MongoPostRepository) CountPostsByAuthorIDs(ctx context.Context, authorIDs []uint) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}})
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates the mutable fields of an existing post
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}

	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":      post.Title,
			"content":    post.Content,
			"updated_at": post.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// DeletePost deletes a post by ID from MongoDB
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) IncrementLikesCount(ctx context.Context, postID string) error {
	return r.incField(ctx, postID, "likes_count", 1)
}

func (r *MongoPostRepository) DecrementLikesCount(ctx context.Context, postID string) error {
	return r.incField(ctx, postID, "likes_count", -1)
}

func (r *MongoPostRepository) IncrementCommentsCount(ctx context.Context, postID string) error {
	return r.incField(ctx, postID, "comments_count", 1)
}

func (r *MongoPostRepository) DecrementCommentsCount(ctx context.Context, postID string) error {
	return r.incField(ctx, postID, "comments_count", -1)
}

func (r *MongoPostRepository) incField(ctx context.Context, postID, field string, delta int) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{field: delta}})
	return err
}
