package repositories

import (
	"github.com/balogunkehinde13/social-media-api/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID string, page, limit int) ([]models.Comment, int64, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
	// DeleteCommentsByPostID removes every comment of a post; used when the
	// parent post is deleted.
	DeleteCommentsByPostID(postID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID returns a post's comments oldest first.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID string, page, limit int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	return comments, total, err
}

func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

func (r *PostgresCommentRepository) DeleteCommentsByPostID(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
