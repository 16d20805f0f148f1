package repositories

import (
	"errors"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/chabeb/social-network/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(postID string, userID uint) error
	HasUserLikedPost(postID string, userID uint) (bool, error)
	GetLikedPostIDs(userID uint) ([]string, error)
	GetUsersWhoLiked(postID string) ([]models.User, error)
	DeleteLikesForPost(postID string) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like edge. The composite unique index on
// (user_id, post_id) guarantees at most one like per user per post.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("post already liked by this user")
		}
		return err
	}
	return nil
}

func (r *PostgresLikeRepository) DeleteLike(postID string, userID uint) error {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("like not found")
	}
	return nil
}

func (r *PostgresLikeRepository) HasUserLikedPost(postID string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresLikeRepository) GetLikedPostIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Order("created_at DESC").Pluck("post_id", &ids).Error
	return ids, err
}

func (r *PostgresLikeRepository) GetUsersWhoLiked(postID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("likes").Select("user_id").Where("post_id = ?", postID),
	).Find(&users).Error
	return users, err
}

// DeleteLikesForPost removes every like of a post. Used by the post delete
// cascade; removing zero rows is not an error.
func (r *PostgresLikeRepository) DeleteLikesForPost(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
