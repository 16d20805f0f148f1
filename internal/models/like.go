package models

import "time"

// Like represents a like on a post. A user may like a given post at most once.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"` // MongoDB ObjectID of the liked post as hex string
	CreatedAt time.Time `json:"created_at"`
}
