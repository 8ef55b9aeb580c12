package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
// The composite unique index makes duplicate edges impossible even under
// concurrent identical requests.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
