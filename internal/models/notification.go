package models

import "time"

// TargetKind tags what a notification points at.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
	TargetUser    TargetKind = "user"
)

// Notification records that an actor did something affecting a recipient.
// Rows are created only as a side effect of follow/like/comment writes;
// the only state transition is unread -> read.
type Notification struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	RecipientID uint       `json:"recipient_id" gorm:"index"`
	ActorID     uint       `json:"actor_id" gorm:"index"`
	Verb        string     `json:"verb" gorm:"size:255"`
	TargetKind  TargetKind `json:"target_kind" gorm:"size:20"`
	TargetID    string     `json:"target_id"`
	IsRead      bool       `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
}
