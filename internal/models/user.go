package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account holder. Follow edges live in the follows table, not here.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"size:150;uniqueIndex"`
	Email             string    `json:"email" gorm:"uniqueIndex"`
	Password          string    `json:"-"` // bcrypt hash, never serialized
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	FirebaseUID       string    `json:"-" gorm:"uniqueIndex;default:null"` // set only for Firebase-linked accounts
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserCompact is the author/actor shape embedded in feed posts and notifications.
type UserCompact struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:                u.ID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// UserProfile is a user plus the computed follow-graph counts.
type UserProfile struct {
	User
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	Bio               string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
