package models

import "time"

// UserModel represents a registered account.
type UserModel struct {
	Base
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Name     string `json:"name"`
	Password string `json:"-"     gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// UserSession tracks signed-in JWT sessions so tokens can be revoked.
type UserSession struct {
	Base
	UserID    string     `json:"user_id"    gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`
}

func (UserSession) TableName() string { return "user_sessions" }
