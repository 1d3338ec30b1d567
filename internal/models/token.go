package models

import "time"

// AccessToken records the jti of every issued JWT. Logout deletes the rows,
// which kills the tokens before their exp claim runs out.
type AccessToken struct {
	ID        uint64    `gorm:"primarykey"`
	UserID    uint64    `gorm:"not null;index"`
	JTI       string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

// PasswordReset holds at most one pending reset token per email.
type PasswordReset struct {
	Email     string `gorm:"primarykey"`
	Token     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
