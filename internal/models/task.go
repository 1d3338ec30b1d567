package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task belongs to exactly one project and one creating user. The assignee is
// referenced by email value, not id, so a later email change on the user does
// not cascade into existing tasks.
type Task struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	ProjectID     uint64    `gorm:"not null;index" json:"project_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	StartAt       string    `gorm:"type:date;not null" json:"start_at"`
	EndAt         string    `gorm:"type:date;not null" json:"end_at"`
	Priority      Priority  `gorm:"not null" json:"priority"`
	Status        Status    `gorm:"not null" json:"status"`
	AssignedEmail string    `gorm:"not null;index" json:"assigned_email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
