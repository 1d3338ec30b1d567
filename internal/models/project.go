package models

import "time"

// Status is shared by projects and tasks.
type Status string

const (
	StatusAvailableSoon Status = "available-soon"
	StatusInProgress    Status = "in-progress"
	StatusDone          Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailableSoon, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StartAt     string    `gorm:"type:date;not null" json:"start_at"`
	EndAt       string    `gorm:"type:date;not null" json:"end_at"`
	Status      Status    `gorm:"not null" json:"status"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
