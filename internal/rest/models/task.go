package models

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

// TaskDetail nests the task's comments; used on task show and task listings.
type TaskDetail struct {
	models.Task
	Comments []models.TaskComment `json:"comments"`
}
