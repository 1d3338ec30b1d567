package models

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

// ProjectDetail is the show shape: the project with its comments and tasks
// nested, both always present even when empty.
type ProjectDetail struct {
	models.Project
	Comments []models.ProjectComment `json:"comments"`
	Tasks    []models.Task           `json:"tasks"`
}
