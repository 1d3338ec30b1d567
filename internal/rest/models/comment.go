package models

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

// ProjectCommentDetail nests the authoring user; nil when the author no
// longer exists.
type ProjectCommentDetail struct {
	models.ProjectComment
	User *models.User `json:"user"`
}

type TaskCommentDetail struct {
	models.TaskComment
	User *models.User `json:"user"`
}
