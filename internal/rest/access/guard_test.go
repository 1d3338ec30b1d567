package access_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
)

func TestProjectOwnedBy(t *testing.T) {
	project := &models.Project{ID: 1, UserID: 7}

	assert.Nil(t, access.Check(access.ProjectOwnedBy(project, 7)))

	err := access.Check(access.ProjectOwnedBy(project, 8))
	assert.Equal(t, http.StatusUnauthorized, err.Status())
	assert.Equal(t, "This project does not belong to you", err.Body()["message"])
}

func TestTaskInProject(t *testing.T) {
	project := &models.Project{ID: 3}
	task := &models.Task{ID: 9, ProjectID: 3}

	assert.Nil(t, access.Check(access.TaskInProject(project, task)))

	stray := &models.Task{ID: 10, ProjectID: 4}
	err := access.Check(access.TaskInProject(project, stray))
	assert.Equal(t, http.StatusUnauthorized, err.Status())
	assert.Equal(t, "This task does not belong to this project", err.Body()["message"])
}

func TestCommentAuthoredBy(t *testing.T) {
	assert.Nil(t, access.Check(access.CommentAuthoredBy(5, 5)))

	err := access.Check(access.CommentAuthoredBy(5, 6))
	assert.Equal(t, http.StatusUnauthorized, err.Status())
	assert.Equal(t, "This comment does not belong to you", err.Body()["message"])
}

func TestCheckShortCircuitsOnFirstFailure(t *testing.T) {
	project := &models.Project{ID: 1, UserID: 1}
	task := &models.Task{ID: 2, ProjectID: 99}

	// ownership fails first even though the parent/child guard would too
	err := access.Check(
		access.ProjectOwnedBy(project, 2),
		access.TaskInProject(project, task),
	)
	assert.Equal(t, "This project does not belong to you", err.Body()["message"])
}
