package access

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

// Guard is a single read-only ownership predicate. A failure is always
// user-facing and non-retriable.
type Guard func() response.Error

// Check runs the guards in order and short-circuits on the first failure.
func Check(guards ...Guard) response.Error {
	for _, guard := range guards {
		if err := guard(); err != nil {
			return err
		}
	}
	return nil
}

// ProjectOwnedBy asserts the caller created the project. Ownership and
// parent/child consistency stay separate predicates so their failure messages
// stay distinguishable.
func ProjectOwnedBy(project *models.Project, userID uint64) Guard {
	return func() response.Error {
		if project.UserID != userID {
			return response.NewOwnershipError("This project does not belong to you")
		}
		return nil
	}
}

// TaskInProject asserts the task's stored foreign key matches the project
// named in the request path. This catches identifier confusion where a valid
// task id belongs to a different project.
func TaskInProject(project *models.Project, task *models.Task) Guard {
	return func() response.Error {
		if task.ProjectID != project.ID {
			return response.NewOwnershipError("This task does not belong to this project")
		}
		return nil
	}
}

// CommentAuthoredBy asserts the caller wrote the comment. Owning the parent
// project or task grants no comment-deletion rights.
func CommentAuthoredBy(authorID, userID uint64) Guard {
	return func() response.Error {
		if authorID != userID {
			return response.NewOwnershipError("This comment does not belong to you")
		}
		return nil
	}
}
