package access

import (
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

// Resolver turns raw path identifiers into live entities or a typed 404.
// A malformed identifier behaves exactly like a missing one. Handlers resolve
// ancestors before descendants, so the outermost missing resource is always
// the one reported.
type Resolver struct {
	store *storage.Storage
	log   *logrus.Entry
}

func NewResolver(store *storage.Storage, log *logrus.Logger) *Resolver {
	return &Resolver{store: store, log: logrus.NewEntry(log)}
}

func (r *Resolver) Project(raw string) (*models.Project, response.Error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, response.NewNotFoundError("project")
	}
	project, err := r.store.ProjectByID(id)
	if err != nil {
		return nil, r.failure("project", err)
	}
	return project, nil
}

func (r *Resolver) Task(raw string) (*models.Task, response.Error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, response.NewNotFoundError("task")
	}
	task, err := r.store.TaskByID(id)
	if err != nil {
		return nil, r.failure("task", err)
	}
	return task, nil
}

func (r *Resolver) ProjectComment(raw string) (*models.ProjectComment, response.Error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, response.NewNotFoundError("comment")
	}
	comment, err := r.store.ProjectCommentByID(id)
	if err != nil {
		return nil, r.failure("comment", err)
	}
	return comment, nil
}

func (r *Resolver) TaskComment(raw string) (*models.TaskComment, response.Error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, response.NewNotFoundError("comment")
	}
	comment, err := r.store.TaskCommentByID(id)
	if err != nil {
		return nil, r.failure("comment", err)
	}
	return comment, nil
}

func (r *Resolver) failure(kind string, err error) response.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return response.NewNotFoundError(kind)
	}
	r.log.WithError(err).Errorf("access: %s lookup failed", kind)
	return response.NewInternalError()
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
