package tasks

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/rest/forms"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/validation"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

type UpdateTaskRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	StartAt       *string `json:"start_at"`
	EndAt         *string `json:"end_at"`
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	AssignedEmail *string `json:"assigned_email"`
}

// UpdateTaskForm constrains only the fields present in the payload. The
// parent project is never updatable; the task/project relationship is fixed
// at creation.
type UpdateTaskForm struct {
	users validation.UserDirectory

	Title         *string
	Description   *string
	StartAt       *string
	EndAt         *string
	Status        *string
	Priority      *string
	AssignedEmail *string
}

func NewUpdateTaskForm(users validation.UserDirectory) *UpdateTaskForm {
	return &UpdateTaskForm{users: users}
}

func (f *UpdateTaskForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &UpdateTaskRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &UpdateTaskRequest{}
	}

	v := validation.New()
	v.Field("title", request.Title, validation.Title(false)...)
	v.Field("description", request.Description, validation.Description(false)...)
	v.Field("start_at", request.StartAt, validation.StartDate(false)...)
	v.Field("end_at", request.EndAt, validation.EndDate(false)...)
	v.Field("status", request.Status, validation.ProjectStatus(false)...)
	v.Field("priority", request.Priority, validation.TaskPriority(false)...)
	v.Field("assigned_email", request.AssignedEmail, validation.EmailExists(f.users, false)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("update task form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Title = request.Title
	f.Description = request.Description
	f.StartAt = request.StartAt
	f.EndAt = request.EndAt
	f.Status = request.Status
	f.Priority = request.Priority
	f.AssignedEmail = request.AssignedEmail

	return f, nil
}

func (f *UpdateTaskForm) ConvertToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if f.Title != nil {
		updates["title"] = *f.Title
	}
	if f.Description != nil {
		updates["description"] = *f.Description
	}
	if f.StartAt != nil {
		updates["start_at"] = *f.StartAt
	}
	if f.EndAt != nil {
		updates["end_at"] = *f.EndAt
	}
	if f.Status != nil {
		updates["status"] = *f.Status
	}
	if f.Priority != nil {
		updates["priority"] = *f.Priority
	}
	if f.AssignedEmail != nil {
		updates["assigned_email"] = *f.AssignedEmail
	}
	return updates
}
