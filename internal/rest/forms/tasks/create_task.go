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

type CreateTaskRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	StartAt       *string `json:"start_at"`
	EndAt         *string `json:"end_at"`
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	AssignedEmail *string `json:"assigned_email"`
}

type CreateTaskForm struct {
	users validation.UserDirectory

	Title         string
	Description   string
	StartAt       string
	EndAt         string
	Status        string
	Priority      string
	AssignedEmail string
}

func NewCreateTaskForm(users validation.UserDirectory) *CreateTaskForm {
	return &CreateTaskForm{users: users}
}

func (f *CreateTaskForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &CreateTaskRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &CreateTaskRequest{}
	}

	v := validation.New()
	v.Field("title", request.Title, validation.Title(true)...)
	v.Field("description", request.Description, validation.Description(true)...)
	v.Field("start_at", request.StartAt, validation.StartDate(true)...)
	v.Field("end_at", request.EndAt, validation.EndDate(true)...)
	v.Field("status", request.Status, validation.ProjectStatus(true)...)
	v.Field("priority", request.Priority, validation.TaskPriority(true)...)
	v.Field("assigned_email", request.AssignedEmail, validation.EmailExists(f.users, true)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("create task form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Title = *request.Title
	f.Description = *request.Description
	f.StartAt = *request.StartAt
	f.EndAt = *request.EndAt
	f.Status = *request.Status
	f.Priority = *request.Priority
	f.AssignedEmail = *request.AssignedEmail

	return f, nil
}

func (f *CreateTaskForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"title":          f.Title,
		"description":    f.Description,
		"start_at":       f.StartAt,
		"end_at":         f.EndAt,
		"status":         f.Status,
		"priority":       f.Priority,
		"assigned_email": f.AssignedEmail,
	}
}
