package projects

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

type CreateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartAt     *string `json:"start_at"`
	EndAt       *string `json:"end_at"`
	Status      *string `json:"status"`
}

type CreateProjectForm struct {
	Title       string
	Description string
	StartAt     string
	EndAt       string
	Status      string
}

func NewCreateProjectForm() *CreateProjectForm {
	return &CreateProjectForm{}
}

func (f *CreateProjectForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &CreateProjectRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &CreateProjectRequest{}
	}

	v := validation.New()
	v.Field("title", request.Title, validation.Title(true)...)
	v.Field("description", request.Description, validation.Description(true)...)
	v.Field("start_at", request.StartAt, validation.StartDate(true)...)
	v.Field("end_at", request.EndAt, validation.EndDate(true)...)
	v.Field("status", request.Status, validation.ProjectStatus(true)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("create project form validation failed")
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

	return f, nil
}

func (f *CreateProjectForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"title":       f.Title,
		"description": f.Description,
		"start_at":    f.StartAt,
		"end_at":      f.EndAt,
		"status":      f.Status,
	}
}
