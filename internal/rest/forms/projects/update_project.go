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

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartAt     *string `json:"start_at"`
	EndAt       *string `json:"end_at"`
	Status      *string `json:"status"`
}

// UpdateProjectForm constrains only the fields present in the payload.
type UpdateProjectForm struct {
	Title       *string
	Description *string
	StartAt     *string
	EndAt       *string
	Status      *string
}

func NewUpdateProjectForm() *UpdateProjectForm {
	return &UpdateProjectForm{}
}

func (f *UpdateProjectForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &UpdateProjectRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &UpdateProjectRequest{}
	}

	v := validation.New()
	v.Field("title", request.Title, validation.Title(false)...)
	v.Field("description", request.Description, validation.Description(false)...)
	v.Field("start_at", request.StartAt, validation.StartDate(false)...)
	v.Field("end_at", request.EndAt, validation.EndDate(false)...)
	v.Field("status", request.Status, validation.ProjectStatus(false)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("update project form validation failed")
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

	return f, nil
}

func (f *UpdateProjectForm) ConvertToMap() map[string]interface{} {
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
	return updates
}
