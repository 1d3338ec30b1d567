package users

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

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateUserForm keeps pointer fields: only resupplied fields are persisted.
type UpdateUserForm struct {
	users validation.UserDirectory

	Name  *string
	Email *string
}

func NewUpdateUserForm(users validation.UserDirectory) *UpdateUserForm {
	return &UpdateUserForm{users: users}
}

func (f *UpdateUserForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &UpdateUserRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &UpdateUserRequest{}
	}

	v := validation.New()
	v.Field("email", request.Email, validation.EmailUnique(f.users, false)...)
	v.Field("name", request.Name, validation.Name(false)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("update user form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Name = request.Name
	f.Email = request.Email

	return f, nil
}

func (f *UpdateUserForm) ConvertToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if f.Name != nil {
		updates["name"] = *f.Name
	}
	if f.Email != nil {
		updates["email"] = *f.Email
	}
	return updates
}
