package auth

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

type RegisterRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type RegisterForm struct {
	users validation.UserDirectory

	Name     string
	Email    string
	Password string
}

func NewRegisterForm(users validation.UserDirectory) *RegisterForm {
	return &RegisterForm{users: users}
}

func (f *RegisterForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &RegisterRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &RegisterRequest{}
	}

	v := validation.New()
	v.Field("name", request.Name, validation.Name(true)...)
	v.Field("email", request.Email, validation.EmailUnique(f.users, true)...)
	v.Field("password", request.Password, validation.Password()...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("register form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Name = *request.Name
	f.Email = *request.Email
	f.Password = *request.Password

	return f, nil
}

func (f *RegisterForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"name":  f.Name,
		"email": f.Email,
	}
}
