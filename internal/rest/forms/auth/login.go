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

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginForm struct {
	users validation.UserDirectory

	Email    string
	Password string
}

func NewLoginForm(users validation.UserDirectory) *LoginForm {
	return &LoginForm{users: users}
}

func (f *LoginForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &LoginRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &LoginRequest{}
	}

	v := validation.New()
	v.Field("email", request.Email, validation.EmailExists(f.users, true)...)
	v.Field("password", request.Password, validation.Password()...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("login form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Email = *request.Email
	f.Password = *request.Password

	return f, nil
}

func (f *LoginForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"email": f.Email,
	}
}
