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

type ForgetPasswordRequest struct {
	Email *string `json:"email"`
}

type ForgetPasswordForm struct {
	users validation.UserDirectory

	Email string
}

func NewForgetPasswordForm(users validation.UserDirectory) *ForgetPasswordForm {
	return &ForgetPasswordForm{users: users}
}

func (f *ForgetPasswordForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &ForgetPasswordRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &ForgetPasswordRequest{}
	}

	v := validation.New()
	v.Field("email", request.Email, validation.EmailExists(f.users, true)...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("forget password form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Email = *request.Email

	return f, nil
}

func (f *ForgetPasswordForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"email": f.Email,
	}
}
