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

type ResetPasswordRequest struct {
	Token    *string `json:"token"`
	Password *string `json:"password"`
}

type ResetPasswordForm struct {
	Token    string
	Password string
}

func NewResetPasswordForm() *ResetPasswordForm {
	return &ResetPasswordForm{}
}

func (f *ResetPasswordForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &ResetPasswordRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &ResetPasswordRequest{}
	}

	v := validation.New()
	v.Field("token", request.Token, validation.Required)
	v.Field("password", request.Password, validation.Password()...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("reset password form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Token = *request.Token
	f.Password = *request.Password

	return f, nil
}

func (f *ResetPasswordForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"token": f.Token,
	}
}
