package comments

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

type CreateCommentRequest struct {
	Content *string `json:"content"`
}

// CreateCommentForm is shared by project and task comments; the two variants
// differ only in which parent the handler attaches.
type CreateCommentForm struct {
	Content string
}

func NewCreateCommentForm() *CreateCommentForm {
	return &CreateCommentForm{}
}

func (f *CreateCommentForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	request := &CreateCommentRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, response.NewMalformedBodyError()
		}
	}
	if request == nil {
		request = &CreateCommentRequest{}
	}

	v := validation.New()
	v.Field("content", request.Content, validation.Content()...)

	errs, err := v.Validate()
	if err != nil {
		log.WithError(err).Error("create comment form validation failed")
		return nil, response.NewInternalError()
	}
	if errs.Any() {
		return nil, response.NewValidationError(errs.Summary(), errs.Fields())
	}

	f.Content = *request.Content

	return f, nil
}

func (f *CreateCommentForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"content": f.Content,
	}
}
