package forms

import (
	"github.com/gin-gonic/gin"

	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

// Former is the contract every request form implements: parse the body,
// validate it as a whole (reporting every violated field at once) and expose
// the accepted values.
type Former interface {
	ParseAndValidate(c *gin.Context) (Former, response.Error)
	ConvertToMap() map[string]interface{}
}
