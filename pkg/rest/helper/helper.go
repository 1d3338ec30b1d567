package helper

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractTokenFromHeaders pulls the bearer token out of the Authorization
// header. Returns "" when the header is missing or not a Bearer scheme.
func ExtractTokenFromHeaders(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
