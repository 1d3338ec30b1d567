package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	jwtlib "github.com/nt-mdc/project-management-system-backend/internal/lib/jwt"
	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/helper"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

const userKey = "currentUser"

// Authenticate gates a route group behind bearer-token auth: the token must
// parse, its jti must still be registered (logout deletes the rows) and the
// user must still exist. Handlers behind it can assume a verified identity.
func Authenticate(store *storage.Storage, secret string, log *logrus.Logger) gin.HandlerFunc {
	entry := logrus.NewEntry(log)

	return func(c *gin.Context) {
		token := helper.ExtractTokenFromHeaders(c)
		if token == "" {
			response.HandleError(response.NewUnauthenticatedError(), c)
			return
		}

		claims, err := jwtlib.Parse(token, secret)
		if err != nil {
			response.HandleError(response.NewUnauthenticatedError(), c)
			return
		}

		alive, err := store.AccessTokenAlive(claims.JTI)
		if err != nil {
			entry.WithError(err).Error("middleware: token lookup failed")
			response.HandleError(response.NewInternalError(), c)
			return
		}
		if !alive {
			response.HandleError(response.NewUnauthenticatedError(), c)
			return
		}

		user, err := store.UserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.HandleError(response.NewUnauthenticatedError(), c)
				return
			}
			entry.WithError(err).Error("middleware: user lookup failed")
			response.HandleError(response.NewInternalError(), c)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
