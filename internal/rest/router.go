package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/lib/mailer"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/handlers"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/middleware"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
)

// NewRouter assembles the gin engine with every handler's routes attached.
func NewRouter(log *logrus.Logger, store *storage.Storage, secret string, tokenTTL time.Duration, mail mailer.Mailer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	auth := middleware.Authenticate(store, secret, log)
	resolver := access.NewResolver(store, log)

	handlers.NewUserHandler(store, log, auth, mail, secret, tokenTTL).EnrichRoutes(router)
	handlers.NewProjectHandler(store, resolver, log, auth).EnrichRoutes(router)
	handlers.NewTaskHandler(store, resolver, log, auth).EnrichRoutes(router)
	handlers.NewProjectCommentHandler(store, resolver, log, auth).EnrichRoutes(router)
	handlers.NewTaskCommentHandler(store, resolver, log, auth).EnrichRoutes(router)

	return router
}
