package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
	projectsform "github.com/nt-mdc/project-management-system-backend/internal/rest/forms/projects"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/middleware"
	restmodels "github.com/nt-mdc/project-management-system-backend/internal/rest/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

type Project struct {
	log      *logrus.Entry
	store    *storage.Storage
	resolver *access.Resolver
	auth     gin.HandlerFunc
}

func NewProjectHandler(store *storage.Storage, resolver *access.Resolver, log *logrus.Logger, auth gin.HandlerFunc) *Project {
	return &Project{
		log:      logrus.NewEntry(log),
		store:    store,
		resolver: resolver,
		auth:     auth,
	}
}

func (h *Project) EnrichRoutes(router *gin.Engine) {
	projectRoutes := router.Group("/api/v1/projects", h.auth)
	projectRoutes.GET("", h.indexAction)
	projectRoutes.POST("", h.storeAction)
	projectRoutes.GET("/:projectID", h.showAction)
	projectRoutes.PUT("/:projectID", h.updateAction)
	projectRoutes.DELETE("/:projectID", h.destroyAction)
}

func (h *Project) indexAction(c *gin.Context) {
	const op = "handlers.Project.indexAction"
	log := h.log.WithField("operation", op)
	log.Info("list projects")

	user := middleware.CurrentUser(c)

	projects, err := h.store.ProjectsForUser(user.ID, user.Email)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list projects", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Project) storeAction(c *gin.Context) {
	const op = "handlers.Project.storeAction"
	log := h.log.WithField("operation", op)
	log.Info("create project")

	user := middleware.CurrentUser(c)

	form, verr := projectsform.NewCreateProjectForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	project := &models.Project{
		Title:       form.(*projectsform.CreateProjectForm).Title,
		Description: form.(*projectsform.CreateProjectForm).Description,
		StartAt:     form.(*projectsform.CreateProjectForm).StartAt,
		EndAt:       form.(*projectsform.CreateProjectForm).EndAt,
		Status:      models.Status(form.(*projectsform.CreateProjectForm).Status),
		UserID:      user.ID,
	}
	if err := h.store.CreateProject(project); err != nil {
		log.WithError(err).Errorf("%s: failed to create project", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *Project) showAction(c *gin.Context) {
	const op = "handlers.Project.showAction"
	log := h.log.WithField("operation", op)
	log.Info("show project")

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	comments, err := h.store.ProjectComments(project.ID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list comments", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}
	tasks, err := h.store.TasksForProject(project.ID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list tasks", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, restmodels.ProjectDetail{
		Project:  *project,
		Comments: comments,
		Tasks:    tasks,
	})
}

func (h *Project) updateAction(c *gin.Context) {
	const op = "handlers.Project.updateAction"
	log := h.log.WithField("operation", op)
	log.Info("update project")

	user := middleware.CurrentUser(c)

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(access.ProjectOwnedBy(project, user.ID)); verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := projectsform.NewUpdateProjectForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	updates := form.(*projectsform.UpdateProjectForm).ConvertToMap()
	if len(updates) > 0 {
		if err := h.store.UpdateProject(project, updates); err != nil {
			log.WithError(err).Errorf("%s: failed to update project", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
	}

	c.JSON(http.StatusOK, project)
}

func (h *Project) destroyAction(c *gin.Context) {
	const op = "handlers.Project.destroyAction"
	log := h.log.WithField("operation", op)
	log.Info("delete project")

	user := middleware.CurrentUser(c)

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(access.ProjectOwnedBy(project, user.ID)); verr != nil {
		response.HandleError(verr, c)
		return
	}

	if err := h.store.DeleteProject(project); err != nil {
		log.WithError(err).Errorf("%s: failed to delete project", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.Status(http.StatusNoContent)
}
