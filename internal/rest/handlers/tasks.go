package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
	tasksform "github.com/nt-mdc/project-management-system-backend/internal/rest/forms/tasks"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/middleware"
	restmodels "github.com/nt-mdc/project-management-system-backend/internal/rest/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

type Task struct {
	log      *logrus.Entry
	store    *storage.Storage
	resolver *access.Resolver
	auth     gin.HandlerFunc
}

func NewTaskHandler(store *storage.Storage, resolver *access.Resolver, log *logrus.Logger, auth gin.HandlerFunc) *Task {
	return &Task{
		log:      logrus.NewEntry(log),
		store:    store,
		resolver: resolver,
		auth:     auth,
	}
}

func (h *Task) EnrichRoutes(router *gin.Engine) {
	taskRoutes := router.Group("/api/v1/projects/:projectID/tasks", h.auth)
	taskRoutes.GET("", h.indexAction)
	taskRoutes.POST("", h.storeAction)
	taskRoutes.GET("/:taskID", h.showAction)
	taskRoutes.PUT("/:taskID", h.updateAction)
	taskRoutes.DELETE("/:taskID", h.destroyAction)

	router.GET("/api/v1/assigned-tasks", h.auth, h.assignedAction)
}

func (h *Task) indexAction(c *gin.Context) {
	const op = "handlers.Task.indexAction"
	log := h.log.WithField("operation", op)
	log.Info("list tasks")

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	tasks, err := h.store.TasksForProject(project.ID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list tasks", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	detailed := make([]restmodels.TaskDetail, 0, len(tasks))
	for _, task := range tasks {
		comments, err := h.store.TaskComments(task.ID)
		if err != nil {
			log.WithError(err).Errorf("%s: failed to list comments", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
		detailed = append(detailed, restmodels.TaskDetail{
			Task:     task,
			Comments: comments,
		})
	}

	c.JSON(http.StatusOK, detailed)
}

func (h *Task) storeAction(c *gin.Context) {
	const op = "handlers.Task.storeAction"
	log := h.log.WithField("operation", op)
	log.Info("create task")

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

	form, verr := tasksform.NewCreateTaskForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	task := &models.Task{
		Title:         form.(*tasksform.CreateTaskForm).Title,
		Description:   form.(*tasksform.CreateTaskForm).Description,
		StartAt:       form.(*tasksform.CreateTaskForm).StartAt,
		EndAt:         form.(*tasksform.CreateTaskForm).EndAt,
		Status:        models.Status(form.(*tasksform.CreateTaskForm).Status),
		Priority:      models.Priority(form.(*tasksform.CreateTaskForm).Priority),
		AssignedEmail: form.(*tasksform.CreateTaskForm).AssignedEmail,
		UserID:        user.ID,
		ProjectID:     project.ID,
	}
	if err := h.store.CreateTask(task); err != nil {
		log.WithError(err).Errorf("%s: failed to create task", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Task) showAction(c *gin.Context) {
	const op = "handlers.Task.showAction"
	log := h.log.WithField("operation", op)
	log.Info("show task")

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	task, verr := h.resolver.Task(c.Param("taskID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(access.TaskInProject(project, task)); verr != nil {
		response.HandleError(verr, c)
		return
	}

	comments, err := h.store.TaskComments(task.ID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list comments", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, restmodels.TaskDetail{
		Task:     *task,
		Comments: comments,
	})
}

func (h *Task) updateAction(c *gin.Context) {
	const op = "handlers.Task.updateAction"
	log := h.log.WithField("operation", op)
	log.Info("update task")

	user := middleware.CurrentUser(c)

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	task, verr := h.resolver.Task(c.Param("taskID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(
		access.ProjectOwnedBy(project, user.ID),
		access.TaskInProject(project, task),
	); verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := tasksform.NewUpdateTaskForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	updates := form.(*tasksform.UpdateTaskForm).ConvertToMap()
	if len(updates) > 0 {
		if err := h.store.UpdateTask(task, updates); err != nil {
			log.WithError(err).Errorf("%s: failed to update task", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
	}

	c.JSON(http.StatusOK, task)
}

func (h *Task) destroyAction(c *gin.Context) {
	const op = "handlers.Task.destroyAction"
	log := h.log.WithField("operation", op)
	log.Info("delete task")

	user := middleware.CurrentUser(c)

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	task, verr := h.resolver.Task(c.Param("taskID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(
		access.ProjectOwnedBy(project, user.ID),
		access.TaskInProject(project, task),
	); verr != nil {
		response.HandleError(verr, c)
		return
	}

	if err := h.store.DeleteTask(task); err != nil {
		log.WithError(err).Errorf("%s: failed to delete task", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Task) assignedAction(c *gin.Context) {
	const op = "handlers.Task.assignedAction"
	log := h.log.WithField("operation", op)
	log.Info("list assigned tasks")

	user := middleware.CurrentUser(c)

	tasks, err := h.store.TasksAssignedTo(user.Email)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list assigned tasks", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
