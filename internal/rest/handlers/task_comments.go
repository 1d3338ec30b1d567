package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
	commentsform "github.com/nt-mdc/project-management-system-backend/internal/rest/forms/comments"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/middleware"
	restmodels "github.com/nt-mdc/project-management-system-backend/internal/rest/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

type TaskComment struct {
	log      *logrus.Entry
	store    *storage.Storage
	resolver *access.Resolver
	auth     gin.HandlerFunc
}

func NewTaskCommentHandler(store *storage.Storage, resolver *access.Resolver, log *logrus.Logger, auth gin.HandlerFunc) *TaskComment {
	return &TaskComment{
		log:      logrus.NewEntry(log),
		store:    store,
		resolver: resolver,
		auth:     auth,
	}
}

func (h *TaskComment) EnrichRoutes(router *gin.Engine) {
	commentRoutes := router.Group("/api/v1/projects/:projectID/tasks/:taskID/comments", h.auth)
	commentRoutes.GET("", h.indexAction)
	commentRoutes.POST("", h.storeAction)
	commentRoutes.GET("/:commentID", h.showAction)
	commentRoutes.DELETE("/:commentID", h.destroyAction)
}

// parents resolves the project and task from the path, keeping the outermost
// failure first.
func (h *TaskComment) parents(c *gin.Context) (*models.Project, *models.Task, response.Error) {
	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		return nil, nil, verr
	}
	task, verr := h.resolver.Task(c.Param("taskID"))
	if verr != nil {
		return nil, nil, verr
	}
	return project, task, nil
}

func (h *TaskComment) author(userID uint64) (*models.User, error) {
	user, err := h.store.UserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (h *TaskComment) indexAction(c *gin.Context) {
	const op = "handlers.TaskComment.indexAction"
	log := h.log.WithField("operation", op)
	log.Info("list task comments")

	_, task, verr := h.parents(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	comments, err := h.store.TaskComments(task.ID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list comments", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	detailed := make([]restmodels.TaskCommentDetail, 0, len(comments))
	for _, comment := range comments {
		author, err := h.author(comment.UserID)
		if err != nil {
			log.WithError(err).Errorf("%s: failed to load author", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
		detailed = append(detailed, restmodels.TaskCommentDetail{
			TaskComment: comment,
			User:        author,
		})
	}

	c.JSON(http.StatusOK, detailed)
}

func (h *TaskComment) storeAction(c *gin.Context) {
	const op = "handlers.TaskComment.storeAction"
	log := h.log.WithField("operation", op)
	log.Info("create task comment")

	user := middleware.CurrentUser(c)

	_, task, verr := h.parents(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := commentsform.NewCreateCommentForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	comment := &models.TaskComment{
		Content: form.(*commentsform.CreateCommentForm).Content,
		UserID:  user.ID,
		TaskID:  task.ID,
	}
	if err := h.store.CreateTaskComment(comment); err != nil {
		log.WithError(err).Errorf("%s: failed to create comment", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *TaskComment) showAction(c *gin.Context) {
	const op = "handlers.TaskComment.showAction"
	log := h.log.WithField("operation", op)
	log.Info("show task comment")

	if _, _, verr := h.parents(c); verr != nil {
		response.HandleError(verr, c)
		return
	}
	comment, verr := h.resolver.TaskComment(c.Param("commentID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	author, err := h.author(comment.UserID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to load author", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, restmodels.TaskCommentDetail{
		TaskComment: *comment,
		User:        author,
	})
}

func (h *TaskComment) destroyAction(c *gin.Context) {
	const op = "handlers.TaskComment.destroyAction"
	log := h.log.WithField("operation", op)
	log.Info("delete task comment")

	user := middleware.CurrentUser(c)

	if _, _, verr := h.parents(c); verr != nil {
		response.HandleError(verr, c)
		return
	}
	comment, verr := h.resolver.TaskComment(c.Param("commentID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(access.CommentAuthoredBy(comment.UserID, user.ID)); verr != nil {
		response.HandleError(verr, c)
		return
	}

	if err := h.store.DeleteTaskComment(comment); err != nil {
		log.WithError(err).Errorf("%s: failed to delete comment", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.Status(http.StatusNoContent)
}
