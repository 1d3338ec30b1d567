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

type ProjectComment struct {
	log      *logrus.Entry
	store    *storage.Storage
	resolver *access.Resolver
	auth     gin.HandlerFunc
}

func NewProjectCommentHandler(store *storage.Storage, resolver *access.Resolver, log *logrus.Logger, auth gin.HandlerFunc) *ProjectComment {
	return &ProjectComment{
		log:      logrus.NewEntry(log),
		store:    store,
		resolver: resolver,
		auth:     auth,
	}
}

func (h *ProjectComment) EnrichRoutes(router *gin.Engine) {
	commentRoutes := router.Group("/api/v1/projects/:projectID/comments", h.auth)
	commentRoutes.GET("", h.indexAction)
	commentRoutes.POST("", h.storeAction)
	commentRoutes.GET("/:commentID", h.showAction)
	commentRoutes.DELETE("/:commentID", h.destroyAction)
}

func (h *ProjectComment) author(userID uint64) (*models.User, error) {
	user, err := h.store.UserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (h *ProjectComment) indexAction(c *gin.Context) {
	const op = "handlers.ProjectComment.indexAction"
	log := h.log.WithField("operation", op)
	log.Info("list project comments")

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

	detailed := make([]restmodels.ProjectCommentDetail, 0, len(comments))
	for _, comment := range comments {
		author, err := h.author(comment.UserID)
		if err != nil {
			log.WithError(err).Errorf("%s: failed to load author", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
		detailed = append(detailed, restmodels.ProjectCommentDetail{
			ProjectComment: comment,
			User:           author,
		})
	}

	c.JSON(http.StatusOK, detailed)
}

func (h *ProjectComment) storeAction(c *gin.Context) {
	const op = "handlers.ProjectComment.storeAction"
	log := h.log.WithField("operation", op)
	log.Info("create project comment")

	user := middleware.CurrentUser(c)

	project, verr := h.resolver.Project(c.Param("projectID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := commentsform.NewCreateCommentForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	comment := &models.ProjectComment{
		Content:   form.(*commentsform.CreateCommentForm).Content,
		UserID:    user.ID,
		ProjectID: project.ID,
	}
	if err := h.store.CreateProjectComment(comment); err != nil {
		log.WithError(err).Errorf("%s: failed to create comment", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *ProjectComment) showAction(c *gin.Context) {
	const op = "handlers.ProjectComment.showAction"
	h.log.WithField("operation", op).Info("show project comment")

	if _, verr := h.resolver.Project(c.Param("projectID")); verr != nil {
		response.HandleError(verr, c)
		return
	}
	comment, verr := h.resolver.ProjectComment(c.Param("commentID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	// the listing nests the author, the single show returns the bare comment
	c.JSON(http.StatusOK, comment)
}

func (h *ProjectComment) destroyAction(c *gin.Context) {
	const op = "handlers.ProjectComment.destroyAction"
	log := h.log.WithField("operation", op)
	log.Info("delete project comment")

	user := middleware.CurrentUser(c)

	if _, verr := h.resolver.Project(c.Param("projectID")); verr != nil {
		response.HandleError(verr, c)
		return
	}
	comment, verr := h.resolver.ProjectComment(c.Param("commentID"))
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	if verr := access.Check(access.CommentAuthoredBy(comment.UserID, user.ID)); verr != nil {
		response.HandleError(verr, c)
		return
	}

	if err := h.store.DeleteProjectComment(comment); err != nil {
		log.WithError(err).Errorf("%s: failed to delete comment", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.Status(http.StatusNoContent)
}
