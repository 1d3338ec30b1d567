package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	jwtlib "github.com/nt-mdc/project-management-system-backend/internal/lib/jwt"
	"github.com/nt-mdc/project-management-system-backend/internal/lib/mailer"
	"github.com/nt-mdc/project-management-system-backend/internal/models"
	authform "github.com/nt-mdc/project-management-system-backend/internal/rest/forms/auth"
	usersform "github.com/nt-mdc/project-management-system-backend/internal/rest/forms/users"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/middleware"
	restmodels "github.com/nt-mdc/project-management-system-backend/internal/rest/models"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
	"github.com/nt-mdc/project-management-system-backend/pkg/rest/response"
)

type User struct {
	log      *logrus.Entry
	store    *storage.Storage
	auth     gin.HandlerFunc
	mail     mailer.Mailer
	secret   string
	tokenTTL time.Duration
}

func NewUserHandler(store *storage.Storage, log *logrus.Logger, auth gin.HandlerFunc, mail mailer.Mailer, secret string, tokenTTL time.Duration) *User {
	return &User{
		log:      logrus.NewEntry(log),
		store:    store,
		auth:     auth,
		mail:     mail,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (h *User) EnrichRoutes(router *gin.Engine) {
	authRoutes := router.Group("/api/auth")
	authRoutes.POST("/register", h.registerAction)
	authRoutes.POST("/login", h.loginAction)
	authRoutes.DELETE("/logout", h.auth, h.logoutAction)
	authRoutes.POST("/password/email", h.forgetPasswordAction)
	authRoutes.POST("/password/reset", h.resetPasswordAction)

	userRoutes := router.Group("/api/v1/user", h.auth)
	userRoutes.GET("/profile", h.profileAction)
	userRoutes.PUT("/update", h.updateUserAction)
}

func (h *User) registerAction(c *gin.Context) {
	const op = "handlers.User.registerAction"
	log := h.log.WithField("operation", op)
	log.Info("register user")

	form, verr := authform.NewRegisterForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.(*authform.RegisterForm).Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to hash password", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	user := &models.User{
		Name:     form.(*authform.RegisterForm).Name,
		Email:    form.(*authform.RegisterForm).Email,
		Password: string(hash),
	}
	if err := h.store.CreateUser(user); err != nil {
		log.WithError(err).Errorf("%s: failed to create user", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusCreated, restmodels.RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

func (h *User) loginAction(c *gin.Context) {
	const op = "handlers.User.loginAction"
	log := h.log.WithField("operation", op)
	log.Info("login user")

	form, verr := authform.NewLoginForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	user, err := h.store.UserByEmail(form.(*authform.LoginForm).Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.HandleError(response.NewInvalidCredentialsError(), c)
			return
		}
		log.WithError(err).Errorf("%s: failed to load user", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.(*authform.LoginForm).Password)); err != nil {
		response.HandleError(response.NewInvalidCredentialsError(), c)
		return
	}

	token, jti, err := jwtlib.NewToken(user, h.secret, h.tokenTTL)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to mint token", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}
	if err := h.store.SaveAccessToken(user.ID, jti); err != nil {
		log.WithError(err).Errorf("%s: failed to persist token", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, restmodels.LoginResponse{
		Message: "Login successful",
		Token: restmodels.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		},
		User: user,
	})
}

func (h *User) logoutAction(c *gin.Context) {
	const op = "handlers.User.logoutAction"
	log := h.log.WithField("operation", op)
	log.Info("logout user")

	user := middleware.CurrentUser(c)

	if err := h.store.DeleteAccessTokens(user.ID); err != nil {
		log.WithError(err).Errorf("%s: failed to delete tokens", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *User) forgetPasswordAction(c *gin.Context) {
	const op = "handlers.User.forgetPasswordAction"
	log := h.log.WithField("operation", op)
	log.Info("request password reset")

	form, verr := authform.NewForgetPasswordForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}
	email := form.(*authform.ForgetPasswordForm).Email

	token := uuid.NewString()
	if err := h.store.SavePasswordReset(email, token); err != nil {
		log.WithError(err).Errorf("%s: failed to persist reset token", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	url := "http://" + c.Request.Host + "/reset-password?token=" + token
	if err := h.mail.SendPasswordReset(email, url); err != nil {
		log.WithError(err).Errorf("%s: failed to hand off reset mail", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Please check your mail to reset your password"})
}

func (h *User) resetPasswordAction(c *gin.Context) {
	const op = "handlers.User.resetPasswordAction"
	log := h.log.WithField("operation", op)
	log.Info("reset password")

	form, verr := authform.NewResetPasswordForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	reset, err := h.store.PasswordResetByToken(form.(*authform.ResetPasswordForm).Token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.HandleError(response.NewValidationError(
				"The selected token is invalid.",
				map[string][]string{"token": {"The selected token is invalid."}},
			), c)
			return
		}
		log.WithError(err).Errorf("%s: failed to load reset token", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	user, err := h.store.UserByEmail(reset.Email)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to load user", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.(*authform.ResetPasswordForm).Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to hash password", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	if err := h.store.UpdateUser(user, map[string]interface{}{"password": string(hash)}); err != nil {
		log.WithError(err).Errorf("%s: failed to update password", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}
	if err := h.store.DeletePasswordResets(user.Email); err != nil {
		log.WithError(err).Errorf("%s: failed to drop reset tokens", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your password has been reset successfully."})
}

func (h *User) profileAction(c *gin.Context) {
	const op = "handlers.User.profileAction"
	h.log.WithField("operation", op).Info("show profile")

	c.JSON(http.StatusOK, restmodels.Profile{User: middleware.CurrentUser(c)})
}

func (h *User) updateUserAction(c *gin.Context) {
	const op = "handlers.User.updateUserAction"
	log := h.log.WithField("operation", op)
	log.Info("update user")

	user := middleware.CurrentUser(c)

	form, verr := usersform.NewUpdateUserForm(h.store).ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	updates := form.(*usersform.UpdateUserForm).ConvertToMap()
	if len(updates) > 0 {
		if err := h.store.UpdateUser(user, updates); err != nil {
			log.WithError(err).Errorf("%s: failed to update user", op)
			response.HandleError(response.NewInternalError(), c)
			return
		}
	}

	c.JSON(http.StatusOK, user)
}
