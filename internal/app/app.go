package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nt-mdc/project-management-system-backend/internal/config"
	"github.com/nt-mdc/project-management-system-backend/internal/lib/mailer"
	"github.com/nt-mdc/project-management-system-backend/internal/rest"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
)

type App struct {
	log    *logrus.Entry
	config *config.Config
	server *http.Server

	// Done closes once the server has fully shut down.
	Done chan struct{}
}

func New(cfg *config.Config, log *logrus.Entry) (*App, error) {
	db, err := gorm.Open(sqlite.Open(cfg.StoragePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	store := storage.New(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := rest.NewRouter(log.Logger, store, cfg.Auth.Secret, cfg.Auth.TokenTTL, mailer.NewLogMailer(log.Logger))

	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.Timeout,
		WriteTimeout: cfg.HTTP.Timeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		log:    log,
		config: cfg,
		server: server,
		Done:   make(chan struct{}),
	}, nil
}

// Run starts the HTTP server and arranges a graceful shutdown on SIGINT or
// SIGTERM. It returns immediately; wait on Done for completion.
func (a *App) Run() {
	go func() {
		a.log.WithField("address", a.config.HTTP.Address).Info("HTTP server started")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Error("HTTP server failed")
		}
	}()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		a.log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.log.WithError(err).Error("shutdown failed")
		}

		close(a.Done)
	}()
}
