package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

// ErrNotFound is the single not-found signal the storage exposes. Callers
// never see gorm's sentinel directly.
var ErrNotFound = errors.New("record not found")

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Migrate creates or updates the schema for every entity.
func (s *Storage) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ProjectComment{},
		&models.TaskComment{},
		&models.AccessToken{},
		&models.PasswordReset{},
	)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
