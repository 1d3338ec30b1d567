package access_test

import (
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
	"github.com/nt-mdc/project-management-system-backend/internal/rest/access"
	"github.com/nt-mdc/project-management-system-backend/internal/storage"
)

func testStorage(t *testing.T) *storage.Storage {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := storage.New(db)
	require.NoError(t, store.Migrate())
	return store
}

func testResolver(t *testing.T) (*access.Resolver, *storage.Storage) {
	t.Helper()
	store := testStorage(t)
	log := logrus.New()
	return access.NewResolver(store, log), store
}

func TestResolveExistingProject(t *testing.T) {
	resolver, store := testResolver(t)

	project := &models.Project{
		Title:       "Inventory migration",
		Description: "Move the inventory tables to the new cluster without downtime.",
		StartAt:     "2040-01-01",
		EndAt:       "2040-02-01",
		Status:      models.StatusInProgress,
		UserID:      1,
	}
	require.NoError(t, store.CreateProject(project))

	got, verr := resolver.Project("1")
	require.Nil(t, verr)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, project.Title, got.Title)
}

func TestResolveMissingProject(t *testing.T) {
	resolver, _ := testResolver(t)

	_, verr := resolver.Project("42")
	require.NotNil(t, verr)
	assert.Equal(t, http.StatusNotFound, verr.Status())
	assert.Equal(t, "This project does not exist", verr.Body()["message"])
}

func TestMalformedIdentifierBehavesLikeMissing(t *testing.T) {
	resolver, _ := testResolver(t)

	for _, raw := range []string{"abc", "0", "-1", "1.5", ""} {
		_, verr := resolver.Project(raw)
		require.NotNil(t, verr, "raw id %q", raw)
		assert.Equal(t, http.StatusNotFound, verr.Status())
	}
}

func TestResolveTaskAndComments(t *testing.T) {
	resolver, store := testResolver(t)

	task := &models.Task{
		UserID:        1,
		ProjectID:     1,
		Title:         "Wire up billing",
		Description:   "Connect the invoicing service to the new payment provider.",
		StartAt:       "2040-01-01",
		EndAt:         "2040-01-15",
		Priority:      models.PriorityHigh,
		Status:        models.StatusInProgress,
		AssignedEmail: "dev@example.com",
	}
	require.NoError(t, store.CreateTask(task))
	require.NoError(t, store.CreateProjectComment(&models.ProjectComment{ProjectID: 1, UserID: 1, Content: "looks good"}))
	require.NoError(t, store.CreateTaskComment(&models.TaskComment{TaskID: task.ID, UserID: 1, Content: "on it today"}))

	got, verr := resolver.Task("1")
	require.Nil(t, verr)
	assert.Equal(t, task.Title, got.Title)

	_, verr = resolver.Task("5")
	require.NotNil(t, verr)
	assert.Equal(t, "This task does not exist", verr.Body()["message"])

	comment, verr := resolver.ProjectComment("1")
	require.Nil(t, verr)
	assert.Equal(t, "looks good", comment.Content)

	_, verr = resolver.TaskComment("9")
	require.NotNil(t, verr)
	assert.Equal(t, "This comment does not exist", verr.Body()["message"])
}
