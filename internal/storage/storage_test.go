package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
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

func seedUser(t *testing.T, store *storage.Storage, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Jane Doe", Email: email, Password: "hashed"}
	require.NoError(t, store.CreateUser(user))
	return user
}

func seedProject(t *testing.T, store *storage.Storage, userID uint64) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:       "Warehouse overhaul",
		Description: "Replace the manual stock tracking with scanner-driven intake.",
		StartAt:     "2040-03-01",
		EndAt:       "2040-06-01",
		Status:      models.StatusAvailableSoon,
		UserID:      userID,
	}
	require.NoError(t, store.CreateProject(project))
	return project
}

func seedTask(t *testing.T, store *storage.Storage, userID, projectID uint64, assigned string) *models.Task {
	t.Helper()
	task := &models.Task{
		UserID:        userID,
		ProjectID:     projectID,
		Title:         "Install scanners",
		Description:   "Mount and configure the barcode scanners on every intake lane.",
		StartAt:       "2040-03-01",
		EndAt:         "2040-03-15",
		Priority:      models.PriorityMedium,
		Status:        models.StatusInProgress,
		AssignedEmail: assigned,
	}
	require.NoError(t, store.CreateTask(task))
	return task
}

func TestUserLookups(t *testing.T) {
	store := testStorage(t)
	user := seedUser(t, store, "jane@example.com")

	byID, err := store.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := store.UserByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = store.UserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	taken, err := store.EmailTaken("jane@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = store.EmailTaken("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUpdateUser(t *testing.T) {
	store := testStorage(t)
	user := seedUser(t, store, "jane@example.com")

	require.NoError(t, store.UpdateUser(user, map[string]interface{}{"name": "Jane Smith"}))

	reloaded, err := store.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", reloaded.Name)
}

func TestProjectsForUserIncludesAssignments(t *testing.T) {
	store := testStorage(t)
	owner := seedUser(t, store, "owner@example.com")
	assignee := seedUser(t, store, "assignee@example.com")

	owned := seedProject(t, store, owner.ID)
	foreign := seedProject(t, store, assignee.ID)
	unrelated := seedProject(t, store, assignee.ID)

	// a task in the foreign project is assigned to the owner
	seedTask(t, store, assignee.ID, foreign.ID, owner.Email)

	projects, err := store.ProjectsForUser(owner.ID, owner.Email)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, owned.ID, projects[0].ID)
	assert.Equal(t, foreign.ID, projects[1].ID)

	for _, p := range projects {
		assert.NotEqual(t, unrelated.ID, p.ID)
	}
}

func TestProjectsForUserDeduplicates(t *testing.T) {
	store := testStorage(t)
	owner := seedUser(t, store, "owner@example.com")

	project := seedProject(t, store, owner.ID)
	// owner is also assigned within their own project
	seedTask(t, store, owner.ID, project.ID, owner.Email)

	projects, err := store.ProjectsForUser(owner.ID, owner.Email)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestDeleteProjectCascades(t *testing.T) {
	store := testStorage(t)
	owner := seedUser(t, store, "owner@example.com")
	project := seedProject(t, store, owner.ID)
	task := seedTask(t, store, owner.ID, project.ID, owner.Email)

	require.NoError(t, store.CreateProjectComment(&models.ProjectComment{ProjectID: project.ID, UserID: owner.ID, Content: "kickoff notes"}))
	require.NoError(t, store.CreateTaskComment(&models.TaskComment{TaskID: task.ID, UserID: owner.ID, Content: "lane 3 first"}))

	require.NoError(t, store.DeleteProject(project))

	_, err := store.ProjectByID(project.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.TaskByID(task.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	projectComments, err := store.ProjectComments(project.ID)
	require.NoError(t, err)
	assert.Empty(t, projectComments)

	taskComments, err := store.TaskComments(task.ID)
	require.NoError(t, err)
	assert.Empty(t, taskComments)
}

func TestDeleteTaskCascadesComments(t *testing.T) {
	store := testStorage(t)
	owner := seedUser(t, store, "owner@example.com")
	project := seedProject(t, store, owner.ID)
	task := seedTask(t, store, owner.ID, project.ID, owner.Email)

	require.NoError(t, store.CreateTaskComment(&models.TaskComment{TaskID: task.ID, UserID: owner.ID, Content: "halfway done"}))
	require.NoError(t, store.DeleteTask(task))

	_, err := store.TaskByID(task.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	comments, err := store.TaskComments(task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestTasksAssignedTo(t *testing.T) {
	store := testStorage(t)
	owner := seedUser(t, store, "owner@example.com")
	other := seedUser(t, store, "other@example.com")
	project := seedProject(t, store, owner.ID)

	mine := seedTask(t, store, owner.ID, project.ID, other.Email)
	seedTask(t, store, owner.ID, project.ID, owner.Email)

	tasks, err := store.TasksAssignedTo(other.Email)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
}

func TestCommentListsReturnEmptySliceNotNil(t *testing.T) {
	store := testStorage(t)

	comments, err := store.ProjectComments(99)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestAccessTokenLifecycle(t *testing.T) {
	store := testStorage(t)
	user := seedUser(t, store, "jane@example.com")

	require.NoError(t, store.SaveAccessToken(user.ID, "jti-1"))
	require.NoError(t, store.SaveAccessToken(user.ID, "jti-2"))

	alive, err := store.AccessTokenAlive("jti-1")
	require.NoError(t, err)
	assert.True(t, alive)

	require.NoError(t, store.DeleteAccessTokens(user.ID))

	alive, err = store.AccessTokenAlive("jti-1")
	require.NoError(t, err)
	assert.False(t, alive)
	alive, err = store.AccessTokenAlive("jti-2")
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestPasswordResetUpsert(t *testing.T) {
	store := testStorage(t)

	require.NoError(t, store.SavePasswordReset("jane@example.com", "token-a"))
	require.NoError(t, store.SavePasswordReset("jane@example.com", "token-b"))

	_, err := store.PasswordResetByToken("token-a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	reset, err := store.PasswordResetByToken("token-b")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", reset.Email)

	require.NoError(t, store.DeletePasswordResets("jane@example.com"))
	_, err = store.PasswordResetByToken("token-b")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
