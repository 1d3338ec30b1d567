package storage

import (
	"gorm.io/gorm"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func (s *Storage) ProjectByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &project, nil
}

// ProjectsForUser lists projects the user created plus projects holding a task
// assigned to the user's email, deduplicated and ordered by id.
func (s *Storage) ProjectsForUser(userID uint64, email string) ([]models.Project, error) {
	assigned := s.db.Model(&models.Task{}).
		Distinct("project_id").
		Where("assigned_email = ?", email)

	projects := make([]models.Project, 0)
	err := s.db.
		Where("user_id = ? OR id IN (?)", userID, assigned).
		Order("id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Storage) CreateProject(project *models.Project) error {
	return s.db.Create(project).Error
}

func (s *Storage) UpdateProject(project *models.Project, updates map[string]interface{}) error {
	return s.db.Model(project).Updates(updates).Error
}

// DeleteProject removes the project together with its tasks, the tasks'
// comments and the project's own comments, in one transaction.
func (s *Storage) DeleteProject(project *models.Project) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).
			Select("id").
			Where("project_id = ?", project.ID)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}
