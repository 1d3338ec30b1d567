package storage

import (
	"gorm.io/gorm"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func (s *Storage) TaskByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &task, nil
}

func (s *Storage) TasksForProject(projectID uint64) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := s.db.Where("project_id = ?", projectID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// TasksAssignedTo lists tasks whose assigned_email matches, regardless of who
// created them or which project they belong to.
func (s *Storage) TasksAssignedTo(email string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := s.db.Where("assigned_email = ?", email).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Storage) CreateTask(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *Storage) UpdateTask(task *models.Task, updates map[string]interface{}) error {
	return s.db.Model(task).Updates(updates).Error
}

// DeleteTask removes the task and its comments in one transaction.
func (s *Storage) DeleteTask(task *models.Task) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
}
