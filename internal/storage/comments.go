package storage

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func (s *Storage) ProjectCommentByID(id uint64) (*models.ProjectComment, error) {
	var comment models.ProjectComment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &comment, nil
}

func (s *Storage) TaskCommentByID(id uint64) (*models.TaskComment, error) {
	var comment models.TaskComment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &comment, nil
}

func (s *Storage) ProjectComments(projectID uint64) ([]models.ProjectComment, error) {
	comments := make([]models.ProjectComment, 0)
	if err := s.db.Where("project_id = ?", projectID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Storage) TaskComments(taskID uint64) ([]models.TaskComment, error) {
	comments := make([]models.TaskComment, 0)
	if err := s.db.Where("task_id = ?", taskID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Storage) CreateProjectComment(comment *models.ProjectComment) error {
	return s.db.Create(comment).Error
}

func (s *Storage) CreateTaskComment(comment *models.TaskComment) error {
	return s.db.Create(comment).Error
}

func (s *Storage) DeleteProjectComment(comment *models.ProjectComment) error {
	return s.db.Delete(comment).Error
}

func (s *Storage) DeleteTaskComment(comment *models.TaskComment) error {
	return s.db.Delete(comment).Error
}
