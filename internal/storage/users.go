package storage

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func (s *Storage) UserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &user, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &user, nil
}

// EmailTaken reports whether any user is registered under the email.
func (s *Storage) EmailTaken(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Storage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Storage) UpdateUser(user *models.User, updates map[string]interface{}) error {
	return s.db.Model(user).Updates(updates).Error
}
