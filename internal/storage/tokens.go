package storage

import (
	"gorm.io/gorm/clause"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

func (s *Storage) SaveAccessToken(userID uint64, jti string) error {
	return s.db.Create(&models.AccessToken{UserID: userID, JTI: jti}).Error
}

// AccessTokenAlive reports whether the jti is still registered. A missing row
// means the token was revoked by logout.
func (s *Storage) AccessTokenAlive(jti string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.AccessToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Storage) DeleteAccessTokens(userID uint64) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

// SavePasswordReset upserts the pending reset token for the email.
func (s *Storage) SavePasswordReset(email, token string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
	}).Create(&models.PasswordReset{Email: email, Token: token}).Error
}

func (s *Storage) PasswordResetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := s.db.Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &reset, nil
}

func (s *Storage) DeletePasswordResets(email string) error {
	return s.db.Where("email = ?", email).Delete(&models.PasswordReset{}).Error
}
