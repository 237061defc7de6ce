package store

import (
	"telemedicine-platform-server/internal/models"
)

// CreateRefreshToken persists a refresh token row.
func (s *Store) CreateRefreshToken(token *models.RefreshToken) error {
	return s.db.Create(token).Error
}

// GetRefreshToken fetches a non-revoked refresh token by its value.
func (s *Store) GetRefreshToken(token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := s.db.Where("token = ? AND is_revoked = ?", token, false).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetActiveRefreshToken fetches a refresh token that belongs to the
// user, is not revoked, and has not expired.
func (s *Store) GetActiveRefreshToken(token, userID string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := s.db.Where("token = ? AND user_id = ? AND is_revoked = ? AND expires_at > ?",
		token, userID, false, s.now()).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// RevokeRefreshToken marks the token revoked.
func (s *Store) RevokeRefreshToken(token *models.RefreshToken) error {
	token.IsRevoked = true
	return s.db.Save(token).Error
}
