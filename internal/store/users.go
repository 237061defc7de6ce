package store

import (
	"gorm.io/gorm/clause"

	"telemedicine-platform-server/internal/models"
)

// upsertUserColumns are the columns refreshed when an upsert hits an
// existing row. Password is deliberately excluded; it only changes
// through the credential flow.
var upsertUserColumns = []string{
	"email", "first_name", "last_name", "role", "date_of_birth",
	"phone_number", "address", "profile_image", "specialty",
	"blood_type", "allergies", "updated_at",
}

// GetUser fetches a user by id. Returns gorm.ErrRecordNotFound when
// the id has no backing row.
func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user by email.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UpsertUser inserts the user if the id is absent, otherwise merges the
// profile fields and refreshes updated_at. A single conditional-insert
// statement so concurrent upserts for the same id cannot race into a
// duplicate row or lost update.
func (s *Store) UpsertUser(user *models.User) (*models.User, error) {
	user.UpdatedAt = s.now()
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(upsertUserColumns),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	var saved models.User
	if err := s.db.First(&saved, "id = ?", user.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// UsersByRole returns all users with the given role.
func (s *Store) UsersByRole(role models.Role) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
