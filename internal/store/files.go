package store

import (
	"telemedicine-platform-server/internal/models"
)

// SaveFile inserts a new file row.
func (s *Store) SaveFile(f *models.File) error {
	return s.db.Create(f).Error
}

// GetFile fetches a file by id.
func (s *Store) GetFile(id string) (*models.File, error) {
	var f models.File
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FilesByOwner returns the owner's files ordered by upload time
// ascending.
func (s *Store) FilesByOwner(ownerID string) ([]models.File, error) {
	files := []models.File{}
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FilesByRelation returns files attached to the given entity, ordered
// by upload time ascending.
func (s *Store) FilesByRelation(kind models.FileRelationKind, relatedToID string) ([]models.File, error) {
	files := []models.File{}
	err := s.db.Where("related_to_kind = ? AND related_to_id = ?", kind, relatedToID).
		Order("created_at asc").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
