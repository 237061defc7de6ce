package store

import (
	"telemedicine-platform-server/internal/models"
)

// CreateMedicalRecord inserts a new medical record, stamping
// RecordDate if the caller left it zero.
func (s *Store) CreateMedicalRecord(rec *models.MedicalRecord) error {
	if rec.RecordDate.IsZero() {
		rec.RecordDate = s.now()
	}
	return s.db.Create(rec).Error
}

// MedicalRecordsByPatient returns the patient's records ordered by
// record date ascending.
func (s *Store) MedicalRecordsByPatient(patientID string) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("record_date asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
