package store

import (
	"telemedicine-platform-server/internal/models"
)

// CreatePrescription inserts a new prescription, stamping IssuedAt if
// the caller left it zero.
func (s *Store) CreatePrescription(p *models.Prescription) error {
	if p.IssuedAt.IsZero() {
		p.IssuedAt = s.now()
	}
	return s.db.Create(p).Error
}

// PrescriptionsByPatient returns the patient's prescriptions ordered
// by issued_at ascending.
func (s *Store) PrescriptionsByPatient(patientID string) ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("issued_at asc").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// PrescriptionsByDoctor returns the doctor's issued prescriptions
// ordered by issued_at ascending.
func (s *Store) PrescriptionsByDoctor(doctorID string) ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("issued_at asc").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// ActivePrescriptionsByPatient returns the patient's prescriptions
// whose status is still active, ordered by issued_at ascending.
func (s *Store) ActivePrescriptionsByPatient(patientID string) ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	err := s.db.Where("patient_id = ? AND status = ?", patientID, models.PrescriptionActive).
		Order("issued_at asc").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// UpdatePrescriptionStatus sets the prescription status. Expiry is not
// automatic; this is the explicit transition.
func (s *Store) UpdatePrescriptionStatus(id string, status models.PrescriptionStatus) error {
	return s.db.Model(&models.Prescription{}).Where("id = ?", id).
		Update("status", status).Error
}
