package store

import (
	"gorm.io/gorm/clause"

	"telemedicine-platform-server/internal/models"
)

// AssignPatientToDoctor records a care assignment. Idempotent: a
// duplicate pair hits the composite primary key and is silently
// ignored.
func (s *Store) AssignPatientToDoctor(doctorID, patientID string) error {
	assignment := models.DoctorPatient{
		DoctorID:   doctorID,
		PatientID:  patientID,
		AssignedAt: s.now(),
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error
}

// DoctorPatients returns the patients assigned to the doctor.
func (s *Store) DoctorPatients(doctorID string) ([]models.User, error) {
	patients := []models.User{}
	err := s.db.Model(&models.User{}).
		Joins("INNER JOIN doctor_patients ON doctor_patients.patient_id = users.id").
		Where("doctor_patients.doctor_id = ?", doctorID).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// PatientDoctors returns the doctors a patient is assigned to.
func (s *Store) PatientDoctors(patientID string) ([]models.User, error) {
	doctors := []models.User{}
	err := s.db.Model(&models.User{}).
		Joins("INNER JOIN doctor_patients ON doctor_patients.doctor_id = users.id").
		Where("doctor_patients.patient_id = ?", patientID).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
