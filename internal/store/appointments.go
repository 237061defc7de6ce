package store

import (
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// upcomingCond matches appointments strictly after today, or today at
// or after the current time. Dates are YYYY-MM-DD and times HH:MM, so
// string comparison is chronological.
const upcomingCond = "(appointment_date > ? OR (appointment_date = ? AND appointment_time >= ?))"

// CreateAppointment inserts a new appointment row.
func (s *Store) CreateAppointment(appt *models.Appointment) error {
	return s.db.Create(appt).Error
}

// GetAppointment fetches an appointment by id.
func (s *Store) GetAppointment(id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// AppointmentsByPatient returns the patient's appointments ordered by
// date then time ascending.
func (s *Store) AppointmentsByPatient(patientID string) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("appointment_date asc, appointment_time asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// AppointmentsByDoctor returns the doctor's appointments ordered by
// date then time ascending.
func (s *Store) AppointmentsByDoctor(doctorID string) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("appointment_date asc, appointment_time asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// UpcomingAppointmentsByPatient returns the patient's appointments
// with date > today, or date == today and time >= now.
func (s *Store) UpcomingAppointmentsByPatient(patientID string) ([]models.Appointment, error) {
	now := s.now()
	today, clock := now.Format(dateLayout), now.Format(timeLayout)

	appts := []models.Appointment{}
	err := s.db.Where("patient_id = ? AND "+upcomingCond, patientID, today, today, clock).
		Order("appointment_date asc, appointment_time asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// UpcomingAppointmentsByDoctor returns the doctor's appointments with
// date > today, or date == today and time >= now.
func (s *Store) UpcomingAppointmentsByDoctor(doctorID string) ([]models.Appointment, error) {
	now := s.now()
	today, clock := now.Format(dateLayout), now.Format(timeLayout)

	appts := []models.Appointment{}
	err := s.db.Where("doctor_id = ? AND "+upcomingCond, doctorID, today, today, clock).
		Order("appointment_date asc, appointment_time asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// UpdateAppointment merges only the provided fields, stamps updated_at
// and returns the updated row. Returns gorm.ErrRecordNotFound when the
// id has no backing row.
func (s *Store) UpdateAppointment(id string, fields map[string]interface{}) (*models.Appointment, error) {
	fields["updated_at"] = s.now()

	res := s.db.Model(&models.Appointment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var appt models.Appointment
	if err := s.db.First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteAppointment removes an appointment outright.
func (s *Store) DeleteAppointment(id string) error {
	return s.db.Delete(&models.Appointment{}, "id = ?", id).Error
}
