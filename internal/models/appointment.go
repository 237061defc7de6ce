package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AppointmentType represents how the appointment is conducted
type AppointmentType string

const (
	TypeVideo    AppointmentType = "video"
	TypeInPerson AppointmentType = "in-person"
)

// Appointment represents a scheduled medical appointment.
// AppointmentDate is YYYY-MM-DD and AppointmentTime is HH:MM so the
// upcoming-window comparison works lexicographically on every dialect.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctorId"`
	AppointmentDate string            `gorm:"size:10;not null;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:5;not null" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Type            AppointmentType   `gorm:"size:20;not null" json:"type"`
	Reason          string            `gorm:"size:255" json:"reason"`
	Notes           string            `gorm:"type:text" json:"notes"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
}

// CanTransitionTo reports whether moving the appointment to the given
// status is a legal transition. Writing the current status back is a
// no-op and always allowed; completed and cancelled are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if next == a.Status {
		return true
	}
	switch a.Status {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
