package models

import (
	"time"
)

// DoctorPatient is the care-assignment association between a doctor
// and a patient. The composite primary key makes duplicate assignment
// a conflict, which the store swallows to keep the operation
// idempotent.
type DoctorPatient struct {
	DoctorID   string    `gorm:"primaryKey;size:36" json:"doctorId"`
	PatientID  string    `gorm:"primaryKey;size:36" json:"patientId"`
	AssignedAt time.Time `json:"assignedAt"`

	// Relations
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}
