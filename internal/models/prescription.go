package models

import (
	"time"
)

// PrescriptionStatus represents the status of a prescription
type PrescriptionStatus string

const (
	PrescriptionActive  PrescriptionStatus = "active"
	PrescriptionExpired PrescriptionStatus = "expired"
)

// Prescription represents a medication prescribed by a doctor to a
// patient. Expiry is not transitioned automatically; status must be
// set explicitly.
type Prescription struct {
	BaseModel
	PatientID      string             `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID       string             `gorm:"size:36;index;not null" json:"doctorId"`
	MedicationName string             `gorm:"size:255;not null" json:"medicationName"`
	Dosage         string             `gorm:"size:100;not null" json:"dosage"`
	Frequency      string             `gorm:"size:100;not null" json:"frequency"`
	Duration       string             `gorm:"size:100;not null" json:"duration"`
	Instructions   string             `gorm:"type:text" json:"instructions,omitempty"`
	Status         PrescriptionStatus `gorm:"size:20;default:'active'" json:"status"`
	IssuedAt       time.Time          `gorm:"index" json:"issuedAt"`
	ExpiresAt      *time.Time         `json:"expiresAt,omitempty"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
}
