package models

import (
	"time"
)

// MedicalRecordType represents the type of medical record
type MedicalRecordType string

const (
	RecordTypeDiagnosis MedicalRecordType = "diagnosis"
	RecordTypeTest      MedicalRecordType = "test"
	RecordTypeNote      MedicalRecordType = "note"
)

// MedicalRecord represents an entry in a patient's medical history.
// Records are created by doctors and immutable through the API.
type MedicalRecord struct {
	BaseModel
	PatientID   string            `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID    string            `gorm:"size:36;index;not null" json:"doctorId"`
	RecordType  MedicalRecordType `gorm:"size:20;not null" json:"recordType"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text;not null" json:"description"`
	RecordDate  time.Time         `json:"date"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
}
