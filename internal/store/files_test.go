package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

func seedFile(t *testing.T, s *Store, ownerID string, kind models.FileRelationKind, relatedToID string) *models.File {
	t.Helper()

	f := &models.File{
		OwnerID:       ownerID,
		RelatedToKind: kind,
		RelatedToID:   relatedToID,
		FileName:      "file-abc.pdf",
		OriginalName:  "results.pdf",
		MimeType:      "application/pdf",
		Size:          128,
		Path:          "uploads/file-abc.pdf",
	}
	if err := s.SaveFile(f); err != nil {
		t.Fatalf("saving file: %v", err)
	}
	return f
}

func TestFilesByOwner(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")
	bob := seedUser(t, s, models.RoleDoctor, "bob@example.com")

	seedFile(t, s, alice.ID, "", "")
	seedFile(t, s, alice.ID, "", "")
	seedFile(t, s, bob.ID, "", "")

	files, err := s.FilesByOwner(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFilesByRelation(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")

	apptID := "22222222-2222-2222-2222-222222222222"
	tagged := seedFile(t, s, alice.ID, models.RelationAppointment, apptID)
	seedFile(t, s, alice.ID, models.RelationPrescription, apptID)
	seedFile(t, s, alice.ID, "", "")

	files, err := s.FilesByRelation(models.RelationAppointment, apptID)
	assert.NoError(t, err)
	if assert.Len(t, files, 1) {
		assert.Equal(t, tagged.ID, files[0].ID)
	}
}

func TestMedicalRecordsByPatientOrdered(t *testing.T) {
	s := newTestStore(t)
	doctor := seedUser(t, s, models.RoleDoctor, "doc@example.com")
	patient := seedUser(t, s, models.RolePatient, "pat@example.com")

	older := &models.MedicalRecord{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		RecordType:  models.RecordTypeDiagnosis,
		Title:       "Initial diagnosis",
		Description: "Hypertension",
	}
	newer := &models.MedicalRecord{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		RecordType:  models.RecordTypeTest,
		Title:       "Blood panel",
		Description: "Within range",
	}

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return base })
	assert.NoError(t, s.CreateMedicalRecord(older))
	s.SetClock(func() time.Time { return base.AddDate(0, 1, 0) })
	assert.NoError(t, s.CreateMedicalRecord(newer))

	records, err := s.MedicalRecordsByPatient(patient.ID)
	assert.NoError(t, err)
	if assert.Len(t, records, 2) {
		assert.Equal(t, older.ID, records[0].ID)
		assert.Equal(t, newer.ID, records[1].ID)
	}
}
