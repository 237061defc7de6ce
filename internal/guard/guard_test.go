package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

var (
	doctor  = Identity{UserID: "doc-1", Role: models.RoleDoctor}
	patient = Identity{UserID: "pat-1", Role: models.RolePatient}
)

func TestRequireDoctor(t *testing.T) {
	assert.NoError(t, RequireDoctor(doctor))

	err := RequireDoctor(patient)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCanCreateAppointment(t *testing.T) {
	assert.NoError(t, CanCreateAppointment(patient, "pat-1"))
	assert.NoError(t, CanCreateAppointment(doctor, "pat-1"))
	assert.NoError(t, CanCreateAppointment(doctor, "someone-else"))

	err := CanCreateAppointment(patient, "someone-else")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCanAccessAppointment(t *testing.T) {
	appt := &models.Appointment{PatientID: "pat-1", DoctorID: "doc-1"}

	assert.NoError(t, CanAccessAppointment(patient, appt))
	assert.NoError(t, CanAccessAppointment(doctor, appt))

	outsider := Identity{UserID: "pat-2", Role: models.RolePatient}
	assert.ErrorIs(t, CanAccessAppointment(outsider, appt), ErrForbidden)
}

func TestCanMarkMessageRead(t *testing.T) {
	msg := &models.Message{SenderID: "doc-1", ReceiverID: "pat-1"}

	assert.NoError(t, CanMarkMessageRead(patient, msg))
	assert.ErrorIs(t, CanMarkMessageRead(doctor, msg), ErrForbidden)
}

func TestCanAccessFile(t *testing.T) {
	f := &models.File{OwnerID: "pat-1", RelatedToKind: models.RelationAppointment, RelatedToID: "appt-1"}

	assert.NoError(t, CanAccessFile(patient, f))
	// The relation link never grants access to non-owners
	assert.ErrorIs(t, CanAccessFile(doctor, f), ErrForbidden)
}
