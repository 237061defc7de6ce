package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

func TestAssignPatientRequiresDoctorRole(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")
	other := ts.seedUser(t, models.RolePatient, "other@example.com")

	w := ts.request(t, http.MethodPost, "/api/doctor-patient/assign", ts.token(t, patient), gin.H{
		"patientId": other.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssignUnknownPatient(t *testing.T) {
	ts := newTestServer(t)
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")

	w := ts.request(t, http.MethodPost, "/api/doctor-patient/assign", ts.token(t, doctor), gin.H{
		"patientId": uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignDoctorAsPatientRejected(t *testing.T) {
	ts := newTestServer(t)
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")
	colleague := ts.seedUser(t, models.RoleDoctor, "colleague@example.com")

	w := ts.request(t, http.MethodPost, "/api/doctor-patient/assign", ts.token(t, doctor), gin.H{
		"patientId": colleague.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignPatientIsIdempotent(t *testing.T) {
	ts := newTestServer(t)
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")
	token := ts.token(t, doctor)

	for i := 0; i < 2; i++ {
		w := ts.request(t, http.MethodPost, "/api/doctor-patient/assign", token, gin.H{
			"patientId": patient.ID,
		})
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	var patients []models.UserSanitized
	w := ts.request(t, http.MethodGet, "/api/patients", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dataInto(t, w, &patients)
	assert.Len(t, patients, 1)
}
