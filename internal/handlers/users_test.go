package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

func TestGetDoctorsListsOnlyDoctors(t *testing.T) {
	ts := newTestServer(t)
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")

	var doctors []models.UserSanitized
	w := ts.request(t, http.MethodGet, "/api/doctors", ts.token(t, patient), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dataInto(t, w, &doctors)
	if assert.Len(t, doctors, 1) {
		assert.Equal(t, doctor.ID, doctors[0].ID)
	}
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetPatientsIsDoctorOnly(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")

	w := ts.request(t, http.MethodGet, "/api/patients", ts.token(t, patient), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetPatientsScopedToAssignments(t *testing.T) {
	ts := newTestServer(t)
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")
	assigned := ts.seedUser(t, models.RolePatient, "assigned@example.com")
	ts.seedUser(t, models.RolePatient, "unassigned@example.com")
	token := ts.token(t, doctor)

	w := ts.request(t, http.MethodPost, "/api/doctor-patient/assign", token, gin.H{
		"patientId": assigned.ID,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var patients []models.UserSanitized
	w = ts.request(t, http.MethodGet, "/api/patients", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dataInto(t, w, &patients)
	if assert.Len(t, patients, 1) {
		assert.Equal(t, assigned.ID, patients[0].ID)
	}
}
