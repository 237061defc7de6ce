package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/guard"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// DoctorPatientHandler handles care-assignment requests.
type DoctorPatientHandler struct {
	Store *store.Store
}

// NewDoctorPatientHandler creates a new DoctorPatientHandler.
func NewDoctorPatientHandler(s *store.Store) *DoctorPatientHandler {
	return &DoctorPatientHandler{Store: s}
}

// AssignPatientRequest represents the request body for assigning a
// patient to the authenticated doctor.
type AssignPatientRequest struct {
	PatientID string `json:"patientId" binding:"required,uuid"`
}

// AssignPatient records a care assignment between the authenticated
// doctor and the given patient. Idempotent: repeating the assignment
// is a no-op, not an error.
func (h *DoctorPatientHandler) AssignPatient(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := guard.RequireDoctor(identity); err != nil {
		utils.Forbidden(c, "Only doctors can assign patients")
		return
	}

	var req AssignPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Store.GetUser(req.PatientID)
	if err != nil || patient.Role != models.RolePatient {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("assign patient: verifying patient: %v", err)
			utils.InternalServerError(c, "Failed to assign patient")
			return
		}
		utils.NotFound(c, "Patient not found")
		return
	}

	if err := h.Store.AssignPatientToDoctor(identity.UserID, req.PatientID); err != nil {
		log.Printf("assign patient: %v", err)
		utils.InternalServerError(c, "Failed to assign patient")
		return
	}

	utils.NoContent(c)
}
