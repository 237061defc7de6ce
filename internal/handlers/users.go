package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"telemedicine-platform-server/internal/guard"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// UserHandler handles role-filtered user listings.
type UserHandler struct {
	Store *store.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{Store: s}
}

// GetDoctors handles fetching all users with the doctor role.
// Accessible to any authenticated user for booking appointments.
func (h *UserHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Store.UsersByRole(models.RoleDoctor)
	if err != nil {
		log.Printf("doctors listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}

	sanitized := make([]models.UserSanitized, len(doctors))
	for i, doctor := range doctors {
		sanitized[i] = doctor.Sanitize()
	}

	utils.Success(c, "Doctors fetched successfully", sanitized)
}

// GetPatients handles fetching the caller's assigned patients.
// Doctor-only, and scoped to the doctor-patient associations rather
// than every patient in the system.
func (h *UserHandler) GetPatients(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := guard.RequireDoctor(identity); err != nil {
		utils.Forbidden(c, "Only doctors can view patients")
		return
	}

	patients, err := h.Store.DoctorPatients(identity.UserID)
	if err != nil {
		log.Printf("patients listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch patients")
		return
	}

	sanitized := make([]models.UserSanitized, len(patients))
	for i, patient := range patients {
		sanitized[i] = patient.Sanitize()
	}

	utils.Success(c, "Patients fetched successfully", sanitized)
}
