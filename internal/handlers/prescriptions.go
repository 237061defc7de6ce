package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/guard"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// PrescriptionHandler handles prescription related requests.
type PrescriptionHandler struct {
	Store *store.Store
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(s *store.Store) *PrescriptionHandler {
	return &PrescriptionHandler{Store: s}
}

// CreatePrescriptionRequest represents the request body for issuing a
// prescription. The doctor is always the authenticated user; any
// client-supplied doctorId is ignored.
type CreatePrescriptionRequest struct {
	PatientID      string `json:"patientId" binding:"required,uuid"`
	MedicationName string `json:"medicationName" binding:"required"`
	Dosage         string `json:"dosage" binding:"required"`
	Frequency      string `json:"frequency" binding:"required"`
	Duration       string `json:"duration" binding:"required"`
	Instructions   string `json:"instructions"`
	ExpiresAt      string `json:"expiresAt" binding:"omitempty,datetime=2006-01-02"`
}

// CreatePrescription handles issuing a new prescription. Doctor-only.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := guard.RequireDoctor(identity); err != nil {
		utils.Forbidden(c, "Only doctors can create prescriptions")
		return
	}

	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Verify patient exists
	if _, err := h.Store.GetUser(req.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			log.Printf("create prescription: verifying patient: %v", err)
			utils.InternalServerError(c, "Failed to create prescription")
		}
		return
	}

	prescription := models.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       identity.UserID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
		Status:         models.PrescriptionActive,
	}

	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			utils.BadRequest(c, "Invalid expiresAt format, expected YYYY-MM-DD")
			return
		}
		prescription.ExpiresAt = &expiresAt
	}

	if err := h.Store.CreatePrescription(&prescription); err != nil {
		log.Printf("create prescription: %v", err)
		utils.InternalServerError(c, "Failed to create prescription")
		return
	}

	utils.Created(c, "Prescription created successfully", prescription)
}

// GetPrescriptions handles fetching the caller's prescriptions:
// issued ones for doctors, received ones for patients.
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var prescriptions []models.Prescription
	var err error
	if identity.Role == models.RoleDoctor {
		prescriptions, err = h.Store.PrescriptionsByDoctor(identity.UserID)
	} else {
		prescriptions, err = h.Store.PrescriptionsByPatient(identity.UserID)
	}
	if err != nil {
		log.Printf("prescriptions listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch prescriptions")
		return
	}

	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}

// GetActivePrescriptions handles fetching the caller's prescriptions
// whose status is still active.
func (h *PrescriptionHandler) GetActivePrescriptions(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	prescriptions, err := h.Store.ActivePrescriptionsByPatient(identity.UserID)
	if err != nil {
		log.Printf("active prescriptions: %v", err)
		utils.InternalServerError(c, "Failed to fetch active prescriptions")
		return
	}

	utils.Success(c, "Active prescriptions fetched successfully", prescriptions)
}
