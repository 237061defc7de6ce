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

// MedicalRecordHandler handles medical record related requests.
type MedicalRecordHandler struct {
	Store *store.Store
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(s *store.Store) *MedicalRecordHandler {
	return &MedicalRecordHandler{Store: s}
}

// CreateMedicalRecordRequest represents the request body for creating
// a medical record. The doctor is always the authenticated user and
// the record date is stamped server-side.
type CreateMedicalRecordRequest struct {
	PatientID   string `json:"patientId" binding:"required,uuid"`
	RecordType  string `json:"recordType" binding:"required,oneof=diagnosis test note"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateMedicalRecord handles creating a new medical record. Doctor-only.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := guard.RequireDoctor(identity); err != nil {
		utils.Forbidden(c, "Only doctors can create medical records")
		return
	}

	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Verify patient exists
	if _, err := h.Store.GetUser(req.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			log.Printf("create medical record: verifying patient: %v", err)
			utils.InternalServerError(c, "Failed to create medical record")
		}
		return
	}

	record := models.MedicalRecord{
		PatientID:   req.PatientID,
		DoctorID:    identity.UserID,
		RecordType:  models.MedicalRecordType(req.RecordType),
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.Store.CreateMedicalRecord(&record); err != nil {
		log.Printf("create medical record: %v", err)
		utils.InternalServerError(c, "Failed to create medical record")
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}

// GetMedicalRecords handles fetching medical records. Patients see
// their own; doctors must name a patient explicitly via ?patientId=.
func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patientID := identity.UserID
	if identity.Role == models.RoleDoctor {
		patientID = c.Query("patientId")
		if patientID == "" {
			utils.BadRequest(c, "Patient ID is required")
			return
		}
	}

	records, err := h.Store.MedicalRecordsByPatient(patientID)
	if err != nil {
		log.Printf("medical records listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch medical records")
		return
	}

	utils.Success(c, "Medical records fetched successfully", records)
}
