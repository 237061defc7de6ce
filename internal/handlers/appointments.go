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

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *store.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: s}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId" binding:"required,uuid"`
	DoctorID        string `json:"doctorId" binding:"required,uuid"`
	AppointmentDate string `json:"appointmentDate" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" binding:"required,datetime=15:04"`
	Type            string `json:"type" binding:"required,oneof=video in-person"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

// CreateAppointment handles creating a new appointment. A patient may
// only book for themselves; a doctor may book for any patient.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := guard.CanCreateAppointment(identity, req.PatientID); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	// Verify doctor exists and is a doctor
	doctor, err := h.Store.GetUser(req.DoctorID)
	if err != nil || doctor.Role != models.RoleDoctor {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("create appointment: verifying doctor: %v", err)
			utils.InternalServerError(c, "Failed to create appointment")
			return
		}
		utils.NotFound(c, "Doctor not found")
		return
	}

	// Verify patient exists and is a patient
	patient, err := h.Store.GetUser(req.PatientID)
	if err != nil || patient.Role != models.RolePatient {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("create appointment: verifying patient: %v", err)
			utils.InternalServerError(c, "Failed to create appointment")
			return
		}
		utils.NotFound(c, "Patient not found")
		return
	}

	appointment := models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Type:            models.AppointmentType(req.Type),
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          models.StatusScheduled,
	}

	if err := h.Store.CreateAppointment(&appointment); err != nil {
		log.Printf("create appointment: %v", err)
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching appointments for the logged-in user.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	var err error
	if identity.Role == models.RoleDoctor {
		appointments, err = h.Store.AppointmentsByDoctor(identity.UserID)
	} else {
		appointments, err = h.Store.AppointmentsByPatient(identity.UserID)
	}
	if err != nil {
		log.Printf("appointments listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetUpcomingAppointments handles fetching appointments from today at
// the current time onward.
func (h *AppointmentHandler) GetUpcomingAppointments(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	var err error
	if identity.Role == models.RoleDoctor {
		appointments, err = h.Store.UpcomingAppointmentsByDoctor(identity.UserID)
	} else {
		appointments, err = h.Store.UpcomingAppointmentsByPatient(identity.UserID)
	}
	if err != nil {
		log.Printf("upcoming appointments: %v", err)
		utils.InternalServerError(c, "Failed to fetch upcoming appointments")
		return
	}

	utils.Success(c, "Upcoming appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment. Only the
// referenced patient or doctor may view it.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Store.GetAppointment(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			log.Printf("get appointment: %v", err)
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}

	if err := guard.CanAccessAppointment(identity, appointment); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointmentRequest represents the partial update body. Only
// provided fields are merged.
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointmentDate" binding:"omitempty,datetime=2006-01-02"`
	AppointmentTime *string `json:"appointmentTime" binding:"omitempty,datetime=15:04"`
	Status          *string `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
	Type            *string `json:"type" binding:"omitempty,oneof=video in-person"`
	Reason          *string `json:"reason"`
	Notes           *string `json:"notes"`
}

// UpdateAppointment merges the provided fields into the appointment.
// Status changes must follow the transition graph.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Store.GetAppointment(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			log.Printf("update appointment: fetching: %v", err)
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}

	if err := guard.CanAccessAppointment(identity, appointment); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	fields := map[string]interface{}{}
	if req.AppointmentDate != nil {
		fields["appointment_date"] = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		fields["appointment_time"] = *req.AppointmentTime
	}
	if req.Status != nil {
		next := models.AppointmentStatus(*req.Status)
		if !appointment.CanTransitionTo(next) {
			utils.BadRequest(c, "Invalid status transition from "+string(appointment.Status)+" to "+string(next))
			return
		}
		fields["status"] = next
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := h.Store.UpdateAppointment(appointment.ID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			log.Printf("update appointment: %v", err)
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}

	utils.Success(c, "Appointment updated successfully", updated)
}

// DeleteAppointment removes an appointment outright.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Store.GetAppointment(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			log.Printf("delete appointment: fetching: %v", err)
			utils.InternalServerError(c, "Failed to delete appointment")
		}
		return
	}

	if err := guard.CanAccessAppointment(identity, appointment); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	if err := h.Store.DeleteAppointment(appointment.ID); err != nil {
		log.Printf("delete appointment: %v", err)
		utils.InternalServerError(c, "Failed to delete appointment")
		return
	}

	utils.NoContent(c)
}
