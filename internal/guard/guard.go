// Package guard enforces per-resource access rules. Guards are pure
// functions over an explicit Identity so they can be tested without a
// request context or a real session.
package guard

import (
	"errors"

	"telemedicine-platform-server/internal/models"
)

// ErrForbidden is the sentinel wrapped by every denial.
var ErrForbidden = errors.New("forbidden")

// Identity is the authenticated caller, derived from token claims by
// the auth middleware and passed explicitly through handler calls.
type Identity struct {
	UserID string
	Role   models.Role
}

func denied(msg string) error {
	return &deniedError{msg: msg}
}

type deniedError struct {
	msg string
}

func (e *deniedError) Error() string { return e.msg }

func (e *deniedError) Unwrap() error { return ErrForbidden }

// RequireDoctor denies callers whose role is not doctor.
func RequireDoctor(id Identity) error {
	if id.Role != models.RoleDoctor {
		return denied("only doctors may perform this action")
	}
	return nil
}

// CanCreateAppointment allows doctors to book for any patient; a
// patient may only book with their own id as patientId.
func CanCreateAppointment(id Identity, patientID string) error {
	if id.Role == models.RolePatient && id.UserID != patientID {
		return denied("patients can only create appointments for themselves")
	}
	return nil
}

// CanAccessAppointment limits view/update/delete to the two identities
// referenced on the appointment.
func CanAccessAppointment(id Identity, appt *models.Appointment) error {
	if id.UserID != appt.PatientID && id.UserID != appt.DoctorID {
		return denied("not authorized to access this appointment")
	}
	return nil
}

// CanMarkMessageRead allows only the receiver to flip the read flag.
func CanMarkMessageRead(id Identity, msg *models.Message) error {
	if id.UserID != msg.ReceiverID {
		return denied("only the receiver can mark a message as read")
	}
	return nil
}

// CanAccessFile allows only the owner. The relatedTo link is a lookup
// hint, never an access grant.
func CanAccessFile(id Identity, f *models.File) error {
	if id.UserID != f.OwnerID {
		return denied("not authorized to access this file")
	}
	return nil
}
