package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/models"
)

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status"`
}

// PartyResponse is the identity slice exposed when the counterpart of an
// appointment is joined in: name and email, never the password.
type PartyResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AppointmentResponse struct {
	ID        uuid.UUID      `json:"id"`
	PatientID uuid.UUID      `json:"patient_id"`
	DoctorID  uuid.UUID      `json:"doctor_id"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Status    string         `json:"status"`
	Reason    string         `json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
	Patient   *PartyResponse `json:"patient,omitempty"`
	Doctor    *PartyResponse `json:"doctor,omitempty"`
}

// NewAppointmentResponse maps an appointment, joining whichever parties were
// preloaded by the store.
func NewAppointmentResponse(a *models.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    a.Status,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
	if a.Patient.ID != uuid.Nil {
		resp.Patient = &PartyResponse{Name: a.Patient.Name, Email: a.Patient.Email}
	}
	if a.Doctor.ID != uuid.Nil {
		resp.Doctor = &PartyResponse{Name: a.Doctor.Name, Email: a.Doctor.Email}
	}
	return resp
}

func NewAppointmentListResponse(appts []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appts))
	for i := range appts {
		out[i] = NewAppointmentResponse(&appts[i])
	}
	return out
}
