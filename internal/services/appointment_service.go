package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/dto"
	"github.com/careslot/careslot-backend/internal/models"
	"github.com/careslot/careslot-backend/internal/policy"
	"github.com/careslot/careslot-backend/internal/store"
)

var (
	ErrForbidden           = errors.New("forbidden")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentService struct {
	appts store.AppointmentStore
	users store.UserStore
}

func NewAppointmentService(appts store.AppointmentStore, users store.UserStore) *AppointmentService {
	return &AppointmentService{appts: appts, users: users}
}

// Actor builds the policy identity for an authenticated user.
func Actor(u *models.User) policy.Actor {
	return policy.Actor{ID: u.ID, Role: policy.Role(u.Role)}
}

// Book creates a pending appointment between the acting patient and the
// requested doctor. Any status supplied by the client is ignored.
func (s *AppointmentService) Book(ctx context.Context, actor policy.Actor, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if d := policy.Decide(actor, policy.ActionBook, nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	if req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrValidation)
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}
	doctor, err := s.users.FindByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	appt := &models.Appointment{
		PatientID: actor.ID,
		DoctorID:  doctor.ID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusPending,
		Reason:    req.Reason,
	}
	if err := s.appts.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.logEvent(ctx, appt.ID, models.EventAppointmentBooked, map[string]any{
		"patient_id": appt.PatientID.String(),
		"doctor_id":  appt.DoctorID.String(),
		"date":       appt.Date,
		"time":       appt.Time,
	})
	return appt, nil
}

// ListAll returns every appointment with both parties joined. Admin only.
func (s *AppointmentService) ListAll(ctx context.Context, actor policy.Actor) ([]models.Appointment, error) {
	if d := policy.Decide(actor, policy.ActionListAll, nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	return s.appts.FindAll(ctx)
}

// ListForDoctor returns the acting doctor's appointments with patients joined.
func (s *AppointmentService) ListForDoctor(ctx context.Context, actor policy.Actor) ([]models.Appointment, error) {
	if d := policy.Decide(actor, policy.ActionListAsDoctor, nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	return s.appts.FindByDoctor(ctx, actor.ID)
}

// ListForPatient returns the acting patient's appointments with doctors joined.
func (s *AppointmentService) ListForPatient(ctx context.Context, actor policy.Actor) ([]models.Appointment, error) {
	if d := policy.Decide(actor, policy.ActionListAsPatient, nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	return s.appts.FindByPatient(ctx, actor.ID)
}

// UpdateStatus sets the appointment status. The value is stored as given;
// clients have historically sent strings outside the enumerated set and
// existing data relies on that.
func (s *AppointmentService) UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, status string) (*models.Appointment, error) {
	appt, err := s.appts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	ref := &policy.Ref{PatientID: appt.PatientID, DoctorID: appt.DoctorID}
	if d := policy.Decide(actor, policy.ActionUpdateStatus, ref); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}

	if err := s.appts.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	prev := appt.Status
	appt.Status = status
	s.logEvent(ctx, appt.ID, models.EventStatusChanged, map[string]any{
		"actor_id": actor.ID.String(),
		"from":     prev,
		"to":       status,
	})
	return appt, nil
}

// Cancel deletes the appointment record.
func (s *AppointmentService) Cancel(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	appt, err := s.appts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	ref := &policy.Ref{PatientID: appt.PatientID, DoctorID: appt.DoctorID}
	if d := policy.Decide(actor, policy.ActionCancel, ref); !d.Allowed {
		return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}

	if err := s.appts.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	s.logEvent(ctx, id, models.EventAppointmentCanceled, map[string]any{
		"actor_id": actor.ID.String(),
	})
	return nil
}

// logEvent records an audit entry; failures are logged, never surfaced.
func (s *AppointmentService) logEvent(ctx context.Context, apptID uuid.UUID, eventType string, payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	ev := &models.AppointmentEvent{
		AppointmentID: apptID,
		EventType:     eventType,
		Payload:       raw,
	}
	if err := s.appts.LogEvent(ctx, ev); err != nil {
		slog.Error("failed to log appointment event", "event", eventType, "appointment_id", apptID, "error", err)
	}
}
