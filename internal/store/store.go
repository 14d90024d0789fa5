package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// UserStore is the identity store contract.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentStore is the appointment store contract.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID uuid.UUID) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	LogEvent(ctx context.Context, event *models.AppointmentEvent) error
}
