package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/careslot/careslot-backend/internal/dto"
	"github.com/careslot/careslot-backend/internal/models"
	"github.com/careslot/careslot-backend/internal/policy"
	"github.com/careslot/careslot-backend/internal/store"
)

func patientActor() policy.Actor {
	return policy.Actor{ID: uuid.New(), Role: policy.RolePatient}
}

func doctorStore(doctorID uuid.UUID) *MockUserStore {
	return &MockUserStore{
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if id == doctorID {
				return &models.User{ID: doctorID, Name: "Dr. Gray", Role: models.RoleDoctor}, nil
			}
			return nil, store.ErrNotFound
		},
	}
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	doctorID := uuid.New()
	actor := patientActor()

	var created *models.Appointment
	appts := &MockAppointmentStore{
		CreateFunc: func(_ context.Context, a *models.Appointment) error {
			a.ID = uuid.New()
			created = a
			return nil
		},
	}
	svc := NewAppointmentService(appts, doctorStore(doctorID))

	appt, err := svc.Book(context.Background(), actor, &dto.CreateAppointmentRequest{
		DoctorID: doctorID.String(),
		Date:     "2024-05-01",
		Time:     "10:00",
		Reason:   "checkup",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, actor.ID, created.PatientID)
	assert.Equal(t, doctorID, created.DoctorID)

	assert.Len(t, appts.Events, 1)
	assert.Equal(t, models.EventAppointmentBooked, appts.Events[0].EventType)
}

func TestBookDeniedForNonPatients(t *testing.T) {
	svc := NewAppointmentService(&MockAppointmentStore{}, &MockUserStore{})

	for _, role := range []policy.Role{policy.RoleDoctor, policy.RoleAdmin} {
		_, err := svc.Book(context.Background(), policy.Actor{ID: uuid.New(), Role: role}, &dto.CreateAppointmentRequest{
			DoctorID: uuid.New().String(), Date: "2024-05-01", Time: "10:00",
		})
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}

func TestBookUnresolvableDoctor(t *testing.T) {
	patientID := uuid.New()
	users := &MockUserStore{
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if id == patientID {
				// Resolvable user, but not a doctor.
				return &models.User{ID: patientID, Role: models.RolePatient}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	svc := NewAppointmentService(&MockAppointmentStore{}, users)
	actor := patientActor()

	_, err := svc.Book(context.Background(), actor, &dto.CreateAppointmentRequest{
		DoctorID: uuid.New().String(), Date: "2024-05-01", Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = svc.Book(context.Background(), actor, &dto.CreateAppointmentRequest{
		DoctorID: patientID.String(), Date: "2024-05-01", Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = svc.Book(context.Background(), actor, &dto.CreateAppointmentRequest{
		DoctorID: "not-a-uuid", Date: "2024-05-01", Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func fixedAppointment(patientID, doctorID uuid.UUID) *models.Appointment {
	return &models.Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2024-05-01",
		Time:      "10:00",
		Status:    models.StatusPending,
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	appt := fixedAppointment(patientID, doctorID)

	appts := &MockAppointmentStore{
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
			if id == appt.ID {
				copy := *appt
				return &copy, nil
			}
			return nil, store.ErrNotFound
		},
	}
	svc := NewAppointmentService(appts, &MockUserStore{})

	// Owning doctor succeeds; the value is stored verbatim.
	updated, err := svc.UpdateStatus(context.Background(), policy.Actor{ID: doctorID, Role: policy.RoleDoctor}, appt.ID, "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	// A different doctor with a perfectly valid credential is denied.
	_, err = svc.UpdateStatus(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleDoctor}, appt.ID, "confirmed")
	assert.ErrorIs(t, err, ErrForbidden)

	// Admin may update anyone's appointment.
	_, err = svc.UpdateStatus(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleAdmin}, appt.ID, "completed")
	assert.NoError(t, err)

	// Unknown id is not found.
	_, err = svc.UpdateStatus(context.Background(), policy.Actor{ID: doctorID, Role: policy.RoleDoctor}, uuid.New(), "confirmed")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusPassesThroughArbitraryValues(t *testing.T) {
	doctorID := uuid.New()
	appt := fixedAppointment(uuid.New(), doctorID)

	var stored string
	appts := &MockAppointmentStore{
		FindByIDFunc: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
			copy := *appt
			return &copy, nil
		},
		UpdateStatusFunc: func(_ context.Context, _ uuid.UUID, status string) error {
			stored = status
			return nil
		},
	}
	svc := NewAppointmentService(appts, &MockUserStore{})

	updated, err := svc.UpdateStatus(context.Background(), policy.Actor{ID: doctorID, Role: policy.RoleDoctor}, appt.ID, "postponed-indefinitely")
	assert.NoError(t, err)
	assert.Equal(t, "postponed-indefinitely", stored)
	assert.Equal(t, "postponed-indefinitely", updated.Status)
}

func TestCancelMatrix(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	appt := fixedAppointment(patientID, doctorID)

	tests := []struct {
		name    string
		actor   policy.Actor
		wantErr error
	}{
		{"owning patient", policy.Actor{ID: patientID, Role: policy.RolePatient}, nil},
		{"foreign patient", policy.Actor{ID: uuid.New(), Role: policy.RolePatient}, ErrForbidden},
		{"owning doctor", policy.Actor{ID: doctorID, Role: policy.RoleDoctor}, ErrForbidden},
		{"admin", policy.Actor{ID: uuid.New(), Role: policy.RoleAdmin}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			appts := &MockAppointmentStore{
				FindByIDFunc: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
					copy := *appt
					return &copy, nil
				},
				DeleteFunc: func(_ context.Context, _ uuid.UUID) error {
					deleted = true
					return nil
				},
			}
			svc := NewAppointmentService(appts, &MockUserStore{})

			err := svc.Cancel(context.Background(), tt.actor, appt.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, deleted)
			} else {
				assert.NoError(t, err)
				assert.True(t, deleted)
			}
		})
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	appts := &MockAppointmentStore{
		FindByIDFunc: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewAppointmentService(appts, &MockUserStore{})

	err := svc.Cancel(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleAdmin}, uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListScopes(t *testing.T) {
	svc := NewAppointmentService(&MockAppointmentStore{}, &MockUserStore{})

	_, err := svc.ListAll(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleDoctor})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListForDoctor(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RolePatient})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListForPatient(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleDoctor})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListAll(context.Background(), policy.Actor{ID: uuid.New(), Role: policy.RoleAdmin})
	assert.NoError(t, err)
}

func TestListForDoctorQueriesOwnAppointments(t *testing.T) {
	doctorID := uuid.New()
	var queried uuid.UUID
	appts := &MockAppointmentStore{
		FindByDoctorFunc: func(_ context.Context, id uuid.UUID) ([]models.Appointment, error) {
			queried = id
			return []models.Appointment{*fixedAppointment(uuid.New(), id)}, nil
		},
	}
	svc := NewAppointmentService(appts, &MockUserStore{})

	out, err := svc.ListForDoctor(context.Background(), policy.Actor{ID: doctorID, Role: policy.RoleDoctor})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, doctorID, queried)
}
