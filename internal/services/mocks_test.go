package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/models"
	"github.com/careslot/careslot-backend/internal/store"
)

// Compile-time checks that the mocks satisfy the store contracts.
var (
	_ store.UserStore        = (*MockUserStore)(nil)
	_ store.AppointmentStore = (*MockAppointmentStore)(nil)
)

type MockUserStore struct {
	CreateFunc      func(ctx context.Context, user *models.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByRoleFunc  func(ctx context.Context, role string) ([]models.User, error)
	FindAllFunc     func(ctx context.Context) ([]models.User, error)
	UpdateFunc      func(ctx context.Context, user *models.User) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserStore) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) Update(ctx context.Context, user *models.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockAppointmentStore struct {
	CreateFunc        func(ctx context.Context, appt *models.Appointment) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindAllFunc       func(ctx context.Context) ([]models.Appointment, error)
	FindByDoctorFunc  func(ctx context.Context, doctorID uuid.UUID) ([]models.Appointment, error)
	FindByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]models.Appointment, error)
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status string) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	Events []models.AppointmentEvent
}

func (m *MockAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appt)
	}
	return nil
}

func (m *MockAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentStore) FindByDoctor(ctx context.Context, doctorID uuid.UUID) ([]models.Appointment, error) {
	if m.FindByDoctorFunc != nil {
		return m.FindByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentStore) FindByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Appointment, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAppointmentStore) LogEvent(_ context.Context, event *models.AppointmentEvent) error {
	m.Events = append(m.Events, *event)
	return nil
}
