package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careslot/careslot-backend/internal/models"
)

type gormAppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) AppointmentStore {
	return &gormAppointmentStore{db: db}
}

func (s *gormAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (s *gormAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").
		First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (s *gormAppointmentStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").
		Order("created_at desc").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *gormAppointmentStore) FindByDoctor(ctx context.Context, doctorID uuid.UUID) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at desc").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *gormAppointmentStore) FindByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("created_at desc").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *gormAppointmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAppointmentStore) LogEvent(ctx context.Context, event *models.AppointmentEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}
