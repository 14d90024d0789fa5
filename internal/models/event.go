package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	EventAppointmentBooked   = "APPOINTMENT_BOOKED"
	EventStatusChanged       = "APPOINTMENT_STATUS_CHANGED"
	EventAppointmentCanceled = "APPOINTMENT_CANCELED"
)

// AppointmentEvent is an append-only audit record of appointment mutations.
type AppointmentEvent struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AppointmentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"appointment_id"`
	EventType     string         `gorm:"size:50;not null" json:"event_type"`
	Payload       datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}
