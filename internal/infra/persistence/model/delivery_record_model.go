package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryRecordModel is the GORM-specific struct for the 'delivery_records' table.
// The (device_id, event_kind, event_date) unique index is the idempotency key of the dispatcher.
type DeliveryRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_delivery_records_key,priority:1"`
	EventKind    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_delivery_records_key,priority:2"`
	EventDate    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_delivery_records_key,priority:3;index"`
	Outcome      string    `gorm:"type:varchar(32);not null"`
	Attempts     int       `gorm:"not null;default:1"`
	ErrorMessage string    `gorm:"type:text;not null;default:''"`
	TriggerAt    time.Time `gorm:"not null"`
	SentAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}

// BeforeCreate assigns a time-ordered id when the caller left it empty.
func (m *DeliveryRecordModel) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
