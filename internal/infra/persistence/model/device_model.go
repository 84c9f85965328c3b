package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Preferences are stored inline since they are owned 1:1 by the device.
type DeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	DeviceID  string    `gorm:"type:varchar(255);not null;default:'';index"`
	Platform  string    `gorm:"type:varchar(50);not null;default:''"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	Timezone  string    `gorm:"type:varchar(64);not null"`

	EnablePrayerNotifications bool `gorm:"not null;default:true"`
	EnableEventNotifications  bool `gorm:"not null;default:true"`
	NotifyBeforePrayer        int  `gorm:"not null;default:5"`
	EnabledFajr               bool `gorm:"not null;default:true"`
	EnabledDhuhr              bool `gorm:"not null;default:true"`
	EnabledAsr                bool `gorm:"not null;default:true"`
	EnabledMaghrib            bool `gorm:"not null;default:true"`
	EnabledIsha               bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// BeforeCreate assigns a time-ordered id when the caller left it empty.
func (m *DeviceModel) BeforeCreate(*gorm.DB) error {
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
