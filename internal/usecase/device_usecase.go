// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"muslimapp/internal/domain/entity"
)

// RegisterDeviceInput is the payload of a device registration. Location is optional,
// but latitude and longitude must be given together.
type RegisterDeviceInput struct {
	Token     string          `json:"token" validate:"required,max=512"`
	DeviceID  string          `json:"device_id" validate:"max=255"`
	Platform  entity.Platform `json:"platform" validate:"omitempty,oneof=ios android"`
	Latitude  *float64        `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude *float64        `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	Timezone  string          `json:"timezone" validate:"omitempty,timezone"`
}

// DeviceUsecase defines the device registry and its notification preferences.
type DeviceUsecase interface {
	// RegisterDevice upserts a device by push token. An unknown token whose device ID
	// is already registered rotates that device's token instead of creating a new one.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error)

	// UpdatePreferences merges a partial preference update into the device holding token.
	UpdatePreferences(ctx context.Context, token string, patch *entity.PreferencesPatch) (*entity.Device, error)

	// GetDeviceByToken returns the device holding token.
	GetDeviceByToken(ctx context.Context, token string) (*entity.Device, error)

	// UnregisterDevice removes the device holding token. Unknown tokens are not an error.
	UnregisterDevice(ctx context.Context, token string) error
}
