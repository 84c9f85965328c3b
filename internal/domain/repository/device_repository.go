// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"muslimapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a push token is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device with its preferences.
	Create(ctx context.Context, device *entity.Device) error

	// Update overwrites the mutable fields and preferences of an existing device.
	Update(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByToken retrieves the live device holding a push token.
	FindByToken(ctx context.Context, token string) (*entity.Device, error)

	// FindByDeviceID retrieves the most recently updated device with a hardware identifier.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)

	// DeleteByToken removes the device holding a push token.
	DeleteByToken(ctx context.Context, token string) error

	// ListActive returns up to limit devices with at least one notification class on,
	// ordered by ID and starting after the given cursor (uuid.Nil for the first page).
	ListActive(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Device, error)
}
