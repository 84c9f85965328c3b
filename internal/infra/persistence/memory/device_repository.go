package memory

import (
	"bytes"
	"context"
	"slices"
	"time"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	store *Store
}

// NewDeviceRepository is the constructor for an in-memory device repository.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return store.DeviceRepo()
}

func (repo *deviceRepository) Create(_ context.Context, device *entity.Device) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokenHolder(device.Token) != nil {
		return repository.ErrDuplicateDevice
	}

	now := time.Now()
	if device.ID == uuid.Nil {
		device.ID = uuid.Must(uuid.NewV7())
	}
	if device.CreatedAt.IsZero() {
		device.CreatedAt = now
	}
	if device.UpdatedAt.IsZero() {
		device.UpdatedAt = now
	}

	s.devices[device.ID] = cloneDevice(device)

	return nil
}

func (repo *deviceRepository) Update(_ context.Context, device *entity.Device) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.devices[device.ID]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	if holder := s.tokenHolder(device.Token); holder != nil && holder.ID != device.ID {
		return repository.ErrDuplicateDevice
	}

	updated := cloneDevice(device)
	updated.CreatedAt = stored.CreatedAt
	if updated.UpdatedAt.IsZero() {
		updated.UpdatedAt = time.Now()
	}
	s.devices[device.ID] = updated

	return nil
}

func (repo *deviceRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Device, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	device, ok := s.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return cloneDevice(device), nil
}

func (repo *deviceRepository) FindByToken(_ context.Context, token string) (*entity.Device, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	device := s.tokenHolder(token)
	if device == nil {
		return nil, repository.ErrDeviceNotFound
	}

	return cloneDevice(device), nil
}

func (repo *deviceRepository) FindByDeviceID(_ context.Context, deviceID string) (*entity.Device, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *entity.Device
	for _, device := range s.devices {
		if device.DeviceID != deviceID {
			continue
		}
		if latest == nil || device.UpdatedAt.After(latest.UpdatedAt) {
			latest = device
		}
	}

	if latest == nil {
		return nil, repository.ErrDeviceNotFound
	}

	return cloneDevice(latest), nil
}

func (repo *deviceRepository) DeleteByToken(_ context.Context, token string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	device := s.tokenHolder(token)
	if device == nil {
		return repository.ErrDeviceNotFound
	}
	delete(s.devices, device.ID)

	return nil
}

func (repo *deviceRepository) ListActive(_ context.Context, after uuid.UUID, limit int) ([]*entity.Device, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make([]*entity.Device, 0, len(s.devices))
	for _, device := range s.devices {
		if !device.WantsNotifications() || bytes.Compare(device.ID[:], after[:]) <= 0 {
			continue
		}
		devices = append(devices, cloneDevice(device))
	}

	slices.SortFunc(devices, func(a, b *entity.Device) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	if limit > 0 && len(devices) > limit {
		devices = devices[:limit]
	}

	return devices, nil
}

// tokenHolder must be called with s.mu held.
func (s *Store) tokenHolder(token string) *entity.Device {
	for _, device := range s.devices {
		if device.Token == token {
			return device
		}
	}

	return nil
}
