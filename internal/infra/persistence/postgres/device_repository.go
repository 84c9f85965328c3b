package postgres

import (
	"context"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device with its preferences.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return translateDeviceWriteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields and preferences of an existing device.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	// Select("*") so explicit false / zero / NULL values are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(deviceM)

	if result.Error != nil {
		return translateDeviceWriteError(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its internal ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, "failed to find device by ID", repo.db.Where("id = ?", id))
}

// FindByToken retrieves the live device holding a push token.
func (repo *deviceRepository) FindByToken(ctx context.Context, token string) (*entity.Device, error) {
	return repo.findOne(ctx, "failed to find device by token", repo.db.Where("token = ?", token))
}

// FindByDeviceID retrieves the most recently updated device with a hardware identifier.
func (repo *deviceRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error) {
	return repo.findOne(ctx, "failed to find device by device ID",
		repo.db.Where("device_id = ?", deviceID).Order("updated_at DESC"))
}

func (repo *deviceRepository) findOne(ctx context.Context, msg string, query *gorm.DB) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := query.WithContext(ctx).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toDeviceDomain(&deviceM), nil
}

// DeleteByToken removes the device holding a push token (hard delete).
func (repo *deviceRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ListActive returns a page of devices with at least one notification class on.
func (repo *deviceRepository) ListActive(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id > ?", after).
		Where("enable_prayer_notifications = ? OR enable_event_notifications = ?", true, true).
		Order("id ASC").
		Limit(limit).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	device := &entity.Device{
		ID:       data.ID,
		Token:    data.Token,
		DeviceID: data.DeviceID,
		Platform: entity.Platform(data.Platform),
		Timezone: data.Timezone,
		Preferences: entity.NotificationPreferences{
			EnablePrayerNotifications: data.EnablePrayerNotifications,
			EnableEventNotifications:  data.EnableEventNotifications,
			NotifyBeforePrayer:        data.NotifyBeforePrayer,
			EnabledPrayers: entity.EnabledPrayers{
				Fajr:    data.EnabledFajr,
				Dhuhr:   data.EnabledDhuhr,
				Asr:     data.EnabledAsr,
				Maghrib: data.EnabledMaghrib,
				Isha:    data.EnabledIsha,
			},
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		device.Location = &entity.Location{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return device
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	prefs := data.Preferences
	deviceM := &model.DeviceModel{
		ID:                        data.ID,
		Token:                     data.Token,
		DeviceID:                  data.DeviceID,
		Platform:                  data.Platform.String(),
		Timezone:                  data.Timezone,
		EnablePrayerNotifications: prefs.EnablePrayerNotifications,
		EnableEventNotifications:  prefs.EnableEventNotifications,
		NotifyBeforePrayer:        prefs.NotifyBeforePrayer,
		EnabledFajr:               prefs.EnabledPrayers.Fajr,
		EnabledDhuhr:              prefs.EnabledPrayers.Dhuhr,
		EnabledAsr:                prefs.EnabledPrayers.Asr,
		EnabledMaghrib:            prefs.EnabledPrayers.Maghrib,
		EnabledIsha:               prefs.EnabledPrayers.Isha,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}

	if data.Location != nil {
		lat, lon := data.Location.Latitude, data.Location.Longitude
		deviceM.Latitude = &lat
		deviceM.Longitude = &lon
	}

	return deviceM
}
