// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/qibla"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationPlan is decided once per registration from a registry lookup.
type registrationPlan int

const (
	planCreate registrationPlan = iota
	planUpdate
	planRotate
)

func (p registrationPlan) String() string {
	switch p {
	case planUpdate:
		return "update"
	case planRotate:
		return "rotate"
	default:
		return "create"
	}
}

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager       repository.TransactionManager
	deviceRepo      repository.DeviceRepository
	defaultTimezone string
	now             func() time.Time
	logger          *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:       params.TxManager,
		deviceRepo:      params.DeviceRepo,
		defaultTimezone: params.Config.Registry.DefaultTimezone,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// RegisterDevice upserts a device keyed on its push token.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	device, plan, err := srv.register(ctx, input)
	if errors.Is(err, repository.ErrDuplicateDevice) {
		// A concurrent registration inserted the token first; the second pass sees it and updates.
		srv.log(ctx).Debug("Token registered concurrently, retrying as update")
		device, plan, err = srv.register(ctx, input)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to register device", slog.String("deviceID", input.DeviceID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Device registered",
		slog.String("id", device.ID.String()),
		slog.String("plan", plan.String()),
		slog.String("platform", device.Platform.String()),
	)

	return device, nil
}

func (srv *deviceService) register(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, registrationPlan, error) {
	var (
		device *entity.Device
		plan   registrationPlan
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		var err error
		device, plan, err = srv.decidePlan(ctx, deviceRepo, input)
		if err != nil {
			return err
		}

		now := srv.now()
		if plan == planCreate {
			device = &entity.Device{
				ID:          uuid.New(),
				Preferences: entity.DefaultPreferences(),
				Timezone:    srv.defaultTimezone,
				CreatedAt:   now,
			}
		}
		device.Token = input.Token
		applyRegistration(device, input)
		device.UpdatedAt = now

		if plan == planCreate {
			return deviceRepo.Create(ctx, device)
		}
		if err := deviceRepo.Update(ctx, device); err != nil {
			return errors.Wrapf(err, "failed to %s device", plan)
		}

		return nil
	})
	if err != nil {
		return nil, plan, err
	}

	return device, plan, nil
}

func (srv *deviceService) decidePlan(ctx context.Context, deviceRepo repository.DeviceRepository, input *usecase.RegisterDeviceInput) (*entity.Device, registrationPlan, error) {
	existing, err := deviceRepo.FindByToken(ctx, input.Token)
	if err == nil {
		return existing, planUpdate, nil
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, planCreate, errors.Wrap(err, "failed to find device by token")
	}

	if input.DeviceID == "" {
		return nil, planCreate, nil
	}

	existing, err = deviceRepo.FindByDeviceID(ctx, input.DeviceID)
	switch {
	case err == nil:
		return existing, planRotate, nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return nil, planCreate, nil
	default:
		return nil, planCreate, errors.Wrap(err, "failed to find device by device ID")
	}
}

// applyRegistration overwrites the mutable fields present in input.
func applyRegistration(device *entity.Device, input *usecase.RegisterDeviceInput) {
	if input.DeviceID != "" {
		device.DeviceID = input.DeviceID
	}
	if input.Platform != "" {
		device.Platform = input.Platform
	}
	if input.Latitude != nil && input.Longitude != nil {
		device.Location = &entity.Location{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}
	if tz := strings.TrimSpace(input.Timezone); tz != "" {
		device.Timezone = tz
	}
}

// UpdatePreferences merges patch into the stored preferences of the device holding token.
func (srv *deviceService) UpdatePreferences(ctx context.Context, token string, patch *entity.PreferencesPatch) (*entity.Device, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.NewValidationError("token is required")
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		existing, err := deviceRepo.FindByToken(ctx, token)
		if err != nil {
			return err
		}

		existing.Preferences = patch.ApplyTo(existing.Preferences)
		if patch != nil {
			if patch.Latitude != nil && patch.Longitude != nil {
				existing.Location = &entity.Location{Latitude: *patch.Latitude, Longitude: *patch.Longitude}
			}
			if patch.Timezone != nil && strings.TrimSpace(*patch.Timezone) != "" {
				existing.Timezone = strings.TrimSpace(*patch.Timezone)
			}
		}
		existing.UpdatedAt = srv.now()

		if err := deviceRepo.Update(ctx, existing); err != nil {
			return err
		}
		device = existing

		return nil
	})
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update preferences", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update preferences")
	}

	srv.log(ctx).Debug("Preferences updated", slog.String("id", device.ID.String()))

	return device, nil
}

// GetDeviceByToken returns the device holding token.
func (srv *deviceService) GetDeviceByToken(ctx context.Context, token string) (*entity.Device, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.NewValidationError("token is required")
	}

	device, err := srv.deviceRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return device, nil
}

// UnregisterDevice removes the device holding token. Absent tokens succeed.
func (srv *deviceService) UnregisterDevice(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.NewValidationError("token is required")
	}

	err := srv.deviceRepo.DeleteByToken(ctx, token)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device unregistered")

	return nil
}

func validateRegistration(input *usecase.RegisterDeviceInput) error {
	if input == nil || strings.TrimSpace(input.Token) == "" {
		return domainerrors.NewValidationError("token is required")
	}
	if !input.Platform.IsValid() {
		return domainerrors.NewValidationError("unsupported platform %q", input.Platform)
	}

	return validateLocation(input.Latitude, input.Longitude, input.Timezone)
}

func validatePatch(patch *entity.PreferencesPatch) error {
	if patch == nil {
		return nil
	}
	if n := patch.NotifyBeforePrayer; n != nil && (*n < 0 || *n > entity.MaxNotifyBeforePrayer) {
		return domainerrors.NewValidationError("notify_before_prayer must be between 0 and %d", entity.MaxNotifyBeforePrayer)
	}

	tz := ""
	if patch.Timezone != nil {
		tz = *patch.Timezone
	}

	return validateLocation(patch.Latitude, patch.Longitude, tz)
}

func validateLocation(lat, lon *float64, timezone string) error {
	if (lat == nil) != (lon == nil) {
		return domainerrors.NewValidationError("latitude and longitude must be provided together")
	}
	if lat != nil {
		if err := qibla.Validate(*lat, *lon); err != nil {
			return err
		}
	}
	if tz := strings.TrimSpace(timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return domainerrors.NewValidationError("unknown timezone %q", tz)
		}
	}

	return nil
}
