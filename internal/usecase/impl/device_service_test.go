package impl

import (
	"context"
	"testing"
	"time"

	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/infra/persistence/memory"
	mockRepo "muslimapp/internal/mocks/repository"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	txManager  *mockRepo.MockTransactionManager
	deviceRepo *mockRepo.MockDeviceRepository
	txRepo     *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	txRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewDeviceService(DeviceServiceParams{
		TxManager:  txManager,
		DeviceRepo: deviceRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		txManager:  txManager,
		deviceRepo: deviceRepo,
		txRepo:     txRepo,
	}
}

// expectTx runs the transaction callback against txRepo.
func (fx deviceServiceFixtures) expectTx(t *testing.T, times int) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().DeviceRepo().Return(fx.txRepo)

			return fn(factory)
		}).
		Times(times)
}

func createMemoryDeviceService() usecase.DeviceUsecase {
	store := memory.NewStore()

	return NewDeviceService(DeviceServiceParams{
		TxManager:  memory.NewTransactionManager(store),
		DeviceRepo: store.DeviceRepo(),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 1)

	fx.txRepo.EXPECT().FindByToken(ctx, "token-1").Return(nil, repository.ErrDeviceNotFound)
	fx.txRepo.EXPECT().FindByDeviceID(ctx, "hw-1").Return(nil, repository.ErrDeviceNotFound)
	fx.txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		Token:    "token-1",
		DeviceID: "hw-1",
		Platform: entity.PlatformAndroid,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "token-1", device.Token)
	assert.Equal(t, "Asia/Jakarta", device.Timezone)
	assert.Nil(t, device.Location)
	assert.Equal(t, entity.DefaultPreferences(), device.Preferences)
	assert.False(t, device.CreatedAt.IsZero())
}

func TestDeviceService_RegisterDevice_KnownTokenUpdatesInPlace(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 1)

	prefs := entity.DefaultPreferences()
	prefs.NotifyBeforePrayer = 15
	existing := &entity.Device{
		ID:          uuid.New(),
		Token:       "token-1",
		DeviceID:    "hw-old",
		Platform:    entity.PlatformIOS,
		Timezone:    "Asia/Makassar",
		Preferences: prefs,
		CreatedAt:   time.Now().Add(-time.Hour),
	}

	fx.txRepo.EXPECT().FindByToken(ctx, "token-1").Return(existing, nil)
	fx.txRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.ID == existing.ID && d.DeviceID == "hw-new"
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		Token:     "token-1",
		DeviceID:  "hw-new",
		Latitude:  floatPtr(-6.2),
		Longitude: floatPtr(106.8),
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "hw-new", device.DeviceID)
	assert.Equal(t, entity.PlatformIOS, device.Platform, "absent fields keep their stored value")
	assert.Equal(t, "Asia/Makassar", device.Timezone)
	assert.Equal(t, 15, device.Preferences.NotifyBeforePrayer, "preferences are not reset")
	require.NotNil(t, device.Location)
	assert.InDelta(t, -6.2, device.Location.Latitude, 1e-9)
}

func TestDeviceService_RegisterDevice_RotatesTokenOfKnownDeviceID(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 1)

	existing := &entity.Device{ID: uuid.New(), Token: "old-token", DeviceID: "hw-1", Preferences: entity.DefaultPreferences()}

	fx.txRepo.EXPECT().FindByToken(ctx, "new-token").Return(nil, repository.ErrDeviceNotFound)
	fx.txRepo.EXPECT().FindByDeviceID(ctx, "hw-1").Return(existing, nil)
	fx.txRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Token == "new-token" })).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "new-token", DeviceID: "hw-1"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-token", device.Token)
}

func TestDeviceService_RegisterDevice_RetriesDuplicateAsUpdate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 2)

	winner := &entity.Device{ID: uuid.New(), Token: "token-1", Preferences: entity.DefaultPreferences()}

	fx.txRepo.EXPECT().FindByToken(ctx, "token-1").Return(nil, repository.ErrDeviceNotFound).Once()
	fx.txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(repository.ErrDuplicateDevice).Once()
	fx.txRepo.EXPECT().FindByToken(ctx, "token-1").Return(winner, nil).Once()
	fx.txRepo.EXPECT().Update(ctx, winner).Return(nil).Once()

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, device.ID)
}

func TestDeviceService_RegisterDevice_StorageFailure(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 1)

	fx.txRepo.EXPECT().FindByToken(ctx, "token-1").Return(nil, errors.New("connection reset"))

	_, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterDeviceInput
		want  error
	}{
		{name: "missing token", input: &usecase.RegisterDeviceInput{}, want: domainerrors.ErrValidationFailed},
		{name: "blank token", input: &usecase.RegisterDeviceInput{Token: "  "}, want: domainerrors.ErrValidationFailed},
		{name: "nil input", input: nil, want: domainerrors.ErrValidationFailed},
		{
			name:  "latitude without longitude",
			input: &usecase.RegisterDeviceInput{Token: "t", Latitude: floatPtr(1)},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "out of range",
			input: &usecase.RegisterDeviceInput{Token: "t", Latitude: floatPtr(91), Longitude: floatPtr(0)},
			want:  domainerrors.ErrInvalidLocation,
		},
		{
			name:  "unknown platform",
			input: &usecase.RegisterDeviceInput{Token: "t", Platform: "windows"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown timezone",
			input: &usecase.RegisterDeviceInput{Token: "t", Timezone: "Mars/Olympus"},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeviceService_UpdatePreferences_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	fx.expectTx(t, 1)

	fx.txRepo.EXPECT().FindByToken(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.UpdatePreferences(ctx, "missing", &entity.PreferencesPatch{EnableEventNotifications: boolPtr(false)})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdatePreferences_RejectsLeadOutOfRange(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.UpdatePreferences(context.Background(), "token", &entity.PreferencesPatch{NotifyBeforePrayer: intPtr(-1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdatePreferences(context.Background(), "token", &entity.PreferencesPatch{NotifyBeforePrayer: intPtr(entity.MaxNotifyBeforePrayer + 1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_GetDeviceByToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByToken(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.GetDeviceByToken(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UnregisterDevice_SwallowsNotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().DeleteByToken(ctx, "gone").Return(repository.ErrDeviceNotFound)

	assert.NoError(t, fx.service.UnregisterDevice(ctx, "gone"))
}

func TestDeviceService_SameTokenTwiceKeepsOneDevice(t *testing.T) {
	service := createMemoryDeviceService()
	ctx := context.Background()

	first, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1", DeviceID: "hw-a"})
	require.NoError(t, err)
	second, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1", DeviceID: "hw-b"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	stored, err := service.GetDeviceByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "hw-b", stored.DeviceID)
}

func TestDeviceService_PartialEnabledPrayersUpdate(t *testing.T) {
	service := createMemoryDeviceService()
	ctx := context.Background()

	_, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1"})
	require.NoError(t, err)

	_, err = service.UpdatePreferences(ctx, "token-1", &entity.PreferencesPatch{
		EnabledPrayers: &entity.EnabledPrayersPatch{Asr: boolPtr(false)},
	})
	require.NoError(t, err)

	device, err := service.UpdatePreferences(ctx, "token-1", &entity.PreferencesPatch{
		EnabledPrayers: &entity.EnabledPrayersPatch{Fajr: boolPtr(false)},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EnabledPrayers{
		Fajr:    false,
		Dhuhr:   true,
		Asr:     false,
		Maghrib: true,
		Isha:    true,
	}, device.Preferences.EnabledPrayers)
	assert.True(t, device.Preferences.EnablePrayerNotifications)
	assert.Equal(t, entity.DefaultNotifyBeforePrayer, device.Preferences.NotifyBeforePrayer)
}

func TestDeviceService_UpdatePreferences_RefreshesLocation(t *testing.T) {
	service := createMemoryDeviceService()
	ctx := context.Background()

	_, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1"})
	require.NoError(t, err)

	tz := "Asia/Jayapura"
	device, err := service.UpdatePreferences(ctx, "token-1", &entity.PreferencesPatch{
		Latitude:  floatPtr(-2.5),
		Longitude: floatPtr(140.7),
		Timezone:  &tz,
	})
	require.NoError(t, err)

	require.True(t, device.HasLocation())
	assert.InDelta(t, 140.7, device.Location.Longitude, 1e-9)
	assert.Equal(t, "Asia/Jayapura", device.Timezone)
}

func TestDeviceService_UnregisterTwiceIsIdempotent(t *testing.T) {
	service := createMemoryDeviceService()
	ctx := context.Background()

	_, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "token-1"})
	require.NoError(t, err)

	require.NoError(t, service.UnregisterDevice(ctx, "token-1"))
	require.NoError(t, service.UnregisterDevice(ctx, "token-1"))

	_, err = service.GetDeviceByToken(ctx, "token-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
