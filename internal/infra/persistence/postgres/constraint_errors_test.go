package postgres

import (
	"testing"

	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDeviceWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "translated duplicate key",
			err:  gorm.ErrDuplicatedKey,
			want: repository.ErrDuplicateDevice,
		},
		{
			name: "raw unique violation",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_devices_token" (SQLSTATE 23505)`),
			want: repository.ErrDuplicateDevice,
		},
		{
			name: "not null violation",
			err:  errors.New(`ERROR: null value in column "timezone" violates not-null constraint (SQLSTATE 23502)`),
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateDeviceWriteError(tt.err, "failed to create device"), tt.want)
		})
	}
}

func TestTranslateDeviceWriteError_Unclassified(t *testing.T) {
	err := translateDeviceWriteError(errors.New("connection reset"), "failed to update device")

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.NotErrorIs(t, err, repository.ErrDuplicateDevice)
}
