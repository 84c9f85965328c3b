package repository

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when no delivery record exists for a key.
var ErrRecordNotFound = errors.New("delivery record not found")

// ErrClaimLost is returned when a record was taken over by another claim.
var ErrClaimLost = errors.New("delivery claim lost")

// DeliveryRepository is the idempotency ledger for reminders.
type DeliveryRepository interface {
	// ClaimRecord inserts the record if its key is absent. An existing record is
	// replaced only when it is failed, or pending with an UpdatedAt before leaseCutoff;
	// its attempt counter is then incremented and copied into record.Attempts.
	// Returns false when the claim is lost.
	ClaimRecord(ctx context.Context, record *entity.DeliveryRecord, leaseCutoff time.Time) (bool, error)

	// CompleteRecord stores the final outcome of a claimed record. The write only
	// applies while the stored record is pending with the same Attempts; otherwise
	// it returns ErrClaimLost.
	CompleteRecord(ctx context.Context, record *entity.DeliveryRecord) error

	// FindRecord retrieves the record for a key.
	FindRecord(ctx context.Context, key entity.DeliveryKey) (*entity.DeliveryRecord, error)

	// FindRecords retrieves all records of a device for the given local dates.
	FindRecords(ctx context.Context, deviceID uuid.UUID, dates []string) ([]*entity.DeliveryRecord, error)

	// PruneRecords deletes records dated strictly before the given local date.
	PruneRecords(ctx context.Context, before string) (int64, error)
}
