// Package memory implements the persistence layer in process memory. It backs the
// "memory" storage driver used in development and the scenario tests of the scheduler
// and dispatcher.
package memory

import (
	"context"
	"sync"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds devices and delivery records. It implements repository.RepositoryFactory.
type Store struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]*entity.Device
	records map[entity.DeliveryKey]*entity.DeliveryRecord

	txMu sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		devices: make(map[uuid.UUID]*entity.Device),
		records: make(map[entity.DeliveryKey]*entity.DeliveryRecord),
	}
}

// DeviceRepo returns a device repository over the store.
func (s *Store) DeviceRepo() repository.DeviceRepository {
	return &deviceRepository{store: s}
}

// DeliveryRepo returns a delivery repository over the store.
func (s *Store) DeliveryRepo() repository.DeliveryRepository {
	return &deliveryRepository{store: s}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager that serializes callbacks.
// Writes made before a callback fails are not rolled back.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	return fn(tm.store)
}

func cloneDevice(d *entity.Device) *entity.Device {
	if d == nil {
		return nil
	}

	cloned := *d
	if d.Location != nil {
		loc := *d.Location
		cloned.Location = &loc
	}

	return &cloned
}

func cloneRecord(r *entity.DeliveryRecord) *entity.DeliveryRecord {
	if r == nil {
		return nil
	}

	cloned := *r
	if r.SentAt != nil {
		sentAt := *r.SentAt
		cloned.SentAt = &sentAt
	}

	return &cloned
}
