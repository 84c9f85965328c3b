// Package postgres stores the device registry and the delivery ledger in PostgreSQL through GORM.
package postgres

import (
	"context"

	"muslimapp/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) DeviceRepo() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func (f txRepositories) DeliveryRepo() repository.DeliveryRepository {
	return NewDeliveryRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, including on panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
	if err != nil {
		return errors.WithMessage(err, "transaction aborted")
	}

	return nil
}
