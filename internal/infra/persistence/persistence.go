// Package persistence selects the repositories of the configured storage driver.
package persistence

import (
	"muslimapp/config"
	"muslimapp/internal/infra/persistence/memory"
	"muslimapp/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module provides DeviceRepository, DeliveryRepository and TransactionManager.
// The memory driver keeps state per process, so it suits tests and single-process runs.
func Module(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return fx.Provide(
			memory.NewStore,
			memory.NewDeviceRepository,
			memory.NewDeliveryRepository,
			memory.NewTransactionManager,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewDeviceRepository,
		postgres.NewDeliveryRepository,
		postgres.NewTransactionManager,
	)
}
