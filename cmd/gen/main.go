// Command gen regenerates the type-safe GORM query layer for the devices and
// delivery_records tables into internal/infra/persistence/postgres/query.
package main

import (
	"muslimapp/internal/infra/persistence/model"

	"gorm.io/gen"
)

// DeviceQuerier holds the registry queries the scheduler pages through.
type DeviceQuerier interface {
	// SELECT * FROM @@table
	//   WHERE (enable_prayer_notifications OR enable_event_notifications) AND id > @after
	//   ORDER BY id LIMIT @limit
	ActivePage(after string, limit int) ([]gen.T, error)
}

// LedgerQuerier holds the delivery ledger maintenance queries.
type LedgerQuerier interface {
	// DELETE FROM @@table WHERE event_date < @before
	PruneBefore(before string) (gen.RowsAffected, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.DeviceModel{}, model.DeliveryRecordModel{})
	g.ApplyInterface(func(DeviceQuerier) {}, model.DeviceModel{})
	g.ApplyInterface(func(LedgerQuerier) {}, model.DeliveryRecordModel{})

	g.Execute()
}
