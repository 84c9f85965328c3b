package postgres

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// ClaimRecord inserts the record, or takes over a failed or abandoned pending one.
// The conditional upsert is a single statement so concurrent dispatchers race on the
// unique index and exactly one of them observes an affected row.
func (repo *deliveryRepository) ClaimRecord(ctx context.Context, record *entity.DeliveryRecord, leaseCutoff time.Time) (bool, error) {
	recordM := fromDeliveryRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}, {Name: "event_kind"}, {Name: "event_date"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Or(
					clause.Eq{Column: clause.Column{Table: "delivery_records", Name: "outcome"}, Value: string(entity.OutcomeFailed)},
					clause.And(
						clause.Eq{Column: clause.Column{Table: "delivery_records", Name: "outcome"}, Value: string(entity.OutcomePending)},
						clause.Lt{Column: clause.Column{Table: "delivery_records", Name: "updated_at"}, Value: leaseCutoff},
					),
				),
			}},
			DoUpdates: clause.Assignments(map[string]any{
				"outcome":       recordM.Outcome,
				"attempts":      gorm.Expr("delivery_records.attempts + 1"),
				"error_message": recordM.ErrorMessage,
				"trigger_at":    recordM.TriggerAt,
				"updated_at":    recordM.UpdatedAt,
			}),
		}, clause.Returning{Columns: []clause.Column{{Name: "attempts"}}}).
		Create(recordM)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim delivery record")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	record.Attempts = recordM.Attempts

	return true, nil
}

// CompleteRecord stores the final outcome of a claimed record, fenced on the
// attempt counter the claim observed.
func (repo *deliveryRepository) CompleteRecord(ctx context.Context, record *entity.DeliveryRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryRecordModel{}).
		Where("device_id = ? AND event_kind = ? AND event_date = ?", record.DeviceID, string(record.Kind), record.Date).
		Where("outcome = ? AND attempts = ?", string(entity.OutcomePending), record.Attempts).
		Updates(map[string]any{
			"outcome":       string(record.Outcome),
			"error_message": record.ErrorMessage,
			"sent_at":       record.SentAt,
			"updated_at":    record.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete delivery record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClaimLost
	}

	return nil
}

// FindRecord retrieves the record for a key.
func (repo *deliveryRepository) FindRecord(ctx context.Context, key entity.DeliveryKey) (*entity.DeliveryRecord, error) {
	var recordM model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND event_kind = ? AND event_date = ?", key.DeviceID, string(key.Kind), key.Date).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery record")
	}

	return toDeliveryRecordDomain(&recordM), nil
}

// FindRecords retrieves all records of a device for the given local dates.
func (repo *deliveryRepository) FindRecords(ctx context.Context, deviceID uuid.UUID, dates []string) ([]*entity.DeliveryRecord, error) {
	if len(dates) == 0 {
		return []*entity.DeliveryRecord{}, nil
	}

	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND event_date IN ?", deviceID, dates).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery records")
	}

	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toDeliveryRecordDomain(recordM))
	}

	return records, nil
}

// PruneRecords deletes records dated strictly before the given local date.
func (repo *deliveryRepository) PruneRecords(ctx context.Context, before string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("event_date < ?", before).
		Delete(&model.DeliveryRecordModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune delivery records")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeliveryRecordDomain converts a GORM DeliveryRecordModel to a domain DeliveryRecord entity.
func toDeliveryRecordDomain(data *model.DeliveryRecordModel) *entity.DeliveryRecord {
	if data == nil {
		return nil
	}

	return &entity.DeliveryRecord{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Kind:         entity.EventKind(data.EventKind),
		Date:         data.EventDate,
		Outcome:      entity.DeliveryOutcome(data.Outcome),
		Attempts:     data.Attempts,
		ErrorMessage: data.ErrorMessage,
		TriggerAt:    data.TriggerAt,
		SentAt:       data.SentAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord entity to a GORM DeliveryRecordModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord) *model.DeliveryRecordModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryRecordModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		EventKind:    string(data.Kind),
		EventDate:    data.Date,
		Outcome:      string(data.Outcome),
		Attempts:     data.Attempts,
		ErrorMessage: data.ErrorMessage,
		TriggerAt:    data.TriggerAt,
		SentAt:       data.SentAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
