package memory

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/repository"

	"github.com/google/uuid"
)

type deliveryRepository struct {
	store *Store
}

// NewDeliveryRepository is the constructor for an in-memory delivery repository.
func NewDeliveryRepository(store *Store) repository.DeliveryRepository {
	return store.DeliveryRepo()
}

func (repo *deliveryRepository) ClaimRecord(_ context.Context, record *entity.DeliveryRecord, leaseCutoff time.Time) (bool, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := record.Key()
	existing, ok := s.records[key]
	if !ok {
		if record.ID == uuid.Nil {
			record.ID = uuid.Must(uuid.NewV7())
		}
		s.records[key] = cloneRecord(record)

		return true, nil
	}

	takeover := existing.Outcome == entity.OutcomeFailed ||
		(existing.Outcome == entity.OutcomePending && existing.UpdatedAt.Before(leaseCutoff))
	if !takeover {
		return false, nil
	}

	existing.Outcome = record.Outcome
	existing.Attempts++
	existing.ErrorMessage = record.ErrorMessage
	existing.TriggerAt = record.TriggerAt
	existing.UpdatedAt = record.UpdatedAt
	record.Attempts = existing.Attempts

	return true, nil
}

func (repo *deliveryRepository) CompleteRecord(_ context.Context, record *entity.DeliveryRecord) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.Key()]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if existing.Outcome != entity.OutcomePending || existing.Attempts != record.Attempts {
		return repository.ErrClaimLost
	}

	existing.Outcome = record.Outcome
	existing.ErrorMessage = record.ErrorMessage
	existing.SentAt = record.SentAt
	existing.UpdatedAt = record.UpdatedAt

	return nil
}

func (repo *deliveryRepository) FindRecord(_ context.Context, key entity.DeliveryKey) (*entity.DeliveryRecord, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return cloneRecord(record), nil
}

func (repo *deliveryRepository) FindRecords(_ context.Context, deviceID uuid.UUID, dates []string) ([]*entity.DeliveryRecord, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		wanted[date] = struct{}{}
	}

	records := make([]*entity.DeliveryRecord, 0)
	for key, record := range s.records {
		if key.DeviceID != deviceID {
			continue
		}
		if _, ok := wanted[key.Date]; ok {
			records = append(records, cloneRecord(record))
		}
	}

	return records, nil
}

func (repo *deliveryRepository) PruneRecords(_ context.Context, before string) (int64, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned int64
	for key := range s.records {
		// DateLayout sorts lexically.
		if key.Date < before {
			delete(s.records, key)
			pruned++
		}
	}

	return pruned, nil
}
