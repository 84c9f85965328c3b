// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prayerKindPrefix = "prayer:"
	eventKindPrefix  = "islamicEvent:"
)

// EventKind identifies what a reminder is about: "prayer:<name>" or "islamicEvent:<id>".
type EventKind string

// PrayerEventKind returns the kind for a prayer reminder.
func PrayerEventKind(name PrayerName) EventKind {
	return EventKind(prayerKindPrefix + string(name))
}

// IslamicEventKind returns the kind for an Islamic-calendar reminder.
func IslamicEventKind(id string) EventKind {
	return EventKind(eventKindPrefix + id)
}

// Prayer returns the prayer name when the kind is a prayer reminder.
func (k EventKind) Prayer() (PrayerName, bool) {
	name, ok := strings.CutPrefix(string(k), prayerKindPrefix)
	if !ok || PrayerName(name).Index() < 0 {
		return "", false
	}

	return PrayerName(name), true
}

// IslamicEventID returns the catalog ID when the kind is an Islamic-event reminder.
func (k EventKind) IslamicEventID() (string, bool) {
	id, ok := strings.CutPrefix(string(k), eventKindPrefix)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// DeliveryOutcome is the state of a delivery record.
type DeliveryOutcome string

const (
	// OutcomePending marks a claimed, in-flight dispatch.
	OutcomePending DeliveryOutcome = "pending"
	// OutcomeSent marks a successful send.
	OutcomeSent DeliveryOutcome = "sent"
	// OutcomeFailed marks a failed attempt; retried while the event is not stale.
	OutcomeFailed DeliveryOutcome = "failed"
	// OutcomeSkippedStale marks an event abandoned past its staleness deadline.
	OutcomeSkippedStale DeliveryOutcome = "skipped-stale"
	// OutcomeCancelled marks an event dropped because the device went away or opted out.
	OutcomeCancelled DeliveryOutcome = "cancelled"
)

// IsTerminal reports whether no further attempt will be made.
func (o DeliveryOutcome) IsTerminal() bool {
	switch o {
	case OutcomeSent, OutcomeSkippedStale, OutcomeCancelled:
		return true
	default:
		return false
	}
}

// DeliveryKey identifies one reminder for one device on one local date.
type DeliveryKey struct {
	DeviceID uuid.UUID `json:"device_id"`
	Kind     EventKind `json:"kind"`
	Date     string    `json:"date"`
}

// DeliveryRecord is the idempotency ledger entry for a DeliveryKey.
type DeliveryRecord struct {
	ID           uuid.UUID       `json:"id"`
	DeviceID     uuid.UUID       `json:"device_id"`
	Kind         EventKind       `json:"kind"`
	Date         string          `json:"date"`
	Outcome      DeliveryOutcome `json:"outcome"`
	Attempts     int             `json:"attempts"`
	ErrorMessage string          `json:"error_message,omitempty"`
	TriggerAt    time.Time       `json:"trigger_at"`
	SentAt       *time.Time      `json:"sent_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Key returns the ledger key of the record.
func (r *DeliveryRecord) Key() DeliveryKey {
	return DeliveryKey{DeviceID: r.DeviceID, Kind: r.Kind, Date: r.Date}
}

// Blocks reports whether the record prevents another dispatch. A pending claim
// blocks until leaseCutoff passes its last update.
func (r *DeliveryRecord) Blocks(leaseCutoff time.Time) bool {
	if r.Outcome.IsTerminal() {
		return true
	}

	return r.Outcome == OutcomePending && r.UpdatedAt.After(leaseCutoff)
}

// DuePrayer describes a prayer reminder.
type DuePrayer struct {
	Name        PrayerName `json:"name"`
	Clock       string     `json:"time"`
	LeadMinutes int        `json:"lead_minutes"`
}

// DueIslamicEvent describes an Islamic-calendar reminder.
type DueIslamicEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Hijri       HijriDate `json:"hijri"`
	MonthName   string    `json:"month_name"`
}

// DueEvent is a reminder whose trigger instant has arrived and that has not been
// delivered yet. It is the unit handed from the scheduler to the dispatcher.
type DueEvent struct {
	RequestID string           `json:"request_id,omitempty"`
	DeviceID  uuid.UUID        `json:"device_id"`
	Token     string           `json:"token"`
	Kind      EventKind        `json:"kind"`
	Date      string           `json:"date"`
	TriggerAt time.Time        `json:"trigger_at"`
	Deadline  time.Time        `json:"deadline"` // Past this instant the event is stale.
	Prayer    *DuePrayer       `json:"prayer,omitempty"`
	Event     *DueIslamicEvent `json:"event,omitempty"`
}

// Key returns the ledger key of the event.
func (e *DueEvent) Key() DeliveryKey {
	return DeliveryKey{DeviceID: e.DeviceID, Kind: e.Kind, Date: e.Date}
}

// IsStale reports whether now is past the event deadline.
func (e *DueEvent) IsStale(now time.Time) bool {
	return now.After(e.Deadline)
}

// NewRecord returns a ledger record for the event in the given outcome.
func (e *DueEvent) NewRecord(outcome DeliveryOutcome, now time.Time) *DeliveryRecord {
	return &DeliveryRecord{
		ID:        uuid.New(),
		DeviceID:  e.DeviceID,
		Kind:      e.Kind,
		Date:      e.Date,
		Outcome:   outcome,
		Attempts:  1,
		TriggerAt: e.TriggerAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RetentionCutoff returns the ledger date before which records may be pruned.
func RetentionCutoff(now time.Time, retention time.Duration) string {
	return now.Add(-retention).UTC().Format(DateLayout)
}

// PushMessage is the payload handed to the notifier.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
