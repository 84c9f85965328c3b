package calendar

import (
	_ "embed"
	"sort"

	"muslimapp/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/pkg/errors"
)

//go:embed islamic_events.yaml
var defaultCatalogYAML []byte

// Catalog is the read-only Islamic event reference data, sorted by (month, day).
type Catalog struct {
	events []entity.IslamicEvent
}

// NewCatalog validates and sorts events into a catalog.
func NewCatalog(events []entity.IslamicEvent) (*Catalog, error) {
	seen := make(map[string]struct{}, len(events))
	sorted := make([]entity.IslamicEvent, 0, len(events))

	for _, event := range events {
		if event.ID == "" {
			return nil, errors.Errorf("event %q has no id", event.Title)
		}
		if _, dup := seen[event.ID]; dup {
			return nil, errors.Errorf("duplicate event id %q", event.ID)
		}
		if event.HijriMonth < 0 || event.HijriMonth > 11 {
			return nil, errors.Errorf("event %q: hijri month %d out of range", event.ID, event.HijriMonth)
		}
		if event.HijriDay < 1 || event.HijriDay > 30 {
			return nil, errors.Errorf("event %q: hijri day %d out of range", event.ID, event.HijriDay)
		}
		seen[event.ID] = struct{}{}
		sorted = append(sorted, event)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].HijriMonth != sorted[j].HijriMonth {
			return sorted[i].HijriMonth < sorted[j].HijriMonth
		}

		return sorted[i].HijriDay < sorted[j].HijriDay
	})

	return &Catalog{events: sorted}, nil
}

// ParseCatalog decodes a YAML document with a top-level "events" list.
func ParseCatalog(data []byte) (*Catalog, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse event catalog")
	}

	var events []entity.IslamicEvent
	if err := mapstructure.Decode(raw["events"], &events); err != nil {
		return nil, errors.Wrap(err, "decode event catalog")
	}

	return NewCatalog(events)
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}

	return catalog
}

// All returns a copy of every catalog entry in (month, day) order.
func (c *Catalog) All() []entity.IslamicEvent {
	return append([]entity.IslamicEvent(nil), c.events...)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.events)
}

// EventsOnHijriDate returns the events whose (month, day) match h exactly.
func (c *Catalog) EventsOnHijriDate(h entity.HijriDate) []entity.IslamicEvent {
	var matches []entity.IslamicEvent
	for _, event := range c.events {
		if event.HijriMonth == h.Month && event.HijriDay == h.Day {
			matches = append(matches, event)
		}
	}

	return matches
}

// UpcomingEvents returns up to limit events on or after current. Entries left in the
// current year come first; the remainder is filled by one more pass over the whole
// catalog from the start, annotated with the following year. The result may hold fewer
// than limit entries and may list an event for both years.
func (c *Catalog) UpcomingEvents(current entity.HijriDate, limit int) []entity.UpcomingEvent {
	if limit <= 0 || len(c.events) == 0 {
		return []entity.UpcomingEvent{}
	}

	upcoming := make([]entity.UpcomingEvent, 0, limit)
	for _, event := range c.events {
		if len(upcoming) == limit {
			return upcoming
		}
		eventDate := entity.HijriDate{Day: event.HijriDay, Month: event.HijriMonth}
		if eventDate.Before(current) {
			continue
		}
		upcoming = append(upcoming, entity.UpcomingEvent{IslamicEvent: event, Year: current.Year})
	}

	for _, event := range c.events {
		if len(upcoming) == limit {
			break
		}
		upcoming = append(upcoming, entity.UpcomingEvent{IslamicEvent: event, Year: current.Year + 1})
	}

	return upcoming
}
