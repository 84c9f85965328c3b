// Package entity contains the core business objects of the project.
package entity

// PrayerName identifies one of the five daily prayers.
type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerDhuhr   PrayerName = "dhuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
)

// PrayerNames lists the prayers in canonical daily order.
var PrayerNames = []PrayerName{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// Index returns the canonical position of the prayer, or -1 when unknown.
func (p PrayerName) Index() int {
	for idx, name := range PrayerNames {
		if name == p {
			return idx
		}
	}

	return -1
}

// Title returns the display name of the prayer.
func (p PrayerName) Title() string {
	switch p {
	case PrayerFajr:
		return "Fajr"
	case PrayerDhuhr:
		return "Dhuhr"
	case PrayerAsr:
		return "Asr"
	case PrayerMaghrib:
		return "Maghrib"
	case PrayerIsha:
		return "Isha"
	default:
		return string(p)
	}
}

// DefaultNotifyBeforePrayer is the lead time applied to new devices, in minutes.
const DefaultNotifyBeforePrayer = 5

// MaxNotifyBeforePrayer bounds the lead time to one day.
const MaxNotifyBeforePrayer = 24 * 60

// EnabledPrayers toggles reminders per prayer.
type EnabledPrayers struct {
	Fajr    bool `json:"fajr"`
	Dhuhr   bool `json:"dhuhr"`
	Asr     bool `json:"asr"`
	Maghrib bool `json:"maghrib"`
	Isha    bool `json:"isha"`
}

// IsEnabled reports whether reminders are on for the prayer.
func (e EnabledPrayers) IsEnabled(name PrayerName) bool {
	switch name {
	case PrayerFajr:
		return e.Fajr
	case PrayerDhuhr:
		return e.Dhuhr
	case PrayerAsr:
		return e.Asr
	case PrayerMaghrib:
		return e.Maghrib
	case PrayerIsha:
		return e.Isha
	default:
		return false
	}
}

// NotificationPreferences are the per-device reminder settings.
type NotificationPreferences struct {
	EnablePrayerNotifications bool           `json:"enable_prayer_notifications"`
	EnableEventNotifications  bool           `json:"enable_event_notifications"`
	NotifyBeforePrayer        int            `json:"notify_before_prayer"` // Lead time in minutes.
	EnabledPrayers            EnabledPrayers `json:"enabled_prayers"`
}

// DefaultPreferences returns the settings applied at device creation.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		EnablePrayerNotifications: true,
		EnableEventNotifications:  true,
		NotifyBeforePrayer:        DefaultNotifyBeforePrayer,
		EnabledPrayers: EnabledPrayers{
			Fajr:    true,
			Dhuhr:   true,
			Asr:     true,
			Maghrib: true,
			Isha:    true,
		},
	}
}

// Allows reports whether the preferences still permit a reminder of the given kind.
func (p NotificationPreferences) Allows(kind EventKind) bool {
	if prayer, ok := kind.Prayer(); ok {
		return p.EnablePrayerNotifications && p.EnabledPrayers.IsEnabled(prayer)
	}
	if _, ok := kind.IslamicEventID(); ok {
		return p.EnableEventNotifications
	}

	return false
}

// EnabledPrayersPatch carries per-prayer toggles; nil fields keep their stored value.
type EnabledPrayersPatch struct {
	Fajr    *bool `json:"fajr,omitempty"`
	Dhuhr   *bool `json:"dhuhr,omitempty"`
	Asr     *bool `json:"asr,omitempty"`
	Maghrib *bool `json:"maghrib,omitempty"`
	Isha    *bool `json:"isha,omitempty"`
}

// PreferencesPatch is a partial preference update. A nil field is absent, which is
// distinct from an explicit false or zero.
type PreferencesPatch struct {
	EnablePrayerNotifications *bool                `json:"enable_prayer_notifications,omitempty"`
	EnableEventNotifications  *bool                `json:"enable_event_notifications,omitempty"`
	NotifyBeforePrayer        *int                 `json:"notify_before_prayer,omitempty"`
	EnabledPrayers            *EnabledPrayersPatch `json:"enabled_prayers,omitempty"`

	// Location refresh piggybacked on preference updates.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  *string  `json:"timezone,omitempty"`
}

// ApplyTo merges the patch into prefs and returns the result.
func (p *PreferencesPatch) ApplyTo(prefs NotificationPreferences) NotificationPreferences {
	if p == nil {
		return prefs
	}

	if p.EnablePrayerNotifications != nil {
		prefs.EnablePrayerNotifications = *p.EnablePrayerNotifications
	}
	if p.EnableEventNotifications != nil {
		prefs.EnableEventNotifications = *p.EnableEventNotifications
	}
	if p.NotifyBeforePrayer != nil {
		prefs.NotifyBeforePrayer = *p.NotifyBeforePrayer
	}

	if ep := p.EnabledPrayers; ep != nil {
		mergeBool(&prefs.EnabledPrayers.Fajr, ep.Fajr)
		mergeBool(&prefs.EnabledPrayers.Dhuhr, ep.Dhuhr)
		mergeBool(&prefs.EnabledPrayers.Asr, ep.Asr)
		mergeBool(&prefs.EnabledPrayers.Maghrib, ep.Maghrib)
		mergeBool(&prefs.EnabledPrayers.Isha, ep.Isha)
	}

	return prefs
}

func mergeBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
