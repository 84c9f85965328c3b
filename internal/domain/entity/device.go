// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform represents the operating system of a registered device.
type Platform string

const (
	// PlatformIOS indicates an Apple device.
	PlatformIOS Platform = "ios"
	// PlatformAndroid indicates an Android device.
	PlatformAndroid Platform = "android"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a valid value. An empty platform is allowed.
func (p Platform) IsValid() bool {
	switch p {
	case "", PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// Location is the last known position reported by a device.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Device represents a handset registered for prayer and event reminders.
type Device struct {
	ID          uuid.UUID               `json:"id"`                 // Internal identifier, stable across token rotation.
	Token       string                  `json:"token"`              // Push token. Unique among live devices, rotates.
	DeviceID    string                  `json:"device_id"`          // Hardware identifier reported by the client.
	Platform    Platform                `json:"platform"`           // ios or android.
	Location    *Location               `json:"location,omitempty"` // Nil until the client reports a position.
	Timezone    string                  `json:"timezone"`           // IANA zone name.
	Preferences NotificationPreferences `json:"preferences"`        // Owned 1:1 by the device.
	CreatedAt   time.Time               `json:"registered_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// HasLocation reports whether prayer times can be computed for the device.
func (d *Device) HasLocation() bool {
	return d != nil && d.Location != nil
}

// WantsNotifications reports whether at least one notification class is on.
func (d *Device) WantsNotifications() bool {
	return d.Preferences.EnablePrayerNotifications || d.Preferences.EnableEventNotifications
}

// LoadLocation resolves the device timezone, falling back to the given zone.
func (d *Device) LoadLocation(fallback *time.Location) *time.Location {
	if d.Timezone == "" {
		return fallback
	}

	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return fallback
	}

	return loc
}
