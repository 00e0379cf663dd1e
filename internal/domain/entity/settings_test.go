package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuietHours_OvernightWindow(t *testing.T) {
	q := QuietHours{Enabled: true, StartHour: 22, EndHour: 7}

	assert.True(t, q.IsQuietAt(23))
	assert.True(t, q.IsQuietAt(3))
	assert.True(t, q.IsQuietAt(22))
	assert.False(t, q.IsQuietAt(10))
	assert.False(t, q.IsQuietAt(7))
}

func TestQuietHours_SameDayWindow(t *testing.T) {
	q := QuietHours{Enabled: true, StartHour: 12, EndHour: 14}

	assert.True(t, q.IsQuietAt(12))
	assert.True(t, q.IsQuietAt(13))
	assert.False(t, q.IsQuietAt(14))
	assert.False(t, q.IsQuietAt(11))
}

func TestQuietHours_DisabledNeverQuiet(t *testing.T) {
	q := QuietHours{Enabled: false, StartHour: 0, EndHour: 23}

	assert.False(t, q.IsQuietAt(12))
}

func TestNotificationSettings_Allows(t *testing.T) {
	settings := DefaultNotificationSettings()
	settings.QuietHours = QuietHours{Enabled: true, StartHour: 22, EndHour: 7}

	atNoon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	atNight := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	assert.True(t, settings.Allows(CategorySOSAlerts, atNoon))
	assert.False(t, settings.Allows(CategorySOSAlerts, atNight))
}

func TestNotificationSettings_MasterSwitchOverridesCategory(t *testing.T) {
	settings := DefaultNotificationSettings()
	settings.Enabled = false

	assert.False(t, settings.Allows(CategorySOSAlerts, time.Now()))
	assert.False(t, settings.AllowsIgnoringQuietHours(CategoryChatMessages))
}

func TestNotificationSettings_NilNeverAllows(t *testing.T) {
	var settings *NotificationSettings

	assert.False(t, settings.Allows(CategorySOSAlerts, time.Now()))
	assert.False(t, settings.AllowsIgnoringQuietHours(CategoryChatMessages))
}

func TestNotificationSettings_ChatBypassesQuietHours(t *testing.T) {
	settings := DefaultNotificationSettings()
	settings.QuietHours = QuietHours{Enabled: true, StartHour: 22, EndHour: 7}

	// The regular gate rejects at night, the chat gate does not.
	atNight := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.False(t, settings.Allows(CategoryChatMessages, atNight))
	assert.True(t, settings.AllowsIgnoringQuietHours(CategoryChatMessages))
}

func TestNewEventPrefs_WantsType(t *testing.T) {
	prefs := NewEventPrefs{Enabled: true, Types: []string{"ride", "meetup"}}

	assert.True(t, prefs.WantsType("ride"))
	assert.False(t, prefs.WantsType("race"))

	prefs.Enabled = false
	assert.False(t, prefs.WantsType("ride"))
}

func TestNotificationSettings_ProximityRadiusFallback(t *testing.T) {
	settings := &NotificationSettings{}

	assert.Equal(t, DefaultProximityRadiusKm*1000, settings.ProximityRadiusMeters())

	settings.ProximityRadiusKm = 5
	assert.Equal(t, 5000.0, settings.ProximityRadiusMeters())
}

func TestDefaultNotificationSettings_NewEventsOptIn(t *testing.T) {
	settings := DefaultNotificationSettings()

	assert.True(t, settings.Enabled)
	assert.False(t, settings.NewEvents.Enabled)
}
