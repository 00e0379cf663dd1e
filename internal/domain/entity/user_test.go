package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_Sendable(t *testing.T) {
	assert.True(t, (&User{DeliveryToken: "token-1"}).Sendable())
	assert.False(t, (&User{}).Sendable())

	var u *User
	assert.False(t, u.Sendable())
}

func TestVehicleReminderType_WarningDays(t *testing.T) {
	assert.Equal(t, []int{90, 30}, ReminderTypeInspection.WarningDays())
	assert.Equal(t, []int{30}, ReminderTypeFirstAidKit.WarningDays())
	assert.Equal(t, []int{30}, ReminderTypeHighwayVignette.WarningDays())
	assert.Equal(t, []int{60}, ReminderTypeLiabilityInsurance.WarningDays())
	assert.Nil(t, VehicleReminderType("carwash").WarningDays())
}

func TestVehicleReminder_DaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	reminder := &VehicleReminder{ExpiresOn: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 30, reminder.DaysUntil(now))

	sameDay := &VehicleReminder{ExpiresOn: time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)}
	assert.Equal(t, 0, sameDay.DaysUntil(now))

	past := &VehicleReminder{ExpiresOn: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, -2, past.DaysUntil(now))
}

func TestVehicleReminder_DaysUntil_TimeOfDayIgnored(t *testing.T) {
	// Late evening vs early morning must not shift the day count.
	reminder := &VehicleReminder{ExpiresOn: time.Date(2026, 9, 10, 17, 45, 0, 0, time.UTC)}

	morning := time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 9, reminder.DaysUntil(morning))
	assert.Equal(t, 9, reminder.DaysUntil(evening))
}

func TestHomeZone_RadiusFallback(t *testing.T) {
	zone := &HomeZone{}
	assert.Equal(t, DefaultHomeZoneRadiusMeters, zone.Radius())

	zone.RadiusMeters = 250
	assert.Equal(t, 250.0, zone.Radius())
}

func TestPositionOf(t *testing.T) {
	p := PositionOf(50.0755, 14.4378)

	assert.Equal(t, 50.0755, p.Lat())
	assert.Equal(t, 14.4378, p.Lon())
}
