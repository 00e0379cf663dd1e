package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is the directory view of one community member: the identity, delivery
// address and preferences the notification pipeline needs. Account management
// itself lives outside this core.
type User struct {
	ID            uuid.UUID             // The Global Unique Identifier (GUID) for the member.
	DisplayName   string                // The member's display name.
	AvatarRef     string                // Reference to the member's avatar image.
	DeliveryToken string                // Opaque per-device push address; empty when no device is registered.
	StatusText    string                // Free-form status line shown on the map.
	AllowContact  bool                  // Whether other members may open a chat from the map.
	MapVisible    bool                  // Whether the member's position may appear on the map at all.
	Settings      *NotificationSettings // Notification preferences; nil when the member never saved any.
	HomeZone      *HomeZone             // Optional privacy circle around the member's home.
	CreatedAt     time.Time             // Timestamp of when this member record was created.
	UpdatedAt     time.Time             // Timestamp of the last modification.
}

// Sendable reports whether the member can receive a push at all.
func (u *User) Sendable() bool {
	return u != nil && u.DeliveryToken != ""
}

// VehicleReminderType classifies the deadlines a member can be warned about.
type VehicleReminderType string

const (
	ReminderTypeInspection         VehicleReminderType = "stk"                 // Periodic technical inspection.
	ReminderTypeFirstAidKit        VehicleReminderType = "first_aid_kit"       // First-aid kit expiry.
	ReminderTypeHighwayVignette    VehicleReminderType = "highway_vignette"    // Highway vignette expiry.
	ReminderTypeLiabilityInsurance VehicleReminderType = "liability_insurance" // Liability insurance renewal.
)

// WarningDays returns the day-counts before expiry at which a reminder of this
// type fires. A same-day alert additionally fires for every type.
func (t VehicleReminderType) WarningDays() []int {
	switch t {
	case ReminderTypeInspection:
		return []int{90, 30}
	case ReminderTypeFirstAidKit:
		return []int{30}
	case ReminderTypeHighwayVignette:
		return []int{30}
	case ReminderTypeLiabilityInsurance:
		return []int{60}
	}

	return nil
}

// VehicleReminder is one enabled deadline on one of a member's vehicles.
type VehicleReminder struct {
	ID          uuid.UUID           // The Global Unique Identifier (GUID) for the reminder.
	UserID      uuid.UUID           // The vehicle owner.
	VehicleName string              // Display name of the vehicle, used in the push body.
	Type        VehicleReminderType // Which deadline this reminder tracks.
	ExpiresOn   time.Time           // The deadline date; time-of-day is ignored.
	Enabled     bool                // Disabled reminders are skipped by the sweep.
}

// DaysUntil returns the number of whole calendar days remaining until the
// deadline, rounding partial days up. Same-day deadlines yield zero.
func (r *VehicleReminder) DaysUntil(now time.Time) int {
	expiry := time.Date(r.ExpiresOn.Year(), r.ExpiresOn.Month(), r.ExpiresOn.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Rounding absorbs the 23h/25h days around DST changes.
	return int(math.Round(expiry.Sub(today).Hours() / 24))
}

// PositionOf is a convenience for building map positions from latitude and
// longitude in that order; orb stores points as (lon, lat).
func PositionOf(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}
