package entity

import (
	"slices"
	"time"
)

// Category identifies one class of push notification. The catalog is fixed;
// the router never dispatches a category that is not listed here.
type Category string

const (
	CategorySOSAlerts          Category = "sos_alerts"
	CategoryFriendRequests     Category = "friend_requests"
	CategoryEventComments      Category = "event_comments"
	CategoryEventChanges       Category = "event_changes"
	CategoryEventParticipation Category = "event_participation"
	CategoryVehicleReminders   Category = "vehicle_reminders"
	CategoryMarketplace        Category = "marketplace_notifications"
	CategoryChatMessages       Category = "chat_messages"
	CategoryProximityAlerts    Category = "proximity_alerts"
	CategoryBadges             Category = "badge_notifications"
	CategoryNewEvents          Category = "new_events"
)

// QuietHours is a member-configured local time window during which most
// notification categories are suppressed. When StartHour > EndHour the window
// wraps past midnight.
type QuietHours struct {
	Enabled   bool `json:"enabled"`
	StartHour int  `json:"start_hour"` // Hour of day, 0-23, local time. Inclusive.
	EndHour   int  `json:"end_hour"`   // Hour of day, 0-23, local time. Exclusive.
}

// IsQuietAt reports whether the given local hour falls inside the quiet window.
func (q QuietHours) IsQuietAt(hour int) bool {
	if !q.Enabled {
		return false
	}
	if q.StartHour > q.EndHour {
		// Overnight window, e.g. 22 -> 7.
		return hour >= q.StartHour || hour < q.EndHour
	}

	return hour >= q.StartHour && hour < q.EndHour
}

// NewEventPrefs narrows the new-event broadcast down to the event types a member
// actually cares about.
type NewEventPrefs struct {
	Enabled bool     `json:"enabled"`
	Types   []string `json:"types"` // Event-type tags the member subscribed to.
}

// WantsType reports whether the member subscribed to the given event type.
func (p NewEventPrefs) WantsType(eventType string) bool {
	return p.Enabled && slices.Contains(p.Types, eventType)
}

// NotificationSettings holds one member's per-category delivery preferences.
type NotificationSettings struct {
	Enabled            bool          `json:"enabled"`
	QuietHours         QuietHours    `json:"quiet_hours"`
	SOSAlerts          bool          `json:"sos_alerts"`
	FriendRequests     bool          `json:"friend_requests"`
	EventComments      bool          `json:"event_comments"`
	EventChanges       bool          `json:"event_changes"`
	EventParticipation bool          `json:"event_participation"`
	VehicleReminders   bool          `json:"vehicle_reminders"`
	Marketplace        bool          `json:"marketplace_notifications"`
	ChatMessages       bool          `json:"chat_messages"`
	ProximityAlerts    bool          `json:"proximity_alerts"`
	ProximityRadiusKm  float64       `json:"proximity_radius_km"` // Radius for proximity alerts; defaults to 20 km.
	Badges             bool          `json:"badge_notifications"`
	NewEvents          NewEventPrefs `json:"new_events"`
}

// DefaultProximityRadiusKm is applied when proximity alerts are on but no
// radius was chosen.
const DefaultProximityRadiusKm = 20.0

// ProximityRadiusMeters returns the configured proximity radius in meters,
// falling back to the default.
func (s *NotificationSettings) ProximityRadiusMeters() float64 {
	radius := s.ProximityRadiusKm
	if radius <= 0 {
		radius = DefaultProximityRadiusKm
	}

	return radius * 1000.0
}

// DefaultNotificationSettings returns the preferences applied to a member who
// never saved any: everything on except the new-event digest, no quiet hours.
func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		Enabled:            true,
		SOSAlerts:          true,
		FriendRequests:     true,
		EventComments:      true,
		EventChanges:       true,
		EventParticipation: true,
		VehicleReminders:   true,
		Marketplace:        true,
		ChatMessages:       true,
		ProximityAlerts:    true,
		ProximityRadiusKm:  DefaultProximityRadiusKm,
		Badges:             true,
	}
}

// CategoryEnabled reports whether the per-category toggle is on. The master
// switch and quiet hours are checked separately by Allows.
func (s *NotificationSettings) CategoryEnabled(category Category) bool {
	switch category {
	case CategorySOSAlerts:
		return s.SOSAlerts
	case CategoryFriendRequests:
		return s.FriendRequests
	case CategoryEventComments:
		return s.EventComments
	case CategoryEventChanges:
		return s.EventChanges
	case CategoryEventParticipation:
		return s.EventParticipation
	case CategoryVehicleReminders:
		return s.VehicleReminders
	case CategoryMarketplace:
		return s.Marketplace
	case CategoryChatMessages:
		return s.ChatMessages
	case CategoryProximityAlerts:
		return s.ProximityAlerts
	case CategoryBadges:
		return s.Badges
	case CategoryNewEvents:
		return s.NewEvents.Enabled
	}

	return false
}

// Allows reports whether a notification of the given category may be delivered
// at the given wall-clock time. Absent settings never allow delivery.
func (s *NotificationSettings) Allows(category Category, at time.Time) bool {
	if s == nil || !s.Enabled || !s.CategoryEnabled(category) {
		return false
	}

	return !s.QuietHours.IsQuietAt(at.Hour())
}

// AllowsIgnoringQuietHours is the eligibility check for the categories that
// intentionally bypass the quiet window (chat messages).
func (s *NotificationSettings) AllowsIgnoringQuietHours(category Category) bool {
	return s != nil && s.Enabled && s.CategoryEnabled(category)
}
