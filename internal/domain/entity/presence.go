// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PresenceRecord is the live, single-row description of where a member currently
// is on the shared map. A record exists in the presence store if and only if the
// owning session wants to be visible right now; it is deleted when tracking stops
// or while the member is inside their home zone.
type PresenceRecord struct {
	UserID       uuid.UUID  `json:"user_id"`            // The ID of the member this record belongs to.
	DisplayName  string     `json:"display_name"`       // The member's display name shown on the map.
	AvatarRef    string     `json:"avatar_ref"`         // Reference to the member's avatar image.
	StatusText   string     `json:"status_text"`        // Free-form status line shown next to the name.
	Position     *orb.Point `json:"position,omitempty"` // Current position; nil when no fix is known.
	LastActiveAt time.Time  `json:"last_active_at"`     // Timestamp of the last accepted location sample.
	AllowContact bool       `json:"allow_contact"`      // Whether other members may open a chat from the map.
}

// HomeZone is a member-configured circle around their home. Location is never
// shared while the current position lies inside the circle. The zone itself is
// never written to the presence store.
type HomeZone struct {
	Center       orb.Point `json:"center"`        // Center of the privacy circle.
	RadiusMeters float64   `json:"radius_meters"` // Radius of the circle; defaults to 500 m.
}

// DefaultHomeZoneRadiusMeters is applied when a member enables a home zone
// without choosing a radius.
const DefaultHomeZoneRadiusMeters = 500.0

// Radius returns the configured radius, falling back to the default.
func (z *HomeZone) Radius() float64 {
	if z.RadiusMeters <= 0 {
		return DefaultHomeZoneRadiusMeters
	}

	return z.RadiusMeters
}
