package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// BeaconKind describes why a member is asking for roadside help.
type BeaconKind string

const (
	BeaconKindBreakdown BeaconKind = "breakdown"
	BeaconKindEmptyTank BeaconKind = "empty_tank"
	BeaconKindAccident  BeaconKind = "accident"
	BeaconKindFlatTire  BeaconKind = "flat_tire"
	BeaconKindOther     BeaconKind = "other"
)

// Valid reports whether the kind is part of the fixed catalog.
func (k BeaconKind) Valid() bool {
	switch k {
	case BeaconKindBreakdown, BeaconKindEmptyTank, BeaconKindAccident, BeaconKindFlatTire, BeaconKindOther:
		return true
	}

	return false
}

// BeaconStatus is the lifecycle state of an emergency beacon. Transitions are
// one-directional: active -> help_coming -> resolved, or active -> resolved.
type BeaconStatus string

const (
	BeaconStatusActive     BeaconStatus = "active"
	BeaconStatusHelpComing BeaconStatus = "help_coming"
	BeaconStatusResolved   BeaconStatus = "resolved"
)

// CanTransitionTo reports whether moving from s to next is a legal forward step.
func (s BeaconStatus) CanTransitionTo(next BeaconStatus) bool {
	switch s {
	case BeaconStatusActive:
		return next == BeaconStatusHelpComing || next == BeaconStatusResolved
	case BeaconStatusHelpComing:
		return next == BeaconStatusResolved
	}

	return false
}

// Open reports whether the beacon still counts against the one-open-beacon-per-user rule.
func (s BeaconStatus) Open() bool {
	return s == BeaconStatusActive || s == BeaconStatusHelpComing
}

// Beacon is an active request for roadside help, visible to nearby members.
// Helper fields are set exactly once, on the active -> help_coming transition,
// and are immutable afterwards.
type Beacon struct {
	ID          uuid.UUID    `json:"id"`                    // The Global Unique Identifier (GUID) for the beacon.
	UserID      uuid.UUID    `json:"user_id"`               // The member who raised the beacon.
	DisplayName string       `json:"display_name"`          // Display name of the member in distress.
	AvatarRef   string       `json:"avatar_ref"`            // Avatar reference of the member in distress.
	Position    orb.Point    `json:"position"`              // Where help is needed.
	Kind        BeaconKind   `json:"kind"`                  // What went wrong.
	Description string       `json:"description,omitempty"` // Optional free-form detail.
	Status      BeaconStatus `json:"status"`                // Current lifecycle state.
	HelperID    *uuid.UUID   `json:"helper_id,omitempty"`   // The responding member, once one committed.
	HelperName  string       `json:"helper_name,omitempty"` // Display name of the responder.
	CreatedAt   time.Time    `json:"created_at"`            // Timestamp of when the beacon was raised.
	UpdatedAt   time.Time    `json:"updated_at"`            // Timestamp of the last transition.
}
