// Package event defines the fixed catalog of domain events the notification
// pipeline reacts to. This is not a generic pub/sub surface; the router only
// understands the kinds listed here.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Kind names one trigger in the fixed catalog.
type Kind string

const (
	KindBeaconCreated          Kind = "beacon.created"
	KindBeaconClaimed          Kind = "beacon.claimed"
	KindBeaconResolved         Kind = "beacon.resolved"
	KindChatMessage            Kind = "chat.message"
	KindEventComment           Kind = "community_event.comment"
	KindEventChanged           Kind = "community_event.changed"
	KindEventParticipantJoined Kind = "community_event.participant_joined"
	KindEventParticipantsLeft  Kind = "community_event.participants_left"
	KindEventCreated           Kind = "community_event.created"
	KindFriendAdded            Kind = "friend.added"
	KindBadgeEarned            Kind = "badge.earned"
	KindListingPublished       Kind = "marketplace.listing_published"
	KindCarForSale             Kind = "marketplace.car_for_sale"
)

// Event is the envelope published on the domain event topic. It is a flat
// union: each kind reads the subset of fields it needs and ignores the rest.
type Event struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`

	// Actor is the member whose action produced the event (beacon owner,
	// chat sender, commenter, joiner, listing author, ...).
	ActorID   uuid.UUID `json:"actor_id"`
	ActorName string    `json:"actor_name,omitempty"`

	// Beacon transitions.
	BeaconID   uuid.UUID `json:"beacon_id,omitempty"`
	BeaconKind string    `json:"beacon_kind,omitempty"`
	HelperID   uuid.UUID `json:"helper_id,omitempty"`
	HelperName string    `json:"helper_name,omitempty"`

	// Direct-recipient kinds (chat message, friend added, badge earned).
	RecipientID uuid.UUID `json:"recipient_id,omitempty"`
	Text        string    `json:"text,omitempty"`
	BadgeName   string    `json:"badge_name,omitempty"`

	// Community events.
	EventID        uuid.UUID   `json:"event_id,omitempty"`
	EventTitle     string      `json:"event_title,omitempty"`
	EventType      string      `json:"event_type,omitempty"`
	CreatorID      uuid.UUID   `json:"creator_id,omitempty"`
	ParticipantIDs []uuid.UUID `json:"participant_ids,omitempty"`
	ChangedField   string      `json:"changed_field,omitempty"`
	DepartedNames  []string    `json:"departed_names,omitempty"`
	JoinedCount    int         `json:"joined_count,omitempty"`

	// Marketplace.
	ListingTitle string `json:"listing_title,omitempty"`
}

// New builds an envelope with a fresh ID and timestamp.
func New(kind Kind) *Event {
	return &Event{
		ID:         uuid.New().String(),
		Kind:       kind,
		OccurredAt: time.Now(),
	}
}
