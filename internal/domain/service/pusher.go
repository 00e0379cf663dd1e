// Package service declares the interfaces for external collaborators the core
// depends on: the push transport, the event bus and the device location stream.
package service

import (
	"context"
	"errors"
)

// Channel tags a push for client-side grouping and sound profile. Tags carry
// no routing meaning inside this core.
type Channel string

const (
	ChannelDefault     Channel = "default"
	ChannelAlerts      Channel = "alerts"
	ChannelMessages    Channel = "messages"
	ChannelMarketplace Channel = "marketplace"
	ChannelEvents      Channel = "events"
	ChannelReminders   Channel = "reminders"
)

// Push transport failure classes. Anything else coming back from the transport
// is treated as transient.
var (
	// ErrInvalidToken means the delivery token is permanently unregistered;
	// the caller should have it cleared from storage.
	ErrInvalidToken = errors.New("delivery token invalid or unregistered")
)

// PushMessage is one message addressed to one device.
type PushMessage struct {
	Token   string            // Opaque per-device push address.
	Title   string            // Notification title.
	Body    string            // Notification body.
	Data    map[string]string // Structured key-value payload for the client.
	Channel Channel           // Client-side grouping tag.
}

// Pusher sends a single push message. Implementations classify permanent token
// failures as ErrInvalidToken (wrapped); everything else is retry-worthy.
type Pusher interface {
	Send(ctx context.Context, msg *PushMessage) error
}
