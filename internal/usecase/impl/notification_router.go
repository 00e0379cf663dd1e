package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/event"
	"convoy/internal/domain/repository"
	"convoy/internal/domain/service"
	"convoy/internal/usecase"
	"convoy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// beaconKindLabels maps the wire kind to the phrase used in push bodies.
var beaconKindLabels = map[string]string{
	string(entity.BeaconKindBreakdown): "a breakdown",
	string(entity.BeaconKindEmptyTank): "an empty tank",
	string(entity.BeaconKindAccident):  "an accident",
	string(entity.BeaconKindFlatTire):  "a flat tire",
	string(entity.BeaconKindOther):     "trouble on the road",
}

type notificationRouter struct {
	userDir    repository.UserDirectory
	dispatcher usecase.DispatcherUsecase
	logger     *slog.Logger

	// now is swapped out in tests to pin the quiet-hours clock.
	now func() time.Time
}

// NewNotificationRouter creates the per-event-kind recipient resolver. The
// catalog of kinds is fixed; unknown kinds are logged and acknowledged so the
// broker does not redeliver them forever.
func NewNotificationRouter(
	userDir repository.UserDirectory,
	dispatcher usecase.DispatcherUsecase,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationRouter{
		userDir:    userDir,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// HandleEvent resolves recipients for the event, gates them through their
// settings and dispatches the pushes concurrently.
func (r *notificationRouter) HandleEvent(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	switch evt.Kind {
	case event.KindBeaconCreated:
		return r.handleBeaconCreated(ctx, evt)
	case event.KindBeaconClaimed:
		return r.handleBeaconClaimed(ctx, evt)
	case event.KindBeaconResolved:
		return r.handleBeaconResolved(ctx, evt)
	case event.KindChatMessage:
		return r.handleChatMessage(ctx, evt)
	case event.KindEventComment:
		return r.handleEventComment(ctx, evt)
	case event.KindEventChanged:
		return r.handleEventChanged(ctx, evt)
	case event.KindEventParticipantJoined:
		return r.handleParticipantJoined(ctx, evt)
	case event.KindEventParticipantsLeft:
		return r.handleParticipantsLeft(ctx, evt)
	case event.KindEventCreated:
		return r.handleEventCreated(ctx, evt)
	case event.KindFriendAdded:
		return r.handleFriendAdded(ctx, evt)
	case event.KindBadgeEarned:
		return r.handleBadgeEarned(ctx, evt)
	case event.KindListingPublished, event.KindCarForSale:
		return r.handleMarketplace(ctx, evt)
	}

	r.logger.Warn("ignoring event of unknown kind", slog.String("kind", string(evt.Kind)))

	return &usecase.DeliveryReport{}, nil
}

// handleBeaconCreated broadcasts the S.O.S. to every member with sosAlerts on,
// except the member in distress.
func (r *notificationRouter) handleBeaconCreated(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	recipients, err := r.userDir.FindWithCategoryEnabled(ctx, entity.CategorySOSAlerts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve sos recipients")
	}

	label := beaconKindLabels[evt.BeaconKind]
	if label == "" {
		label = "trouble on the road"
	}

	sends := r.buildSends(recipients, evt.ActorID, r.quietGate(entity.CategorySOSAlerts),
		"S.O.S.",
		fmt.Sprintf("%s has %s and needs help", evt.ActorName, label),
		beaconData(evt),
		service.ChannelAlerts,
	)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

// handleBeaconClaimed tells the member in distress that help is on the way.
func (r *notificationRouter) handleBeaconClaimed(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	return r.sendToOne(ctx, evt.RecipientID, r.quietGate(entity.CategorySOSAlerts),
		"Help is coming",
		fmt.Sprintf("%s is on their way to you", evt.HelperName),
		beaconData(evt),
		service.ChannelAlerts,
	)
}

// handleBeaconResolved notifies the responder that the emergency is over.
func (r *notificationRouter) handleBeaconResolved(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	if evt.RecipientID == uuid.Nil {
		// Nobody had responded, so nobody needs the all-clear.
		return &usecase.DeliveryReport{}, nil
	}

	return r.sendToOne(ctx, evt.RecipientID, r.quietGate(entity.CategorySOSAlerts),
		"Emergency resolved",
		fmt.Sprintf("%s no longer needs help", evt.ActorName),
		beaconData(evt),
		service.ChannelAlerts,
	)
}

// handleChatMessage notifies the other chat participant. Chat deliberately
// bypasses quiet hours.
func (r *notificationRouter) handleChatMessage(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	gate := func(settings *entity.NotificationSettings) bool {
		return settings.AllowsIgnoringQuietHours(entity.CategoryChatMessages)
	}

	return r.sendToOne(ctx, evt.RecipientID, gate,
		evt.ActorName,
		util.Truncate(evt.Text, util.TruncateLimit),
		map[string]string{"kind": string(evt.Kind), "sender_id": evt.ActorID.String()},
		service.ChannelMessages,
	)
}

// handleEventComment notifies participants plus the creator, minus the
// commenter, de-duplicated.
func (r *notificationRouter) handleEventComment(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	recipients, err := r.eventAudience(ctx, evt, evt.ActorID)
	if err != nil {
		return nil, err
	}

	sends := r.buildSends(recipients, evt.ActorID, r.quietGate(entity.CategoryEventComments),
		evt.EventTitle,
		fmt.Sprintf("%s: %s", evt.ActorName, util.Truncate(evt.Text, util.TruncateLimit)),
		eventData(evt),
		service.ChannelEvents,
	)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

// handleEventChanged notifies participants plus the creator about an edited
// title, date or location.
func (r *notificationRouter) handleEventChanged(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	recipients, err := r.eventAudience(ctx, evt, uuid.Nil)
	if err != nil {
		return nil, err
	}

	sends := r.buildSends(recipients, uuid.Nil, r.quietGate(entity.CategoryEventChanges),
		"Event updated",
		fmt.Sprintf("The %s of %s has changed", evt.ChangedField, evt.EventTitle),
		eventData(evt),
		service.ChannelEvents,
	)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

// handleParticipantJoined notifies the event creator, once per joiner.
func (r *notificationRouter) handleParticipantJoined(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	return r.sendToOne(ctx, evt.CreatorID, r.quietGate(entity.CategoryEventParticipation),
		evt.EventTitle,
		fmt.Sprintf("%s joined your event", evt.ActorName),
		eventData(evt),
		service.ChannelEvents,
	)
}

// handleParticipantsLeft notifies the creator using only the first departed
// name. Any simultaneous join suppresses the notification entirely.
func (r *notificationRouter) handleParticipantsLeft(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	if evt.JoinedCount > 0 || len(evt.DepartedNames) == 0 {
		return &usecase.DeliveryReport{}, nil
	}

	body := fmt.Sprintf("%s left your event", evt.DepartedNames[0])
	if len(evt.DepartedNames) > 1 {
		body = fmt.Sprintf("%s and others left your event", evt.DepartedNames[0])
	}

	return r.sendToOne(ctx, evt.CreatorID, r.quietGate(entity.CategoryEventParticipation),
		evt.EventTitle,
		body,
		eventData(evt),
		service.ChannelEvents,
	)
}

// handleEventCreated broadcasts a new event to members subscribed to its type.
// The directory query pre-filters settings; no quiet-hours re-check happens at
// send time on this path.
func (r *notificationRouter) handleEventCreated(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	recipients, err := r.userDir.FindWantingEventType(ctx, evt.EventType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve new-event recipients")
	}

	sends := r.buildSends(recipients, evt.CreatorID, nil,
		"New event",
		fmt.Sprintf("%s: %s", evt.EventType, evt.EventTitle),
		eventData(evt),
		service.ChannelEvents,
	)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

// handleFriendAdded notifies the added friend.
func (r *notificationRouter) handleFriendAdded(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	return r.sendToOne(ctx, evt.RecipientID, r.quietGate(entity.CategoryFriendRequests),
		"New friend",
		fmt.Sprintf("%s added you as a friend", evt.ActorName),
		map[string]string{"kind": string(evt.Kind), "friend_id": evt.ActorID.String()},
		service.ChannelDefault,
	)
}

// handleBadgeEarned congratulates the earning member.
func (r *notificationRouter) handleBadgeEarned(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	return r.sendToOne(ctx, evt.RecipientID, r.quietGate(entity.CategoryBadges),
		"Badge earned",
		fmt.Sprintf("You earned the %s badge", evt.BadgeName),
		map[string]string{"kind": string(evt.Kind), "badge": evt.BadgeName},
		service.ChannelDefault,
	)
}

// handleMarketplace broadcasts a new listing or a car marked for sale to every
// member with marketplace notifications on, except the author.
func (r *notificationRouter) handleMarketplace(ctx context.Context, evt *event.Event) (*usecase.DeliveryReport, error) {
	recipients, err := r.userDir.FindWithCategoryEnabled(ctx, entity.CategoryMarketplace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve marketplace recipients")
	}

	title := "New listing"
	if evt.Kind == event.KindCarForSale {
		title = "Car for sale"
	}

	sends := r.buildSends(recipients, evt.ActorID, r.quietGate(entity.CategoryMarketplace),
		title,
		evt.ListingTitle,
		map[string]string{"kind": string(evt.Kind)},
		service.ChannelMarketplace,
	)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

// eventAudience loads the de-duplicated union of an event's participants and
// its creator, excluding one member (the actor), in a stable order.
func (r *notificationRouter) eventAudience(ctx context.Context, evt *event.Event, exclude uuid.UUID) ([]*entity.User, error) {
	seen := make(map[uuid.UUID]struct{}, len(evt.ParticipantIDs)+1)
	ids := make([]uuid.UUID, 0, len(evt.ParticipantIDs)+1)

	for _, id := range append([]uuid.UUID{evt.CreatorID}, evt.ParticipantIDs...) {
		if id == uuid.Nil || id == exclude {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	recipients, err := r.userDir.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve event audience")
	}

	return recipients, nil
}

// quietGate is the standard eligibility check: master switch, category toggle
// and the quiet-hours window at the moment of sending.
func (r *notificationRouter) quietGate(category entity.Category) func(*entity.NotificationSettings) bool {
	at := r.now()

	return func(settings *entity.NotificationSettings) bool {
		return settings.Allows(category, at)
	}
}

// buildSends turns a recipient list into dispatchable sends, dropping members
// without a device and members whose settings reject the category. A nil gate
// skips the settings check (pre-filtered query paths).
func (r *notificationRouter) buildSends(
	recipients []*entity.User,
	exclude uuid.UUID,
	gate func(*entity.NotificationSettings) bool,
	title, body string,
	data map[string]string,
	channel service.Channel,
) []usecase.Send {
	sends := make([]usecase.Send, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient.ID == exclude || !recipient.Sendable() {
			continue
		}
		if gate != nil && !gate(recipient.Settings) {
			continue
		}

		sends = append(sends, usecase.Send{
			UserID:  recipient.ID,
			Token:   recipient.DeliveryToken,
			Title:   title,
			Body:    body,
			Data:    data,
			Channel: channel,
		})
	}

	return sends
}

// sendToOne resolves a single direct recipient and dispatches, skipping
// silently when the member is gone.
func (r *notificationRouter) sendToOne(
	ctx context.Context,
	recipientID uuid.UUID,
	gate func(*entity.NotificationSettings) bool,
	title, body string,
	data map[string]string,
	channel service.Channel,
) (*usecase.DeliveryReport, error) {
	if recipientID == uuid.Nil {
		return &usecase.DeliveryReport{}, nil
	}

	recipient, err := r.userDir.FindByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.DeliveryReport{}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve recipient")
	}

	sends := r.buildSends([]*entity.User{recipient}, uuid.Nil, gate, title, body, data, channel)

	return r.dispatcher.Dispatch(ctx, sends), nil
}

func beaconData(evt *event.Event) map[string]string {
	return map[string]string{
		"kind":      string(evt.Kind),
		"beacon_id": evt.BeaconID.String(),
	}
}

func eventData(evt *event.Event) map[string]string {
	return map[string]string{
		"kind":     string(evt.Kind),
		"event_id": evt.EventID.String(),
	}
}
