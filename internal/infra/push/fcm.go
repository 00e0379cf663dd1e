// Package push contains the FCM implementation of the push transport.
package push

import (
	"context"

	"convoy/config"
	"convoy/internal/domain/service"
	"convoy/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmPusher struct {
	client *messaging.Client
}

// NewFCMPusher creates the Firebase Cloud Messaging push transport.
func NewFCMPusher(ctx context.Context, cfg *config.Config) (service.Pusher, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase is not configured")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmPusher{client: client}, nil
}

// Send delivers one message to one device. Permanently dead tokens come back
// as service.ErrInvalidToken so the dispatcher can have them cleared.
func (p *fcmPusher) Send(ctx context.Context, msg *service.PushMessage) error {
	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				ChannelID: string(msg.Channel),
			},
		},
	}

	if _, err := p.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrapf(service.ErrInvalidToken, "send rejected: %v", err)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
