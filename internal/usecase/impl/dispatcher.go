package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"convoy/internal/domain/service"
	"convoy/internal/usecase"
)

type dispatcher struct {
	pusher service.Pusher
	logger *slog.Logger
}

// NewDispatcher creates the concurrent push dispatcher.
func NewDispatcher(pusher service.Pusher, logger *slog.Logger) usecase.DispatcherUsecase {
	return &dispatcher{
		pusher: pusher,
		logger: logger,
	}
}

// Dispatch issues every send concurrently and joins them all before returning.
// Failures are isolated per send: a dead token or a transient transport error
// is counted and logged, never propagated to the other sends.
func (d *dispatcher) Dispatch(ctx context.Context, sends []usecase.Send) *usecase.DeliveryReport {
	report := &usecase.DeliveryReport{}
	if len(sends) == 0 {
		return report
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, send := range sends {
		wg.Add(1)

		go func(send usecase.Send) {
			defer wg.Done()

			err := d.pusher.Send(ctx, &service.PushMessage{
				Token:   send.Token,
				Title:   send.Title,
				Body:    send.Body,
				Data:    send.Data,
				Channel: send.Channel,
			})

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				report.Delivered++

				return
			}

			report.Failed++

			if errors.Is(err, service.ErrInvalidToken) {
				report.InvalidTokens = append(report.InvalidTokens, send.Token)
				d.logger.Warn("push rejected, token unregistered",
					slog.String("user_id", send.UserID.String()),
				)

				return
			}

			d.logger.Warn("push send failed",
				slog.String("user_id", send.UserID.String()),
				slog.String("error", err.Error()),
			)
		}(send)
	}

	wg.Wait()

	return report
}
