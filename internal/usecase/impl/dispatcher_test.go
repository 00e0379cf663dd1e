package impl

import (
	"context"
	"log/slog"
	"testing"

	"convoy/internal/domain/service"
	mockSvc "convoy/internal/mocks/service"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDispatcher_EmptyBatch(t *testing.T) {
	mockPusher := mockSvc.NewMockPusher(t)
	dispatcher := NewDispatcher(mockPusher, testLogger())

	report := dispatcher.Dispatch(context.Background(), nil)

	assert.Zero(t, report.Delivered)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
}

func TestDispatcher_AllDelivered(t *testing.T) {
	mockPusher := mockSvc.NewMockPusher(t)
	dispatcher := NewDispatcher(mockPusher, testLogger())

	mockPusher.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		Return(nil).
		Times(3)

	sends := []usecase.Send{
		{UserID: uuid.New(), Token: "token-a"},
		{UserID: uuid.New(), Token: "token-b"},
		{UserID: uuid.New(), Token: "token-c"},
	}

	report := dispatcher.Dispatch(context.Background(), sends)

	assert.Equal(t, 3, report.Delivered)
	assert.Zero(t, report.Failed)
}

func TestDispatcher_PartialFailureIsolated(t *testing.T) {
	mockPusher := mockSvc.NewMockPusher(t)
	dispatcher := NewDispatcher(mockPusher, testLogger())

	mockPusher.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) error {
			switch msg.Token {
			case "token-dead":
				return errors.Wrap(service.ErrInvalidToken, "send rejected")
			case "token-flaky":
				return errors.New("transport timeout")
			}

			return nil
		})

	sends := []usecase.Send{
		{UserID: uuid.New(), Token: "token-ok"},
		{UserID: uuid.New(), Token: "token-dead"},
		{UserID: uuid.New(), Token: "token-flaky"},
	}

	report := dispatcher.Dispatch(context.Background(), sends)

	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []string{"token-dead"}, report.InvalidTokens)
}
