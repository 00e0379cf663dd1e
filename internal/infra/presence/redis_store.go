package presence

import (
	"context"
	"encoding/json"
	"log/slog"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/repository"
	"convoy/internal/feed"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// recordsKey is the hash of live presence records, one field per member.
	recordsKey = "presence:records"
	// snapshotsChannel carries the full table after every write so that
	// subscribers in other processes converge without polling.
	snapshotsChannel = "presence:snapshots"
)

// redisStore implements the repository.PresenceStore interface on a Redis
// hash plus a pub/sub channel for change fan-out.
type redisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStore is the constructor for redisStore.
func NewStore(client *redis.Client, logger *slog.Logger) repository.PresenceStore {
	return &redisStore{client: client, logger: logger}
}

// Upsert creates or overwrites the member's presence record, then broadcasts
// the resulting table.
func (store *redisStore) Upsert(ctx context.Context, record *entity.PresenceRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode presence record")
	}

	if err := store.client.HSet(ctx, recordsKey, record.UserID.String(), raw).Err(); err != nil {
		return errors.Wrap(err, "failed to store presence record")
	}

	return store.broadcast(ctx)
}

// Delete removes the member's presence record. Absent records are fine.
func (store *redisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := store.client.HDel(ctx, recordsKey, userID.String()).Err(); err != nil {
		return errors.Wrap(err, "failed to delete presence record")
	}

	return store.broadcast(ctx)
}

// Snapshot returns the current full table of presence records.
func (store *redisStore) Snapshot(ctx context.Context) ([]entity.PresenceRecord, error) {
	fields, err := store.client.HGetAll(ctx, recordsKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read presence table")
	}

	records := make([]entity.PresenceRecord, 0, len(fields))
	for field, raw := range fields {
		var record entity.PresenceRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			// A single corrupt field must not take down the whole table.
			store.logger.Warn("skipping corrupt presence record",
				slog.String("field", field),
				slog.String("error", err.Error()),
			)

			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Subscribe returns a live stream of full snapshots, seeded with the current
// table. The stream closes when ctx is cancelled.
func (store *redisStore) Subscribe(ctx context.Context) (*feed.Feed[[]entity.PresenceRecord], error) {
	pubsub := store.client.Subscribe(ctx, snapshotsChannel)

	// Force the subscription to be established before the initial snapshot is
	// read, so no write can fall between the two.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to presence snapshots")
	}

	snapshotFeed := feed.New[[]entity.PresenceRecord]()

	initial, err := store.Snapshot(ctx)
	if err != nil {
		_ = pubsub.Close()

		return nil, err
	}
	snapshotFeed.Publish(initial)

	go func() {
		defer snapshotFeed.Close()
		defer func() { _ = pubsub.Close() }()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var records []entity.PresenceRecord
				if err := json.Unmarshal([]byte(msg.Payload), &records); err != nil {
					store.logger.Warn("skipping corrupt presence snapshot",
						slog.String("error", err.Error()),
					)

					continue
				}
				snapshotFeed.Publish(records)
			}
		}
	}()

	return snapshotFeed, nil
}

func (store *redisStore) broadcast(ctx context.Context) error {
	records, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to encode presence snapshot")
	}

	if err := store.client.Publish(ctx, snapshotsChannel, raw).Err(); err != nil {
		return errors.Wrap(err, "failed to publish presence snapshot")
	}

	return nil
}
