package kv

//go:generate go run go.uber.org/mock/mockgen -source=./kv.go -destination=./mocks/kv_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"rathh/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName       = "kv"
	otelKeyAttributeKey = "kv.key"

	// Nil is returned by Get when the key does not exist.
	Nil = redis.Nil
)

// Store is a typed key-value slot store. Every value is a whole JSON record:
// a Put fully replaces the previous record, and a Delete removes the slot
// rather than clearing it. Slots may carry a TTL (in seconds); zero keeps the
// record until it is deleted or overwritten.
type Store interface {
	Put(ctx context.Context, key string, value any, ttlSeconds int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisStore struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisStore(client *redis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

// Put implements Store.
func (store *redisStore) Put(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttributeKey, key)

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	default:
		raw, err = json.Marshal(v)

		if err != nil {
			log.Error().Err(err).Str("key", key).Str("Store", "Put").Msg("failed to marshal record")

			return fmt.Errorf("failed to marshal record: %w", err)
		}
	}

	err = store.client.Set(ctx, key, raw, time.Second*time.Duration(ttlSeconds)).Err()

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("Store", "Put").Msg("failed to put record")

		return fmt.Errorf("failed to put record: %w", err)
	}

	return nil
}

// Get implements Store.
func (store *redisStore) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttributeKey, key)

	raw, err := store.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	switch v := value.(type) {
	case *string:
		*v = raw

		return nil
	default:
		if err = json.Unmarshal([]byte(raw), value); err != nil {
			log.Error().Err(err).Str("Store", "Get").Msg("failed to unmarshal record")

			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	}
}

// Delete implements Store.
func (store *redisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttributeKey, key)

	if err = store.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("Store", "Delete").Msg("failed to delete record")

		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// Clear implements Store.
func (store *redisStore) Clear(ctx context.Context, prefix string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttributeKey, prefix)

	scan := store.client.Scan(ctx, 0, prefix, 0)
	if scan != nil {
		iter := scan.Iterator()

		for iter.Next(ctx) {
			key := iter.Val()
			if err = store.client.Del(ctx, key).Err(); err != nil {
				log.Error().Err(err).Str("key", key).Str("Store", "Clear").Msg("failed to delete record")

				return fmt.Errorf("failed to delete record: %w", err)
			}
		}
	}

	return nil
}
