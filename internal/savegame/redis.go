package savegame

import (
	"context"
	"errors"
	"fmt"

	"raywizard/internal/engine"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Key pattern: raywizard:save:{ulid}
	saveKeyPrefix = "raywizard:save:"
	// Sorted set of save IDs scored by their ULID timestamp.
	indexKey = "raywizard:saves"
)

// RedisStore keeps saves in Redis, for servers where many sessions share
// one backend.
type RedisStore struct {
	client *redis.Client
	ids    *ids
	log    logrus.FieldLogger
}

var _ Store = (*RedisStore)(nil)

// OpenRedis connects to addr and checks the connection.
func OpenRedis(ctx context.Context, addr string, log logrus.FieldLogger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("savegame: redis %s: %w", addr, err)
	}
	return NewRedisStore(client, log), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, log logrus.FieldLogger) *RedisStore {
	return &RedisStore{client: client, ids: newIDs(nil), log: log.WithField("store", "redis")}
}

func (s *RedisStore) buildKey(id string) string { return saveKeyPrefix + id }

func (s *RedisStore) Save(ctx context.Context, snap *engine.Snapshot) (string, error) {
	data, err := encode(snap)
	if err != nil {
		return "", err
	}
	id, err := s.ids.next()
	if err != nil {
		return "", err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.buildKey(id.String()), data, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(id.Time()), Member: id.String()})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("savegame: store in redis: %w", err)
	}
	s.log.WithFields(logrus.Fields{"id": id.String(), "bytes": len(data)}).Debug("saved")
	return id.String(), nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*engine.Snapshot, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.buildKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("savegame: get from redis: %w", err)
	}
	return decode(data)
}

func (s *RedisStore) Latest(ctx context.Context) (string, error) {
	ids, err := s.client.ZRevRange(ctx, indexKey, 0, 0).Result()
	if err != nil {
		return "", fmt.Errorf("savegame: scan redis: %w", err)
	}
	if len(ids) == 0 {
		return "", ErrNotFound
	}
	return ids[0], nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, s.buildKey(id))
	pipe.ZRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("savegame: delete from redis: %w", err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error { return s.client.Close() }
