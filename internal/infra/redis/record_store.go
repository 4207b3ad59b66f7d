package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RecordStore is the Redis implementation of app.RecordStore: one plain
// string per key under a common prefix, no expiry. Results must outlive the
// day so the once-per-day gate holds across restarts.
type RecordStore struct {
	client *redis.Client
	prefix string
}

func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client, prefix: "mvp:record:"}
}

func (s *RecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RecordStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
