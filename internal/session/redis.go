package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore returns a Redis-backed Store so sessions survive restarts and
// are shared between instances. The constructor pings the server and fails
// fast when it is unreachable.
func NewRedisStore(addr, password string, db int, ttl time.Duration) (Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &redisStore{client: client, ttl: ttl, prefix: "storefront:session:"}, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (Data, bool, error) {
	// GETEX refreshes the TTL in the same round trip, keeping expiry sliding.
	raw, err := s.client.GetEx(ctx, s.prefix+id, s.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Data{}, false, nil
		}
		return Data{}, false, err
	}
	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Data{}, false, err
	}
	return data, true, nil
}

func (s *redisStore) Save(ctx context.Context, id string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+id, raw, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() {
	_ = s.client.Close()
}
