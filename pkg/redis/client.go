package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

var pingClient = func(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Init initializes the Redis client
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return pingClient(ctx, client)
}

// SetClient sets the Redis client (used for testing)
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// Close releases the client connection pool
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// IsNil reports a missing key or an empty list pop
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Set stores a key-value pair with expiration
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes a key
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX sets a key only if it does not exist
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}

// LPush prepends values to a list
func LPush(ctx context.Context, key string, values ...interface{}) error {
	return client.LPush(ctx, key, values...).Err()
}

// BRPopLPush atomically moves the tail of source to the head of destination,
// blocking up to timeout. An empty source yields an IsNil error.
func BRPopLPush(ctx context.Context, source, destination string, timeout time.Duration) (string, error) {
	return client.BRPopLPush(ctx, source, destination, timeout).Result()
}

// RPopLPush is the non-blocking variant of BRPopLPush
func RPopLPush(ctx context.Context, source, destination string) (string, error) {
	return client.RPopLPush(ctx, source, destination).Result()
}

// LRem removes count occurrences of value from a list
func LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error) {
	return client.LRem(ctx, key, count, value).Result()
}

// LLen returns list length, zero for a missing key
func LLen(ctx context.Context, key string) (int64, error) {
	return client.LLen(ctx, key).Result()
}

// ZAdd adds member to a sorted set with score
func ZAdd(ctx context.Context, key string, score float64, member interface{}) error {
	return client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// ZCard returns sorted set size, zero for a missing key
func ZCard(ctx context.Context, key string) (int64, error) {
	return client.ZCard(ctx, key).Result()
}

var moveDueScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', '0', ARGV[2])
for _, member in ipairs(due) do
	redis.call('ZREM', KEYS[1], member)
	redis.call('LPUSH', KEYS[2], member)
end
return #due
`)

// MoveDue atomically moves up to limit members of zset scored at most maxScore
// to the head of list. It returns how many were moved.
func MoveDue(ctx context.Context, zset, list string, maxScore float64, limit int64) (int64, error) {
	return moveDueScript.Run(ctx, client, []string{zset, list}, maxScore, limit).Int64()
}
