package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/pkg/logger"
	"e-commerce.backend/pkg/redis"
	"e-commerce.backend/pkg/utils"
)

var (
	lpush      = redis.LPush
	brpoplpush = redis.BRPopLPush
	rpoplpush  = redis.RPopLPush
	lrem       = redis.LRem
	llen       = redis.LLen
	zadd       = redis.ZAdd
	zcard      = redis.ZCard
	moveDue    = redis.MoveDue
	newID      = utils.NewSortableID
	now        = time.Now
)

// Envelope is the wire format of a queued email
type Envelope struct {
	ID         string                `json:"id"`
	Attempts   int                   `json:"attempts"`
	EnqueuedAt time.Time             `json:"enqueued_at"`
	Message    entities.EmailMessage `json:"message"`
}

// Delivery is an envelope reserved by one worker. It stays in the worker's
// processing list until acked or retried.
type Delivery struct {
	Envelope
	raw        string
	processing string
}

// Depths is a snapshot of the queue lists
type Depths struct {
	Pending    int64
	Processing int64
	Delayed    int64
	Dead       int64
}

const (
	DefaultRetryBackoff    = 5 * time.Second
	DefaultMaxRetryBackoff = 5 * time.Minute

	// due retries moved back per Reserve
	promoteBatch = 100
)

// RedisQueue is an at-least-once list queue:
// producers LPUSH, workers BRPOPLPUSH into a private processing list.
// Failed sends wait in a sorted set scored by their next attempt time.
type RedisQueue struct {
	name        string
	maxAttempts int
	backoff     time.Duration
	maxBackoff  time.Duration
}

// NewRedisQueue creates a queue over the list name
func NewRedisQueue(name string, maxAttempts int) *RedisQueue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RedisQueue{
		name:        name,
		maxAttempts: maxAttempts,
		backoff:     DefaultRetryBackoff,
		maxBackoff:  DefaultMaxRetryBackoff,
	}
}

// WithRetryBackoff sets the delay before the first retry. Each further
// retry doubles it, up to limit.
func (q *RedisQueue) WithRetryBackoff(base, limit time.Duration) *RedisQueue {
	if base > 0 {
		q.backoff = base
	}
	q.maxBackoff = max(limit, q.backoff)
	return q
}

// RetryDelay is the wait before the attempt following attempts failures
func (q *RedisQueue) RetryDelay(attempts int) time.Duration {
	delay := min(q.backoff, q.maxBackoff)
	for i := 1; i < attempts && delay < q.maxBackoff; i++ {
		delay = min(delay*2, q.maxBackoff)
	}
	return delay
}

func (q *RedisQueue) processingKey(workerID string) string {
	return q.name + ":processing:" + workerID
}

func (q *RedisQueue) deadKey() string {
	return q.name + ":dead"
}

func (q *RedisQueue) delayedKey() string {
	return q.name + ":delayed"
}

func scoreAt(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Publish enqueues an email
func (q *RedisQueue) Publish(ctx context.Context, msg entities.EmailMessage) error {
	env := Envelope{
		ID:         newID(),
		EnqueuedAt: now().UTC(),
		Message:    msg,
	}
	return q.push(ctx, q.name, env)
}

func (q *RedisQueue) push(ctx context.Context, key string, env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	if err := lpush(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("failed to push to %s: %w", key, err)
	}
	return nil
}

// Reserve blocks up to timeout for the next email. Retries whose delay has
// passed are queued first. It returns nil, nil when the queue stayed empty
// or the popped payload was unreadable.
func (q *RedisQueue) Reserve(ctx context.Context, workerID string, timeout time.Duration) (*Delivery, error) {
	if _, err := moveDue(ctx, q.delayedKey(), q.name, scoreAt(now()), promoteBatch); err != nil {
		return nil, fmt.Errorf("failed to queue due retries: %w", err)
	}

	processing := q.processingKey(workerID)
	raw, err := brpoplpush(ctx, q.name, processing, timeout)
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}

	d := &Delivery{raw: raw, processing: processing}
	if err := json.Unmarshal([]byte(raw), &d.Envelope); err != nil {
		// unreadable payloads go straight to the dead list
		if derr := q.bury(ctx, processing, raw); derr != nil {
			return nil, derr
		}
		logger.Warn(ctx, "Undecodable email envelope moved to dead letter list",
			zap.String("queue", q.name), zap.Error(err))
		return nil, nil
	}
	return d, nil
}

// Ack drops a delivered email from the processing list
func (q *RedisQueue) Ack(ctx context.Context, d *Delivery) error {
	_, err := lrem(ctx, d.processing, 1, d.raw)
	return err
}

// Retry schedules a failed email for another attempt after RetryDelay.
// Past the attempt limit it moves to the dead list instead and dead is true.
func (q *RedisQueue) Retry(ctx context.Context, d *Delivery) (dead bool, err error) {
	env := d.Envelope
	env.Attempts++

	if env.Attempts >= q.maxAttempts {
		payload, err := json.Marshal(env)
		if err != nil {
			return false, fmt.Errorf("failed to encode envelope: %w", err)
		}
		if err := lpush(ctx, q.deadKey(), string(payload)); err != nil {
			return false, err
		}
		_, err = lrem(ctx, d.processing, 1, d.raw)
		return true, err
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return false, fmt.Errorf("failed to encode envelope: %w", err)
	}
	readyAt := now().Add(q.RetryDelay(env.Attempts))
	if err := zadd(ctx, q.delayedKey(), scoreAt(readyAt), string(payload)); err != nil {
		return false, fmt.Errorf("failed to delay retry: %w", err)
	}
	_, err = lrem(ctx, d.processing, 1, d.raw)
	return false, err
}

func (q *RedisQueue) bury(ctx context.Context, processing, raw string) error {
	if err := lpush(ctx, q.deadKey(), raw); err != nil {
		return err
	}
	_, err := lrem(ctx, processing, 1, raw)
	return err
}

// Recover returns emails a crashed worker left in its processing list to the
// queue. It reports how many were moved.
func (q *RedisQueue) Recover(ctx context.Context, workerID string) (int, error) {
	processing := q.processingKey(workerID)
	moved := 0
	for {
		_, err := rpoplpush(ctx, processing, q.name)
		if err != nil {
			if redis.IsNil(err) {
				return moved, nil
			}
			return moved, err
		}
		moved++
	}
}

// Depths samples list lengths for workerID
func (q *RedisQueue) Depths(ctx context.Context, workerID string) (Depths, error) {
	var d Depths
	var err error
	if d.Pending, err = llen(ctx, q.name); err != nil {
		return Depths{}, err
	}
	if d.Processing, err = llen(ctx, q.processingKey(workerID)); err != nil {
		return Depths{}, err
	}
	if d.Delayed, err = zcard(ctx, q.delayedKey()); err != nil {
		return Depths{}, err
	}
	if d.Dead, err = llen(ctx, q.deadKey()); err != nil {
		return Depths{}, err
	}
	return d, nil
}
