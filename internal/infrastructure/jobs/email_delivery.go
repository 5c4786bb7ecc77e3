package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"e-commerce.backend/internal/infrastructure/mailer"
	"e-commerce.backend/internal/infrastructure/queue"
	"e-commerce.backend/pkg/logger"
)

type deliveryQueue interface {
	Reserve(ctx context.Context, workerID string, timeout time.Duration) (*queue.Delivery, error)
	Ack(ctx context.Context, d *queue.Delivery) error
	Retry(ctx context.Context, d *queue.Delivery) (bool, error)
	Recover(ctx context.Context, workerID string) (int, error)
}

// EmailDeliveryJob drains the outbound email queue
type EmailDeliveryJob struct {
	queue       deliveryQueue
	sender      mailer.Sender
	workerID    string
	pollTimeout time.Duration
	backoff     time.Duration
	stop        chan struct{}
}

func NewEmailDeliveryJob(q deliveryQueue, sender mailer.Sender, workerID string, pollTimeout time.Duration) *EmailDeliveryJob {
	return &EmailDeliveryJob{
		queue:       q,
		sender:      sender,
		workerID:    workerID,
		pollTimeout: pollTimeout,
		backoff:     time.Second,
		stop:        make(chan struct{}),
	}
}

func (j *EmailDeliveryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting email delivery job", zap.String("worker_id", j.workerID))

	if moved, err := j.queue.Recover(ctx, j.workerID); err != nil {
		logger.Error(ctx, "Failed to recover in-flight emails", zap.Error(err))
	} else if moved > 0 {
		logger.Warn(ctx, "Recovered in-flight emails", zap.Int("count", moved))
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Email delivery job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Email delivery job stopped")
			return
		default:
		}

		if err := j.processNext(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error(ctx, "Email queue unavailable", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-j.stop:
			case <-time.After(j.backoff):
			}
		}
	}
}

func (j *EmailDeliveryJob) Stop() {
	close(j.stop)
}

// processNext handles at most one email. Only queue failures are returned;
// send failures are retried through the queue.
func (j *EmailDeliveryJob) processNext(ctx context.Context) error {
	d, err := j.queue.Reserve(ctx, j.workerID, j.pollTimeout)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String("envelope_id", d.ID),
		zap.String("to", d.Message.To),
		zap.String("subject", d.Message.Subject),
		zap.Int("attempts", d.Attempts),
	}

	if sendErr := j.sender.Send(ctx, d.Message); sendErr != nil {
		dead, err := j.queue.Retry(ctx, d)
		if err != nil {
			return err
		}
		if dead {
			logger.Error(ctx, "Email moved to dead letter list", append(fields, zap.Error(sendErr))...)
		} else {
			logger.Warn(ctx, "Email delivery failed, requeued", append(fields, zap.Error(sendErr))...)
		}
		return nil
	}

	if err := j.queue.Ack(ctx, d); err != nil {
		return err
	}
	logger.Debug(ctx, "Email delivered", fields...)
	return nil
}
