package jobs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"e-commerce.backend/internal/infrastructure/queue"
	"e-commerce.backend/pkg/logger"
)

type depthSource interface {
	Depths(ctx context.Context, workerID string) (queue.Depths, error)
}

// QueueStatsJob periodically publishes email queue depth as gauges
type QueueStatsJob struct {
	source   depthSource
	workerID string
	schedule string
	depth    *prometheus.GaugeVec
	Cron     *cron.Cron
}

func NewQueueStatsJob(source depthSource, workerID, schedule string, reg prometheus.Registerer) (*QueueStatsJob, error) {
	depth := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ecommerce",
		Subsystem: "email_queue",
		Name:      "depth",
		Help:      "Number of emails per queue list.",
	}, []string{"list"})
	if err := reg.Register(depth); err != nil {
		return nil, err
	}

	return &QueueStatsJob{
		source:   source,
		workerID: workerID,
		schedule: schedule,
		depth:    depth,
		Cron:     cron.New(),
	}, nil
}

// Start samples once, then on every schedule tick
func (j *QueueStatsJob) Start() error {
	j.Run()
	if _, err := j.Cron.AddJob(j.schedule, j); err != nil {
		return err
	}
	j.Cron.Start()
	logger.Info(context.Background(), "Queue stats job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running sample to finish
func (j *QueueStatsJob) Stop() {
	<-j.Cron.Stop().Done()
}

// Run implements cron.Job
func (j *QueueStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := j.source.Depths(ctx, j.workerID)
	if err != nil {
		logger.Error(ctx, "Failed to sample email queue", zap.Error(err))
		return
	}
	j.depth.WithLabelValues("pending").Set(float64(d.Pending))
	j.depth.WithLabelValues("processing").Set(float64(d.Processing))
	j.depth.WithLabelValues("delayed").Set(float64(d.Delayed))
	j.depth.WithLabelValues("dead").Set(float64(d.Dead))
}
