package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"isbnsplit/pkg/kafka"
	"isbnsplit/pkg/logger"
)

// Metrics holds producer counters
type Metrics struct {
	MessagesPublished       int64
	MessagesPublishedFailed int64
	PublishDurationTotal    int64 // Nanoseconds
}

// NewMetrics returns an empty metrics set
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.MessagesPublished, 0)
	atomic.StoreInt64(&m.MessagesPublishedFailed, 0)
	atomic.StoreInt64(&m.PublishDurationTotal, 0)
}

func (m *Metrics) Published() int64 {
	return atomic.LoadInt64(&m.MessagesPublished)
}

func (m *Metrics) Failed() int64 {
	return atomic.LoadInt64(&m.MessagesPublishedFailed)
}

// GetPublishRate returns messages published per second
func (m *Metrics) GetPublishRate(duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(m.Published()) / duration.Seconds()
}

// GetAvgPublishDuration returns the average duration of every publish attempt
func (m *Metrics) GetAvgPublishDuration() time.Duration {
	attempts := m.Published() + m.Failed()
	if attempts == 0 {
		return 0
	}
	total := atomic.LoadInt64(&m.PublishDurationTotal)
	return time.Duration(total / attempts)
}

// LogMetrics writes a snapshot of the counters at info level
func (m *Metrics) LogMetrics(log *logger.Logger) {
	log.Info("Kafka producer metrics",
		"published", m.Published(),
		"failed", m.Failed(),
		"avg_duration", m.GetAvgPublishDuration().String(),
	)
}

// MetricsProducerMiddleware tracks producer metrics
func MetricsProducerMiddleware(m *Metrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		atomic.AddInt64(&m.PublishDurationTotal, int64(time.Since(start)))

		if err != nil {
			atomic.AddInt64(&m.MessagesPublishedFailed, 1)
		} else {
			atomic.AddInt64(&m.MessagesPublished, 1)
		}

		return err
	}
}
