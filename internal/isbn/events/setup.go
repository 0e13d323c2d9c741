package events

import (
	"fmt"

	"isbnsplit/pkg/config"
	"isbnsplit/pkg/kafka"
	kafka_config "isbnsplit/pkg/kafka/config"
	kafka_middleware "isbnsplit/pkg/kafka/middleware"
	"isbnsplit/pkg/logger"
)

// Events bundles the publisher with the producer behind it.
type Events struct {
	Publisher *KafkaPublisher
	Producer  *kafka.Producer
	Metrics   *kafka_middleware.Metrics
	log       *logger.Logger
}

// Setup returns nil when event publishing is disabled.
func Setup(cfg *config.Config, source string) (*Events, error) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Event publishing disabled")
		return nil, nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		return nil, err
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.EventsTopic, cfg.EventsDLQTopic, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	metrics := kafka_middleware.NewMetrics()
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware(metrics))
	}

	cfg.Log.Info("Event publishing enabled",
		"topic", cfg.EventsTopic,
		"dlq_topic", cfg.EventsDLQTopic,
	)

	return &Events{
		Publisher: NewKafkaPublisher(producer, source),
		Producer:  producer,
		Metrics:   metrics,
		log:       cfg.Log,
	}, nil
}

// Close logs the producer counters and closes the producer.
func (e *Events) Close() error {
	e.Metrics.LogMetrics(e.log)
	return e.Producer.Close()
}
