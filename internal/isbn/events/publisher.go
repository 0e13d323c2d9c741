package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"isbnsplit/pkg/kafka"
	"isbnsplit/pkg/middleware"
	"isbnsplit/pkg/model"
)

const (
	EventDecomposed = "isbn.decomposed"
	EventRejected   = "isbn.rejected"

	SchemaVersion = "1"
)

// DecompositionEvent is the JSON value of every published message.
type DecompositionEvent struct {
	Input  string               `json:"input"`
	Valid  bool                 `json:"valid"`
	Kind   string               `json:"kind"`
	Groups *model.Decomposition `json:"groups,omitempty"`
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaPublisher publishes one event per decomposition keyed by the
// normalized input, so repeated inputs land on the same partition.
type KafkaPublisher struct {
	producer messagePublisher
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, source: source}
}

func (p *KafkaPublisher) PublishDecomposition(ctx context.Context, input string, result model.ValidationResult) error {
	msg, err := p.buildMessage(ctx, input, result)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", msg.GetEventType(), err)
	}
	return nil
}

func (p *KafkaPublisher) buildMessage(ctx context.Context, input string, result model.ValidationResult) (kafka.Message, error) {
	event := DecompositionEvent{
		Input: input,
		Valid: result.OK(),
		Kind:  result.Kind().String(),
	}

	eventType := EventRejected
	if groups, ok := result.Groups(); ok {
		d := groups.Decomposition()
		event.Groups = &d
		eventType = EventDecomposed
	}

	correlationID := middleware.RequestIDFromContext(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return kafka.NewMessage().
		WithKey(partitionKey(input)).
		WithValue(event).
		WithEventType(eventType).
		WithSource(p.source).
		WithCorrelationID(correlationID).
		WithSchemaVersion(SchemaVersion).
		Build()
}

// An empty line still produces a rejection event; kafka refuses empty keys.
func partitionKey(input string) string {
	if input == "" {
		return "<empty>"
	}
	return input
}
