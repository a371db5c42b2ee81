// Package events publishes task events to a Kafka topic, one message per
// event keyed by task ID so that the events of a task stay ordered.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/task"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TaskEventMessage is the JSON value of a published message.
type TaskEventMessage struct {
	Type       string    `json:"type"`
	TaskID     string    `json:"task_id"`
	RouteID    string    `json:"route_id"`
	OrderID    *string   `json:"order_id,omitempty"`
	TaskType   string    `json:"task_type"`
	Status     string    `json:"status"`
	Previous   string    `json:"previous_status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type TaskEventPublisher struct {
	writer KafkaWriter
	logger *zap.Logger
}

// NewTaskEventPublisher connects to the brokers and makes sure the topic exists.
func NewTaskEventPublisher(brokers []string, topic string, logger *zap.Logger) (*TaskEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka: dial %s: %w", brokers[0], err)
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.String("topic", topic), zap.Error(err))
	}

	return NewTaskEventPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
	}, logger), nil
}

func NewTaskEventPublisherWithWriter(writer KafkaWriter, logger *zap.Logger) *TaskEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskEventPublisher{
		writer: writer,
		logger: logger.Named("kafka_producer"),
	}
}

// Publish writes all events in one batch. Events that cannot be serialized
// are logged and skipped.
func (p *TaskEventPublisher) Publish(ctx context.Context, events ...task.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := jsonMarshal(toMessage(event))
		if err != nil {
			p.logger.Error("failed to serialize event",
				zap.Error(err),
				zap.String("event_type", string(event.Type)),
				zap.String("task_id", event.TaskID.String()),
			)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.TaskID.String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.Type)},
			},
		})
	}
	if len(msgs) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write %d task events: %w", len(msgs), err)
	}
	p.logger.Debug("task events published", zap.Int("count", len(msgs)))
	return nil
}

func (p *TaskEventPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close Kafka writer", zap.Error(err))
	}
}

func toMessage(event task.Event) TaskEventMessage {
	msg := TaskEventMessage{
		Type:       string(event.Type),
		TaskID:     event.TaskID.String(),
		RouteID:    event.RouteID.String(),
		TaskType:   string(event.TaskType),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.OrderID != nil {
		orderID := event.OrderID.String()
		msg.OrderID = &orderID
	}
	if event.Type == task.EventStatusChanged {
		msg.Previous = event.Previous.String()
	}
	return msg
}
