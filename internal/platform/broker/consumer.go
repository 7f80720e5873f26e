package broker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// MessageHandler processes one raw message from a topic.
type MessageHandler func(ctx context.Context, topic string, payload []byte) error

// KafkaConsumer reads one topic within a shared consumer group. Offsets are
// committed after the read, so handlers run with at-least-once semantics.
type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

// Consume loops until the context is cancelled. Read errors and handler
// errors are logged and skipped; one bad message never ends the loop.
func (c *KafkaConsumer) Consume(ctx context.Context, handler MessageHandler) {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		slog.Info("event received",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
		)
		if err := handler(ctx, m.Topic, m.Value); err != nil {
			slog.Warn("event handler error", slog.String("topic", m.Topic), slog.Any("error", err))
		}
	}
}
