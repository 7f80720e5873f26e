package broker

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Start verifies broker connectivity, then spawns one consumer goroutine per
// topic feeding the handler. An unreachable broker fails startup: the
// subsystem cannot run disconnected from its event source.
func Start(ctx context.Context, brokers []string, groupID string, topics []string, handler MessageHandler) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("dial kafka broker %s: %w", brokers[0], err)
	}
	_ = conn.Close()

	for _, topic := range topics {
		go func(tp string) {
			NewKafkaConsumer(brokers, groupID, tp).Consume(ctx, handler)
		}(topic)
	}
	return nil
}
