package infrastructure

import (
	"context"
	"log/slog"

	"mediBookNotify/internal/modules/notifications/application/port"
)

// HandlerRegistry maps broker topics to their handlers. Exactly one handler
// may be registered per topic; a later registration replaces the earlier one.
type HandlerRegistry struct {
	handlers map[string]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	r.handlers[h.Topic()] = h
}

// Topics returns every registered topic name.
func (r *HandlerRegistry) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

func (r *HandlerRegistry) Dispatch(ctx context.Context, topic string, payload []byte) error {
	handler, ok := r.handlers[topic]
	if !ok {
		slog.Debug("no handler registered for topic", slog.String("topic", topic))
		return nil
	}
	return handler.Handle(ctx, payload)
}
