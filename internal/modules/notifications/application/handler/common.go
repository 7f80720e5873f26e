package handler

import (
	"encoding/json"
	"fmt"
)

type validator interface {
	Validate() error
}

// decodeEvent unmarshals and validates one inbound payload. Failures are
// reported to the consumer loop, which logs and moves on; a malformed message
// never takes the subscription down.
func decodeEvent(topic string, payload []byte, event validator) error {
	if err := json.Unmarshal(payload, event); err != nil {
		return fmt.Errorf("decode %s payload: %w", topic, err)
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid %s payload: %w", topic, err)
	}
	return nil
}
