package amqp

import (
	"encoding/json"
	"time"
)

// EntityChangeMessage announces that an account, category or record was
// created, updated or deleted. Consumers fetch the current state from
// the API; the message carries only the identity of the change.
type EntityChangeMessage struct {
	Entity    string    `json:"entity"`
	Op        string    `json:"op"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntityChangeMessage creates a change message stamped with the
// current time.
func NewEntityChangeMessage(entity, op string, id int64) *EntityChangeMessage {
	return &EntityChangeMessage{
		Entity:    entity,
		Op:        op,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *EntityChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EntityChangeMessageFromJSON creates a message from JSON bytes
func EntityChangeMessageFromJSON(data []byte) (*EntityChangeMessage, error) {
	var msg EntityChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
