package queue

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
)

// TypeLookupRecorded is published after a recommendation is stored.
const TypeLookupRecorded = "lookup.recorded"

const messageVersion = 1

var errMissingType = errors.New("queue message type is required")

// Message is the payload sent to downstream queue consumers.
type Message struct {
	Type       string   `json:"type"`
	LookupID   string   `json:"lookupId"`
	RequestID  string   `json:"requestId,omitempty"`
	Bucket     int      `json:"bucket"`
	Condition  string   `json:"condition"`
	Items      []string `json:"items"`
	RecordedAt string   `json:"recordedAt"`
	Version    int      `json:"version"`
}

// NewLookupRecorded builds a lookup.recorded message stamped with at.
func NewLookupRecorded(lookupID, requestID string, bucket int, condition string, items []string, at time.Time) Message {
	if items == nil {
		items = []string{}
	}
	return Message{
		Type:       TypeLookupRecorded,
		LookupID:   lookupID,
		RequestID:  requestID,
		Bucket:     bucket,
		Condition:  condition,
		Items:      items,
		RecordedAt: at.UTC().Format(time.RFC3339Nano),
		Version:    messageVersion,
	}
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	if msg.Type == "" {
		return nil, errMissingType
	}
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	if msg.Type == "" {
		return Message{}, errMissingType
	}
	return msg, nil
}
