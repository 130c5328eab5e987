package queue

import (
	"strings"
	"testing"
	"time"
)

func TestNewLookupRecordedRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 7, 30, 0, 0, time.FixedZone("EST", -5*3600))
	msg := NewLookupRecorded("lookup-1", "req-1", 40, "windy", []string{"shirt", "fleece"}, at)

	if msg.Type != TypeLookupRecorded {
		t.Fatalf("unexpected type %q", msg.Type)
	}
	if msg.RecordedAt != "2026-03-14T12:30:00Z" {
		t.Fatalf("expected UTC timestamp, got %q", msg.RecordedAt)
	}

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}
	got, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if got.LookupID != "lookup-1" || got.Bucket != 40 || len(got.Items) != 2 || got.Version != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestNewLookupRecordedNilItemsEncodesArray(t *testing.T) {
	payload, err := EncodeMessage(NewLookupRecorded("id", "", 10, "calm", nil, time.Now()))
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}
	if got := string(payload); !strings.Contains(got, `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", got)
	}
	if strings.Contains(string(payload), "requestId") {
		t.Fatalf("expected requestId omitted, got %s", payload)
	}
}

func TestDecodeMessageRequiresType(t *testing.T) {
	if _, err := DecodeMessage([]byte(`{"lookupId":"x"}`)); err == nil {
		t.Fatalf("expected error for untyped message")
	}
	if _, err := EncodeMessage(Message{}); err == nil {
		t.Fatalf("expected error encoding untyped message")
	}
}
