package domain

import (
	"testing"
	"time"
)

func TestEventCalculateHashDeterminism(t *testing.T) {
	event := &Event{
		ID:        "e1",
		Action:    "prompts.generated",
		Actor:     "system",
		Timestamp: time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
		PrevHash:  "prev",
	}

	first := event.CalculateHash()
	second := event.CalculateHash()
	if first != second {
		t.Fatalf("expected deterministic hash: %s vs %s", first, second)
	}

	event.ID = "e2"
	if first == event.CalculateHash() {
		t.Fatalf("hash should change when ID changes")
	}
}

func TestEventCalculateHashMetadataOrder(t *testing.T) {
	base := Event{
		ID:        "e1",
		Action:    "prompts.generated",
		Actor:     "system",
		Timestamp: time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	}

	a := base
	a.Metadata = map[string]interface{}{"session_id": "sess-1", "prompts": 3}
	b := base
	b.Metadata = map[string]interface{}{"prompts": 3, "session_id": "sess-1"}

	if a.CalculateHash() != b.CalculateHash() {
		t.Fatal("hash depends on metadata map iteration order")
	}

	c := base
	c.Metadata = map[string]interface{}{"session_id": "sess-2", "prompts": 3}
	if a.CalculateHash() == c.CalculateHash() {
		t.Fatal("hash should change when metadata values change")
	}
}
