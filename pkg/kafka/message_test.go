package kafka

import (
	"errors"
	"testing"
)

func TestMessageBuilder(t *testing.T) {
	msg, err := NewMessage().
		WithKey("9780393979503").
		WithValue(map[string]bool{"valid": true}).
		WithEventType("isbn.decomposed").
		WithCorrelationID("corr-1").
		WithSource("isbn-api").
		WithSchemaVersion("1").
		WithHeader("custom", "yes").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if msg.GetEventID() == "" {
		t.Error("event id should be generated")
	}
	if msg.GetEventType() != "isbn.decomposed" || msg.GetCorrelationID() != "corr-1" {
		t.Errorf("headers = %v", msg.Headers)
	}
	if v, ok := msg.GetHeader(HeaderTimestamp); !ok || v == "" {
		t.Error("timestamp header missing")
	}
	if v, _ := msg.GetHeader("custom"); v != "yes" {
		t.Errorf("custom header = %q", v)
	}

	var decoded map[string]bool
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	if !decoded["valid"] {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestMessageBuilder_ExplicitEventID(t *testing.T) {
	msg, err := NewMessage().WithKey("k").WithValue("v").WithEventID("evt-42").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if msg.GetEventID() != "evt-42" {
		t.Errorf("event id = %q", msg.GetEventID())
	}
}

func TestMessageBuilder_UnencodableValue(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Build() error = %v, want %v", err, ErrInvalidMessage)
	}
}
