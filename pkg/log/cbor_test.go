package log

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func intPtr(v int) *int { return &v }

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "Command",
			event: Event{
				Timestamp:    ts,
				ConnectionID: "c7d0e8f2-5e1b-4cb8-9a55-3f0a2b1c9d00",
				Direction:    DirectionOut,
				Layer:        LayerApplication,
				Category:     CategoryCommand,
				DeviceID:     "anafi-01",
				Command: &CommandEvent{
					Component: "returnHome",
					Command:   "setTarget",
					Argument:  "CONTROLLER_POSITION",
					Accepted:  true,
				},
			},
		},
		{
			name: "StateChange",
			event: Event{
				Timestamp:    ts,
				ConnectionID: "conn-1",
				Direction:    DirectionIn,
				Layer:        LayerBackend,
				Category:     CategoryState,
				StateChange: &StateChangeEvent{
					Entity:    StateEntityComponent,
					Component: "manualCopter",
					OldState:  "IDLE",
					NewState:  "ACTIVE",
				},
			},
		},
		{
			name: "Commit",
			event: Event{
				Timestamp:    ts,
				ConnectionID: "conn-1",
				Direction:    DirectionLocal,
				Layer:        LayerComponent,
				Category:     CategoryCommit,
				Commit:       &CommitEvent{Components: []string{"manualCopter", "returnHome"}},
			},
		},
		{
			name: "Error",
			event: Event{
				Timestamp:    ts,
				ConnectionID: "conn-1",
				Direction:    DirectionLocal,
				Layer:        LayerBackend,
				Category:     CategoryError,
				Error: &ErrorEventData{
					Layer:   LayerBackend,
					Message: "command not acknowledged",
					Code:    intPtr(3),
					Context: "manualCopter.takeOff",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}
			got, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}

			if !got.Timestamp.Equal(tt.event.Timestamp) {
				t.Errorf("Timestamp: got %v, want %v", got.Timestamp, tt.event.Timestamp)
			}
			if got.ConnectionID != tt.event.ConnectionID {
				t.Errorf("ConnectionID: got %q, want %q", got.ConnectionID, tt.event.ConnectionID)
			}
			if got.Direction != tt.event.Direction || got.Layer != tt.event.Layer || got.Category != tt.event.Category {
				t.Errorf("header mismatch: got %v/%v/%v", got.Direction, got.Layer, got.Category)
			}
			if got.DeviceID != tt.event.DeviceID {
				t.Errorf("DeviceID: got %q, want %q", got.DeviceID, tt.event.DeviceID)
			}
			if got.ComponentName() != tt.event.ComponentName() {
				t.Errorf("ComponentName: got %q, want %q", got.ComponentName(), tt.event.ComponentName())
			}
		})
	}
}

func TestEventRoundTripPayloads(t *testing.T) {
	in := Event{
		Category: CategoryError,
		Error:    &ErrorEventData{Layer: LayerBackend, Message: "timeout", Code: intPtr(7), Context: "returnHome.activate"},
	}
	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if out.Error == nil {
		t.Fatal("Error payload lost")
	}
	if out.Error.Code == nil || *out.Error.Code != 7 {
		t.Errorf("Code: got %v, want 7", out.Error.Code)
	}
	if out.Error.Context != "returnHome.activate" {
		t.Errorf("Context: got %q", out.Error.Context)
	}
	if out.Command != nil || out.StateChange != nil || out.Commit != nil {
		t.Error("unexpected payloads decoded")
	}

	commit := Event{Category: CategoryCommit, Commit: &CommitEvent{Components: []string{"a", "b", "c"}}}
	data, _ = EncodeEvent(commit)
	out, _ = DecodeEvent(data)
	if out.Commit == nil || len(out.Commit.Components) != 3 || out.Commit.Components[2] != "c" {
		t.Errorf("Commit payload: got %+v", out.Commit)
	}
}

func TestEventUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{
		ConnectionID: "conn-1",
		Category:     CategoryCommand,
		Command:      &CommandEvent{Component: "guided", Command: "activate"},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var raw map[any]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("raw decode failed: %v", err)
	}
	for k := range raw {
		if _, ok := k.(uint64); !ok {
			t.Errorf("expected integer key, got %T (%v)", k, k)
		}
	}
	if _, ok := raw[uint64(10)]; !ok {
		t.Error("expected command payload under key 10")
	}
	if _, ok := raw[uint64(6)]; ok {
		t.Error("empty DeviceID should be omitted")
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		ConnectionID: "conn-1",
		Category:     CategoryState,
		StateChange:  &StateChangeEvent{Entity: StateEntityConnection, NewState: "CONNECTED"},
	}
	a, _ := EncodeEvent(event)
	b, _ := EncodeEvent(event)
	if !bytes.Equal(a, b) {
		t.Error("identical events encoded differently")
	}
}

func TestEncoderDecoderSequence(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i, name := range []string{"manualCopter", "returnHome", "lookAt"} {
		if err := enc.Encode(Event{
			ConnectionID: "conn-1",
			Category:     CategoryCommand,
			Command:      &CommandEvent{Component: name, Command: "activate", Accepted: i%2 == 0},
		}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	var names []string
	for {
		var e Event
		err := dec.Decode(&e)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		names = append(names, e.ComponentName())
	}
	if len(names) != 3 || names[0] != "manualCopter" || names[2] != "lookAt" {
		t.Errorf("unexpected sequence: %v", names)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("expected error decoding garbage")
	}
}
