package log

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionIn, "IN"},
		{DirectionOut, "OUT"},
		{DirectionLocal, "LOCAL"},
		{Direction(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLayerString(t *testing.T) {
	tests := []struct {
		l    Layer
		want string
	}{
		{LayerApplication, "APPLICATION"},
		{LayerComponent, "COMPONENT"},
		{LayerBackend, "BACKEND"},
		{Layer(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("Layer(%d).String() = %q, want %q", tt.l, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryCommand, "COMMAND"},
		{CategoryState, "STATE"},
		{CategoryCommit, "COMMIT"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStateEntityString(t *testing.T) {
	tests := []struct {
		s    StateEntity
		want string
	}{
		{StateEntityConnection, "CONNECTION"},
		{StateEntityComponent, "COMPONENT"},
		{StateEntity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("StateEntity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestEventComponentName(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"Command", Event{Command: &CommandEvent{Component: "followMe"}}, "followMe"},
		{"ComponentState", Event{StateChange: &StateChangeEvent{Entity: StateEntityComponent, Component: "guided"}}, "guided"},
		{"ConnectionState", Event{StateChange: &StateChangeEvent{Entity: StateEntityConnection}}, ""},
		{"Commit", Event{Commit: &CommitEvent{Components: []string{"guided"}}}, ""},
		{"Empty", Event{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.ComponentName(); got != tt.want {
				t.Errorf("ComponentName() = %q, want %q", got, tt.want)
			}
		})
	}
}
