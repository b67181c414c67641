package keymap

import (
	"slices"
	"testing"
)

func TestResolve(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "browser"},
		{ActionToggleUpscale, []string{"u"}, "Toggle upscaling", "viewer"},
	})

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"u", ActionToggleUpscale},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionOpen, []string{"enter", "l"}, "Open", "browser"},
		{ActionOpen, []string{"enter"}, "Open", "viewer"},
	})

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", got)
	}
	// A key repeated across contexts lists once.
	if got := r.KeysFor(ActionOpen); !slices.Equal(got, []string{"enter", "l"}) {
		t.Errorf("KeysFor(open) = %v, want [enter l]", got)
	}
	if got := r.KeysFor(Action("missing")); got != nil {
		t.Errorf("KeysFor(missing) = %v, want nil", got)
	}
}

func TestLaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionJumpStart, []string{"g"}, "First entry", "browser"},
		{ActionReload, []string{"g"}, "Reload", "viewer"},
	})
	if got := r.Resolve("g"); got != ActionReload {
		t.Errorf("Resolve(g) = %q, want %q", got, ActionReload)
	}
}

func TestResolveDefaultTable(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"tab", ActionSwitchFocus},
		{"enter", ActionOpen},
		{"backspace", ActionParent},
		{"u", ActionToggleUpscale},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEmptyResolver(t *testing.T) {
	r := NewResolver(nil)
	if got := r.Resolve("q"); got != "" {
		t.Errorf("Resolve on empty table = %q, want empty", got)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty table = %v, want nil", keys)
	}
}
