package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello", "hello"},
		{"color codes removed", "\x1b[38;2;255;0;0mred\x1b[0m", "red"},
		{"bold removed", "\x1b[1mbold\x1b[22m", "bold"},
		{"empty string", "", ""},
		{"only codes", "\x1b[0m\x1b[1m", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
