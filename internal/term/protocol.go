// Package term decides how images are drawn in the current terminal
// and answers pixel-geometry questions about it.
package term

import (
	"os"
	"strings"
)

// Protocol is a way of putting image pixels on the screen.
type Protocol int

const (
	// Halfblocks renders two pixels per cell with '▄' and truecolor
	// SGR attributes. Works in any truecolor terminal.
	Halfblocks Protocol = iota
	// Kitty transmits the image to the terminal over the kitty
	// graphics protocol and places it by ID.
	Kitty
)

func (p Protocol) String() string {
	switch p {
	case Kitty:
		return "kitty"
	default:
		return "halfblocks"
	}
}

// ParseProtocol maps a protocol name from config or environment to a
// Protocol. Unknown or empty names report false.
func ParseProtocol(s string) (Protocol, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kitty":
		return Kitty, true
	case "halfblocks", "half-blocks", "blocks":
		return Halfblocks, true
	}
	return Halfblocks, false
}

// Select resolves the protocol to use, in order: the
// HALFTONE_PROTOCOL environment variable, the configured name, then
// terminal detection. Halfblocks is the fallback because it works
// everywhere.
func Select(configured string) Protocol {
	if p, ok := ParseProtocol(os.Getenv("HALFTONE_PROTOCOL")); ok {
		return p
	}
	if p, ok := ParseProtocol(configured); ok {
		return p
	}
	return Detect()
}

// Detect returns the best protocol for the current terminal based on
// environment variables.
func Detect() Protocol {
	if IsKittySupported() {
		return Kitty
	}
	return Halfblocks
}

// IsKittySupported checks if the terminal supports the kitty graphics
// protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support the kitty
	// protocol. Check early because parent terminal env vars (e.g.
	// GHOSTTY_RESOURCES_DIR) can leak into Contour when launched from
	// a kitty-capable terminal.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if version := os.Getenv("KONSOLE_VERSION"); version != "" {
		if len(version) >= 4 && version[:4] >= "2204" {
			return true
		}
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
