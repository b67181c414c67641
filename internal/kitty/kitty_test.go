package kitty

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test PNG: %v", err)
	}
	return buf.Bytes()
}

// payload extracts the base64 content of the first chunk.
func payload(cmd string) string {
	start := strings.Index(cmd, ";")
	end := strings.Index(cmd, escEnd)
	if start == -1 || end == -1 || start >= end {
		return ""
	}
	return cmd[start+1 : end]
}

func TestTransmitPNG_SmallImage(t *testing.T) {
	cmd, err := TransmitPNG(encodeTestPNG(t, 10, 10), 1)
	if err != nil {
		t.Fatalf("TransmitPNG() error: %v", err)
	}

	if !strings.HasPrefix(cmd, escStart) {
		t.Error("command should start with escStart")
	}
	if !strings.HasSuffix(cmd, escEnd) {
		t.Error("command should end with escEnd")
	}
	for _, param := range []string{"a=t", "f=100", "i=1", "q=2"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command missing %s", param)
		}
	}
}

func TestTransmitPNG_LargeDataChunked(t *testing.T) {
	// 4000 raw bytes base64-encode past the 4096 chunk limit.
	data := make([]byte, 4000)
	for i := range data {
		data[i] = byte(i % 256)
	}

	cmd, err := TransmitPNG(data, 42)
	if err != nil {
		t.Fatalf("TransmitPNG() error: %v", err)
	}

	if chunks := strings.Count(cmd, escStart); chunks < 2 {
		t.Errorf("expected multiple chunks, got %d", chunks)
	}
	if !strings.Contains(cmd, "m=1") {
		t.Error("first chunk should announce a continuation with m=1")
	}

	lastChunk := cmd[strings.LastIndex(cmd, escStart):]
	if !strings.Contains(lastChunk, "m=0") {
		t.Error("last chunk should have m=0")
	}

	firstChunk, rest, found := strings.Cut(cmd, escEnd)
	if !found {
		t.Fatal("could not find escEnd in command")
	}
	if !strings.Contains(firstChunk, "i=42") {
		t.Error("first chunk should carry the image ID")
	}
	secondStart := strings.Index(rest, escStart)
	secondEnd := strings.Index(rest[secondStart:], escEnd)
	secondChunk := rest[secondStart : secondStart+secondEnd]
	if strings.Contains(secondChunk, "i=") {
		t.Error("subsequent chunks should not repeat the image ID")
	}
}

func TestTransmitPNG_RoundTripsPayload(t *testing.T) {
	pngData := encodeTestPNG(t, 10, 10)

	cmd, err := TransmitPNG(pngData, 1)
	if err != nil {
		t.Fatalf("TransmitPNG() error: %v", err)
	}

	var encoded strings.Builder
	for _, part := range strings.Split(cmd, escEnd) {
		if part == "" {
			continue
		}
		encoded.WriteString(payload(part + escEnd))
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded.String())
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, pngData) {
		t.Error("decoded payload doesn't match original PNG data")
	}
}

func TestTransmit(t *testing.T) {
	cmd, err := Transmit(image.NewRGBA(image.Rect(0, 0, 10, 10)), 5)
	if err != nil {
		t.Fatalf("Transmit() error: %v", err)
	}

	if !strings.HasPrefix(cmd, escStart) {
		t.Error("command should start with escStart")
	}
	if !strings.Contains(cmd, "i=5") {
		t.Error("command should contain image ID")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload(cmd))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(decoded)); err != nil {
		t.Errorf("payload is not a decodable PNG: %v", err)
	}
}

func TestPlace(t *testing.T) {
	cmd := Place(42, 5, 10, 8, 4)

	if !strings.Contains(cmd, "\x1b[s") || !strings.Contains(cmd, "\x1b[u") {
		t.Error("command should save and restore the cursor")
	}
	if !strings.Contains(cmd, "\x1b[5;10H") {
		t.Error("command should position cursor at row 5, col 10")
	}
	for _, param := range []string{"a=p", "i=42", "p=1", "c=8", "r=4", "C=1", "q=2"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command missing %s", param)
		}
	}
}

func TestPlace_DifferentPositions(t *testing.T) {
	tests := []struct {
		row, col int
	}{
		{1, 1},
		{10, 20},
		{100, 50},
	}

	for _, tt := range tests {
		cmd := Place(1, tt.row, tt.col, 8, 4)
		want := fmt.Sprintf("\x1b[%d;%dH", tt.row, tt.col)
		if !strings.Contains(cmd, want) {
			t.Errorf("Place(%d, %d) should position cursor with %q", tt.row, tt.col, want)
		}
	}
}

func TestDelete(t *testing.T) {
	cmd := Delete(42)

	if !strings.HasPrefix(cmd, escStart) || !strings.HasSuffix(cmd, escEnd) {
		t.Error("command should be a single escape sequence")
	}
	for _, param := range []string{"a=d", "d=i", "i=42", "q=2"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command missing %s", param)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{8, 4},
		{10, 2},
		{1, 1},
	}

	for _, tt := range tests {
		got := Placeholder(tt.width, tt.height)
		lines := strings.Split(got, "\n")
		if len(lines) != tt.height {
			t.Errorf("Placeholder(%d, %d) = %d lines, want %d", tt.width, tt.height, len(lines), tt.height)
		}
		for i, line := range lines {
			if line != strings.Repeat(" ", tt.width) {
				t.Errorf("Placeholder(%d, %d) line %d = %q", tt.width, tt.height, i, line)
			}
		}
	}
}

func TestPlaceholder_ZeroDimensions(t *testing.T) {
	for _, tt := range [][2]int{{0, 4}, {8, 0}, {0, 0}, {-1, 4}} {
		if got := Placeholder(tt[0], tt[1]); got != "" {
			t.Errorf("Placeholder(%d, %d) = %q, want empty", tt[0], tt[1], got)
		}
	}
}
