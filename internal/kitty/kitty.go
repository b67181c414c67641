// Package kitty implements the kitty terminal graphics protocol:
// transmitting PNG images to the terminal, placing them by ID, and
// deleting them again.
package kitty

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Protocol escape sequence delimiters.
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"
)

// Kitty requires chunked transmission; each chunk carries at most
// 4096 bytes of base64 payload.
const chunkSize = 4096

// Transmit encodes img as PNG and returns the escape sequence that
// sends it to the terminal under the given ID. The image is
// transmitted but not displayed (a=t).
func Transmit(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitPNG(buf.Bytes(), id)
}

// TransmitPNG returns the escape sequence transmitting pre-encoded PNG
// data under the given ID.
func TransmitPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	// a=t: transmit only (don't display)
	// f=100: PNG format
	// i=ID: image ID for later reference
	// q=2: quiet mode (suppress responses)
	// m=1 while more chunks follow
	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// Place returns the escape sequence displaying a previously
// transmitted image at the 1-based terminal position (row, col),
// sized in cells. A fixed placement ID (p=1) makes repositioning
// replace the previous placement instead of leaving ghost images, and
// C=1 keeps the cursor where it was.
func Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete returns the escape sequence removing a transmitted image and
// all of its placements (a=d, d=i).
func Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// Placeholder returns a block of spaces covering the image area so
// layout code can measure plain text instead of escape sequences.
func Placeholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
