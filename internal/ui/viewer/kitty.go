package viewer

import (
	"bytes"
	"image/png"
	"strings"
	"sync/atomic"

	"github.com/nfnt/resize"

	"github.com/llehouerou/halftone/internal/canvas"
	"github.com/llehouerou/halftone/internal/halfblock"
	"github.com/llehouerou/halftone/internal/kitty"
	"github.com/llehouerou/halftone/internal/term"
)

// nextImageID provides unique kitty image IDs across the process.
var nextImageID uint32

// kittyState tracks the image currently transmitted to the terminal
// and the cell geometry of its placement inside the pane interior.
type kittyState struct {
	id         uint32
	cols, rows int
	offX, offY int
}

// prepareKitty resizes the image for the given interior area, queues
// the transmit escape sequence and records the placement geometry.
// The half-block layout drives the cell geometry so both protocols
// agree on where the image lands.
func (m *Model) prepareKitty(area canvas.Rect) {
	bounds := m.img.Bounds()
	layout := halfblock.ComputeLayout(area, bounds.Dx(), bounds.Dy(), m.upscale)
	if layout.Empty() {
		m.dropKittyImage()
		return
	}

	cols := layout.TargetWidth
	rows := layout.Rows()
	cellW, cellH := term.CellSize()
	pxW, pxH := cols*cellW, rows*cellH

	// The filter participates in the cache key so cycling filters never
	// serves pixels resampled by the previous one.
	key := m.path + "#" + halfblock.FilterName(m.filter)
	data := m.cache.Get(key, pxW, pxH)
	if data == nil {
		resized := resize.Resize(uint(pxW), uint(pxH), m.img, m.filter)
		var buf bytes.Buffer
		if err := png.Encode(&buf, resized); err != nil {
			m.dropKittyImage()
			return
		}
		data = buf.Bytes()
		_ = m.cache.Put(key, pxW, pxH, data)
	}

	id := atomic.AddUint32(&nextImageID, 1)
	seq, err := kitty.TransmitPNG(data, id)
	if err != nil {
		m.dropKittyImage()
		return
	}

	var sb strings.Builder
	if m.kitty.id != 0 {
		sb.WriteString(kitty.Delete(m.kitty.id))
	}
	sb.WriteString(seq)

	m.kitty = kittyState{
		id:   id,
		cols: cols,
		rows: rows,
		offX: area.X + layout.OffsetX,
		offY: area.Y + layout.OffsetY,
	}
	m.transmit = sb.String()
}

// dropKittyImage queues deletion of the transmitted image, if any.
func (m *Model) dropKittyImage() {
	if m.kitty.id == 0 {
		return
	}
	m.transmit = kitty.Delete(m.kitty.id)
	m.kitty = kittyState{}
}

// PendingTransmit returns the queued kitty escape payload and clears
// it. The caller must write the payload to the terminal before the
// next placement command. Empty when nothing is pending.
func (m *Model) PendingTransmit() string {
	s := m.transmit
	m.transmit = ""
	return s
}

// PlacementCmd returns the escape sequence that positions the
// transmitted image, given the 1-based screen cell of the pane
// interior's top-left corner. Empty when nothing is placeable.
func (m Model) PlacementCmd(row, col int) string {
	if m.protocol != term.Kitty || m.kitty.id == 0 {
		return ""
	}
	return kitty.Place(m.kitty.id, row+m.kitty.offY, col+m.kitty.offX, m.kitty.cols, m.kitty.rows)
}

// HidePlacementCmd returns the escape sequence that removes the
// current placement while keeping the transmitted data, so a later
// PlacementCmd needs no retransmit. Empty when nothing is placed.
func (m Model) HidePlacementCmd() string {
	if m.protocol != term.Kitty || m.kitty.id == 0 {
		return ""
	}
	return kitty.Delete(m.kitty.id)
}
