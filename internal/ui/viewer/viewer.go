// Package viewer implements the image display pane. It renders the
// current image into the pane either as half-block cells or, when the
// terminal supports it, through the kitty graphics protocol.
package viewer

import (
	"image"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/llehouerou/halftone/internal/canvas"
	"github.com/llehouerou/halftone/internal/halfblock"
	"github.com/llehouerou/halftone/internal/kitty"
	"github.com/llehouerou/halftone/internal/term"
	"github.com/llehouerou/halftone/internal/ui"
)

// Model displays one image at a time. Rendering happens when the image,
// the pane size or a display option changes; View only wraps the
// memoized result in the panel border, so focus changes stay cheap.
type Model struct {
	ui.Base

	path string
	img  image.Image

	upscale bool
	filter  resize.InterpolationFunction
	frame   bool

	protocol  term.Protocol
	available term.Protocol
	cache     *kitty.Cache
	kitty     kittyState
	transmit  string

	rendered string
}

// New creates a viewer using the given protocol. cache may be nil,
// which disables the kitty resize cache.
func New(protocol term.Protocol, cache *kitty.Cache) Model {
	return Model{
		filter:    resize.Lanczos3,
		protocol:  protocol,
		available: protocol,
		cache:     cache,
	}
}

// SetImage replaces the displayed image. The path names the frame
// title and keys the resize cache.
func (m *Model) SetImage(path string, img image.Image) {
	m.path = path
	m.img = img
	m.refresh()
}

// SetSize stores the pane size and re-renders at the new geometry.
// Unchanged sizes are ignored so repeated window size messages do not
// retransmit the image.
func (m *Model) SetSize(width, height int) {
	if width == m.Width() && height == m.Height() {
		return
	}
	m.Base.SetSize(width, height)
	m.refresh()
}

// ToggleUpscale flips whether small images are stretched to fill the
// pane.
func (m *Model) ToggleUpscale() {
	m.upscale = !m.upscale
	m.refresh()
}

// SetUpscale sets the upscale flag, used when restoring a session.
func (m *Model) SetUpscale(on bool) {
	if on == m.upscale {
		return
	}
	m.upscale = on
	m.refresh()
}

// CycleFilter advances to the next resampling filter.
func (m *Model) CycleFilter() {
	m.filter = halfblock.NextFilter(m.filter)
	m.refresh()
}

// SetFilter sets the resampling filter, used when restoring a session.
func (m *Model) SetFilter(f resize.InterpolationFunction) {
	if f == m.filter {
		return
	}
	m.filter = f
	m.refresh()
}

// ToggleFrame flips the border drawn around the image area.
func (m *Model) ToggleFrame() {
	m.frame = !m.frame
	m.refresh()
}

// SetFrame sets the frame flag, used when restoring a session.
func (m *Model) SetFrame(on bool) {
	if on == m.frame {
		return
	}
	m.frame = on
	m.refresh()
}

// ToggleProtocol switches between the terminal's graphics protocol and
// plain half-blocks. On terminals without graphics support the viewer
// already runs on half-blocks and the toggle does nothing.
func (m *Model) ToggleProtocol() {
	if m.available == term.Halfblocks {
		return
	}
	if m.protocol == term.Halfblocks {
		m.protocol = m.available
	} else {
		m.protocol = term.Halfblocks
	}
	m.refresh()
}

// Path returns the path of the displayed image, empty when none.
func (m Model) Path() string {
	return m.path
}

// HasImage reports whether an image is loaded.
func (m Model) HasImage() bool {
	return m.img != nil
}

// Upscale reports whether upscaling is enabled.
func (m Model) Upscale() bool {
	return m.upscale
}

// FilterName returns the name of the active resampling filter.
func (m Model) FilterName() string {
	return halfblock.FilterName(m.filter)
}

// Frame reports whether the image frame is enabled.
func (m Model) Frame() bool {
	return m.frame
}

// Protocol returns the active rendering protocol.
func (m Model) Protocol() term.Protocol {
	return m.protocol
}

// refresh recomputes the pane content. For half-blocks the image is
// drawn into the canvas directly; for kitty the canvas carries only
// the frame and the pixels travel separately via PendingTransmit.
func (m *Model) refresh() {
	m.rendered = ""

	w := m.Width() - ui.BorderHeight
	h := m.Height() - ui.BorderHeight
	if w <= 0 || h <= 0 || m.img == nil {
		m.dropKittyImage()
		return
	}

	c := canvas.New(w, h)
	area := c.Bounds()

	var img image.Image
	if m.protocol == term.Halfblocks {
		img = m.img
		// After a protocol switch the terminal may still hold a placement.
		m.dropKittyImage()
	}
	widget := halfblock.New(img).Upscale(m.upscale).Filter(m.filter)
	if m.frame {
		widget = widget.Frame(canvas.NewBox().WithTitle(filepath.Base(m.path)))
	}
	widget.Draw(area, c)
	m.rendered = c.String()

	if m.protocol == term.Kitty {
		if m.frame {
			area = area.Inner(1)
		}
		m.prepareKitty(area)
	}
}
