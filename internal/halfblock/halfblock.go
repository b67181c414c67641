// Package halfblock renders raster images into terminal cell grids
// using the lower half block glyph. Each cell shows two vertically
// stacked pixels: the background color carries the upper pixel, the
// foreground the lower one, doubling the effective vertical resolution.
package halfblock

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"github.com/llehouerou/halftone/internal/canvas"
)

const halfBlock = '▄'

// Image is a render-once widget for a single raster image. Configure
// it with the chainable setters, then call Draw. The image is only
// borrowed; the widget keeps no state across calls and the same
// configuration always renders the same cells.
type Image struct {
	img     image.Image
	style   canvas.Style
	upscale bool
	filter  resize.InterpolationFunction
	frame   *canvas.Box
}

// New creates a widget for img with default settings: no base style,
// no upscaling, Lanczos3 resampling, no frame.
func New(img image.Image) Image {
	return Image{
		img:    img,
		filter: resize.Lanczos3,
	}
}

// Style sets the base style applied to the whole region and inherited
// by every glyph cell.
func (i Image) Style(s canvas.Style) Image {
	i.style = s
	return i
}

// Upscale controls whether images smaller than the region are
// stretched to fill it. Defaults to false.
func (i Image) Upscale(on bool) Image {
	i.upscale = on
	return i
}

// Filter sets the resampling filter used when resizing.
// Defaults to resize.Lanczos3.
func (i Image) Filter(f resize.InterpolationFunction) Image {
	i.filter = f
	return i
}

// Frame draws a border around the region; the image renders inside it.
func (i Image) Frame(b canvas.Box) Image {
	i.frame = &b
	return i
}

// Draw renders the image into region on s. The base style is applied
// over the full region first, then the frame (when set) shrinks the
// drawable area, then the image is resized per ComputeLayout and
// written one glyph per pixel column and pixel row pair. Degenerate
// inputs render nothing; Draw never fails.
func (i Image) Draw(region canvas.Rect, s canvas.Surface) {
	if region.Empty() {
		return
	}
	s.SetStyle(region, i.style)

	area := region
	if i.frame != nil {
		area = i.frame.Draw(s, region)
	}
	if i.img == nil || area.Empty() {
		return
	}

	bounds := i.img.Bounds()
	layout := ComputeLayout(area, bounds.Dx(), bounds.Dy(), i.upscale)
	if layout.Empty() {
		return
	}

	// resize.Resize derives a zero dimension from the aspect ratio, so
	// the empty-layout return above must stay ahead of this call.
	resized := resize.Resize(uint(layout.TargetWidth), uint(layout.TargetHeight), i.img, i.filter)
	rb := resized.Bounds()

	xStart := area.X + layout.OffsetX
	yStart := area.Y + layout.OffsetY

	rows := layout.Rows()
	for row := 0; row < rows; row++ {
		for x := 0; x < layout.TargetWidth; x++ {
			upper := resized.At(rb.Min.X+x, rb.Min.Y+row*2)
			lower := resized.At(rb.Min.X+x, rb.Min.Y+row*2+1)

			st := i.style
			st.Bg = pixelColor(upper)
			st.Fg = pixelColor(lower)
			s.SetCell(xStart+x, yStart+row, halfBlock, st)
		}
	}
}

func pixelColor(c color.Color) canvas.Color {
	r, g, b, _ := c.RGBA()
	return canvas.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
