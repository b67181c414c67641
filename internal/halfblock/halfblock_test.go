package halfblock

import (
	"image"
	"image/color"
	"testing"

	"github.com/nfnt/resize"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/halftone/internal/canvas"
)

type recordedCell struct {
	x, y  int
	r     rune
	style canvas.Style
}

type recordedFill struct {
	rect  canvas.Rect
	style canvas.Style
}

// drawRecorder captures raw surface calls so tests can check
// coordinates before any canvas clipping happens.
type drawRecorder struct {
	cells []recordedCell
	fills []recordedFill
}

func (d *drawRecorder) SetCell(x, y int, r rune, style canvas.Style) {
	d.cells = append(d.cells, recordedCell{x: x, y: y, r: r, style: style})
}

func (d *drawRecorder) SetStyle(rect canvas.Rect, style canvas.Style) {
	d.fills = append(d.fills, recordedFill{rect: rect, style: style})
}

func solidImage(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// stripedImage colors even pixel rows with one color and odd rows with
// another, which makes the upper/lower sourcing of each cell visible.
func stripedImage(w, h int, even, odd color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := even
		if y%2 == 1 {
			c = odd
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDraw_FillsRegionGrid(t *testing.T) {
	green := color.NRGBA{R: 20, G: 200, B: 40, A: 255}
	img := New(solidImage(20, 20, green))

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 10, 5), &rec)

	assert.Len(t, rec.cells, 50, "10x5 region should produce one cell per position")

	seen := make(map[[2]int]bool)
	for _, c := range rec.cells {
		assert.Equal(t, halfBlock, c.r)
		assert.Equal(t, canvas.RGB(20, 200, 40), c.style.Bg, "upper pixel color")
		assert.Equal(t, canvas.RGB(20, 200, 40), c.style.Fg, "lower pixel color")
		assert.True(t, c.x >= 0 && c.x < 10, "column %d outside region", c.x)
		assert.True(t, c.y >= 0 && c.y < 5, "row %d outside region", c.y)
		seen[[2]int{c.x, c.y}] = true
	}
	assert.Len(t, seen, 50, "every cell position written exactly once")
}

func TestDraw_RowPairMapping(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	// Image already at target size with nearest neighbor, so pixel
	// values pass through the resize untouched.
	img := New(stripedImage(10, 10, red, blue)).Filter(resize.NearestNeighbor)

	c := canvas.New(10, 5)
	img.Draw(c.Bounds(), c)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := c.At(x, y)
			assert.Equal(t, halfBlock, cell.Rune)
			assert.Equal(t, canvas.RGB(255, 0, 0), cell.Style.Bg, "cell (%d,%d) background from even pixel row", x, y)
			assert.Equal(t, canvas.RGB(0, 0, 255), cell.Style.Fg, "cell (%d,%d) foreground from odd pixel row", x, y)
		}
	}
}

func TestDraw_UpscaleFillsRegion(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	img := New(solidImage(3, 3, gray)).Upscale(true)

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 4, 4), &rec)

	assert.Len(t, rec.cells, 16, "3x3 image stretched to the full 4x4 region")
	for _, c := range rec.cells {
		assert.True(t, c.x >= 0 && c.x < 4)
		assert.True(t, c.y >= 0 && c.y < 4)
	}
}

func TestDraw_EmptyRegion(t *testing.T) {
	img := New(solidImage(8, 8, color.NRGBA{A: 255}))

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 0, 0), &rec)

	assert.Empty(t, rec.cells)
	assert.Empty(t, rec.fills)
}

func TestDraw_NoImage(t *testing.T) {
	style := canvas.Style{Bg: canvas.RGB(10, 10, 10)}
	img := New(nil).Style(style)

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 6, 3), &rec)

	assert.Empty(t, rec.cells, "no pixels to map")
	if assert.Len(t, rec.fills, 1, "base style still covers the region") {
		assert.Equal(t, canvas.NewRect(0, 0, 6, 3), rec.fills[0].rect)
		assert.Equal(t, style, rec.fills[0].style)
	}
}

func TestDraw_BaseStyleCarriedIntoCells(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	style := canvas.Style{Bold: true}
	img := New(solidImage(4, 4, white)).Style(style)

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 4, 2), &rec)

	if assert.Len(t, rec.fills, 1) {
		assert.Equal(t, canvas.NewRect(0, 0, 4, 2), rec.fills[0].rect)
		assert.Equal(t, style, rec.fills[0].style)
	}
	for _, c := range rec.cells {
		assert.True(t, c.style.Bold, "glyph cells inherit the base style")
	}
}

func TestDraw_CellsStayInsideRegion(t *testing.T) {
	img := solidImage(13, 29, color.NRGBA{R: 77, G: 1, B: 9, A: 255})

	for _, upscale := range []bool{false, true} {
		for w := 0; w <= 9; w++ {
			for h := 0; h <= 6; h++ {
				region := canvas.NewRect(2, 1, w, h)

				var rec drawRecorder
				New(img).Upscale(upscale).Draw(region, &rec)

				for _, c := range rec.cells {
					assert.True(t, region.Contains(c.x, c.y),
						"upscale=%v region %dx%d: cell (%d,%d) outside region", upscale, w, h, c.x, c.y)
				}
			}
		}
	}
}

func TestDraw_CenteredInRegion(t *testing.T) {
	img := New(solidImage(6, 6, color.NRGBA{G: 180, A: 255}))

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 20, 10), &rec)

	assert.Len(t, rec.cells, 6*3)
	for _, c := range rec.cells {
		assert.True(t, c.x >= 7 && c.x <= 12, "column %d not centered", c.x)
		assert.True(t, c.y >= 3 && c.y <= 5, "row %d not centered", c.y)
	}
}

func TestDraw_OffsetImageBounds(t *testing.T) {
	// Source bounds that do not start at the origin must not shift the
	// output.
	img := image.NewNRGBA(image.Rect(5, 7, 15, 17))
	for y := 7; y < 17; y++ {
		for x := 5; x < 15; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	var rec drawRecorder
	New(img).Filter(resize.NearestNeighbor).Draw(canvas.NewRect(0, 0, 10, 5), &rec)

	assert.Len(t, rec.cells, 50)
	for _, c := range rec.cells {
		assert.Equal(t, canvas.RGB(200, 0, 0), c.style.Bg)
	}
}

func TestDraw_Idempotent(t *testing.T) {
	img := New(stripedImage(9, 13, color.NRGBA{R: 250, G: 128, A: 255}, color.NRGBA{B: 99, A: 255}))

	first := canvas.New(12, 6)
	img.Draw(first.Bounds(), first)
	second := canvas.New(12, 6)
	img.Draw(second.Bounds(), second)

	assert.Equal(t, first.String(), second.String())
}

func TestDraw_FrameReservesBorder(t *testing.T) {
	img := New(solidImage(20, 20, color.NRGBA{R: 30, G: 30, B: 200, A: 255})).
		Frame(canvas.NewBox())

	var rec drawRecorder
	img.Draw(canvas.NewRect(0, 0, 10, 6), &rec)

	var glyphs, border int
	for _, c := range rec.cells {
		if c.r == halfBlock {
			glyphs++
			assert.True(t, c.x >= 1 && c.x <= 8, "glyph column %d on the frame", c.x)
			assert.True(t, c.y >= 1 && c.y <= 4, "glyph row %d on the frame", c.y)
		} else {
			border++
		}
	}
	assert.Equal(t, 8*4, glyphs, "image fills the frame interior")
	assert.NotZero(t, border, "frame border drawn")
}
