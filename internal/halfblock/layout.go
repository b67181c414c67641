package halfblock

import (
	"github.com/llehouerou/halftone/internal/canvas"
)

// Layout describes where and at what size an image lands in a region.
// Target dimensions are in pixels, offsets in cells relative to the
// region's top-left corner.
type Layout struct {
	TargetWidth  int
	TargetHeight int
	OffsetX      int
	OffsetY      int
}

// Empty reports whether the layout renders nothing.
func (l Layout) Empty() bool {
	return l.TargetWidth <= 0 || l.TargetHeight <= 0
}

// Rows returns the number of glyph rows the layout covers.
func (l Layout) Rows() int {
	return l.TargetHeight / 2
}

// ComputeLayout maps an image of imgW×imgH pixels onto a cell region.
// One cell holds one pixel horizontally and two vertically, so the
// region's pixel budget is W × 2H.
//
// Without upscaling the target size is clamped to min(region, image)
// per axis, so the image is only ever shrunk. With upscaling it is
// exactly the region's pixel size, stretching as needed. Both
// dimensions are then rounded down to even so every cell maps to a
// full pixel pair; the resulting image is centered in the region.
//
// A zero-size region or image yields a zero layout. No cell of the
// layout falls outside the region.
func ComputeLayout(region canvas.Rect, imgW, imgH int, upscale bool) Layout {
	if region.Empty() || imgW <= 0 || imgH <= 0 {
		return Layout{}
	}

	var w, h int
	if upscale {
		w = region.W
		h = region.H * 2
	} else {
		w = min(region.W, imgW)
		h = min(region.H*2, imgH)
	}

	if w%2 == 1 {
		w--
	}
	if h%2 == 1 {
		h--
	}
	if w <= 0 || h <= 0 {
		return Layout{}
	}

	return Layout{
		TargetWidth:  w,
		TargetHeight: h,
		OffsetX:      max(0, (region.W-w)/2),
		OffsetY:      max(0, (region.H-h/2)/2),
	}
}
