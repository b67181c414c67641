package halfblock

import (
	"strings"

	"github.com/nfnt/resize"
)

// filterOrder lists the resize filters in cycling order, cheapest
// first.
var filterOrder = []resize.InterpolationFunction{
	resize.NearestNeighbor,
	resize.Bilinear,
	resize.Bicubic,
	resize.MitchellNetravali,
	resize.Lanczos2,
	resize.Lanczos3,
}

var filterNames = map[resize.InterpolationFunction]string{
	resize.NearestNeighbor:   "nearest",
	resize.Bilinear:          "bilinear",
	resize.Bicubic:           "bicubic",
	resize.MitchellNetravali: "mitchell",
	resize.Lanczos2:          "lanczos2",
	resize.Lanczos3:          "lanczos3",
}

// ParseFilter maps a filter name from config to its interpolation
// function. Unknown names report false.
func ParseFilter(name string) (resize.InterpolationFunction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range filterNames {
		if n == name {
			return f, true
		}
	}
	return resize.Lanczos3, false
}

// FilterName returns the display name of a filter.
func FilterName(f resize.InterpolationFunction) string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return "unknown"
}

// NextFilter returns the filter after f in cycling order, wrapping
// around at the end.
func NextFilter(f resize.InterpolationFunction) resize.InterpolationFunction {
	for i, cur := range filterOrder {
		if cur == f {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return filterOrder[0]
}
