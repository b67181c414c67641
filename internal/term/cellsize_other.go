//go:build !unix

package term

// CellSize returns the assumed terminal cell dimensions in pixels on
// platforms without TIOCGWINSZ.
func CellSize() (cellW, cellH int) {
	return 8, 16
}
