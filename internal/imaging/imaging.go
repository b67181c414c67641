// Package imaging loads and inspects raster image files. Decoder
// registration happens here so every caller that goes through Load or
// Probe accepts the same set of formats.
package imaging

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Supported file extensions.
const (
	ExtPNG  = ".png"
	ExtJPG  = ".jpg"
	ExtJPEG = ".jpeg"
	ExtGIF  = ".gif"
	ExtWEBP = ".webp"
	ExtBMP  = ".bmp"
	ExtTIFF = ".tiff"
	ExtTIF  = ".tif"
)

// IsImageFile returns true if the path has a supported image file extension.
func IsImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtPNG, ExtJPG, ExtJPEG, ExtGIF, ExtWEBP, ExtBMP, ExtTIFF, ExtTIF:
		return true
	}
	return false
}

// Info describes an image file without its pixel data.
type Info struct {
	Path   string
	Format string // decoder name: "png", "jpeg", ...
	Width  int    // pixels
	Height int    // pixels
	Size   int64  // bytes on disk
}

// Load decodes the image at path. The first frame is returned for
// animated formats.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes an image from r in any of the registered formats.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Probe reads format and dimensions from the file header without
// decoding pixel data.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("read image header: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}

	return Info{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   st.Size(),
	}, nil
}
