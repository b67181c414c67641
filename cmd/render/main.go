// Renders an image as half-block cells to stdout, without the TUI.
// Useful for piping into files or sharing terminal screenshots.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/llehouerou/halftone/internal/canvas"
	"github.com/llehouerou/halftone/internal/halfblock"
	"github.com/llehouerou/halftone/internal/imaging"
)

func main() {
	width := flag.Int("w", 80, "output width in cells")
	height := flag.Int("h", 24, "output height in cells")
	upscale := flag.Bool("upscale", false, "stretch small images to fill the area")
	filterName := flag.String("filter", "lanczos3", "resize filter: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	frame := flag.Bool("frame", false, "draw a border with the file name")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: render [flags] IMAGE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	filter, ok := halfblock.ParseFilter(*filterName)
	if !ok {
		fmt.Fprintf(os.Stderr, "render: unknown filter %q\n", *filterName)
		os.Exit(2)
	}

	path := flag.Arg(0)
	img, err := imaging.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	c := canvas.New(*width, *height)
	w := halfblock.New(img).Upscale(*upscale).Filter(filter)
	if *frame {
		w = w.Frame(canvas.NewBox().WithTitle(filepath.Base(path)))
	}
	w.Draw(c.Bounds(), c)

	fmt.Println(c.String())
}
