// Package app contains application-level types and messages for the TUI.
package app

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/imaging"
)

// ImageLoadedMsg is sent when an asynchronous image load finishes.
type ImageLoadedMsg struct {
	Path string
	Img  image.Image
	Info imaging.Info
	Err  error
}

// loadImageCmd probes and decodes an image file off the update loop.
func loadImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := imaging.Probe(path)
		if err != nil {
			return ImageLoadedMsg{Path: path, Err: err}
		}
		img, err := imaging.Load(path)
		return ImageLoadedMsg{Path: path, Img: img, Info: info, Err: err}
	}
}
