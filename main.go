package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/app"
	"github.com/llehouerou/halftone/internal/config"
	"github.com/llehouerou/halftone/internal/errmsg"
	"github.com/llehouerou/halftone/internal/icons"
	"github.com/llehouerou/halftone/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	defer stateMgr.Close()

	// Optional argument: a folder or image to open, overriding the
	// saved session.
	var startPath string
	if len(os.Args) > 1 {
		startPath, err = filepath.Abs(os.Args[1])
		if err != nil {
			return err
		}
	}

	m, err := app.New(cfg, stateMgr, startPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "halftone: %v\n", err)
		os.Exit(1)
	}
}
