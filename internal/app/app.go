// internal/app/app.go
package app

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/config"
	"github.com/llehouerou/halftone/internal/errmsg"
	"github.com/llehouerou/halftone/internal/halfblock"
	"github.com/llehouerou/halftone/internal/imaging"
	"github.com/llehouerou/halftone/internal/keymap"
	"github.com/llehouerou/halftone/internal/kitty"
	"github.com/llehouerou/halftone/internal/state"
	"github.com/llehouerou/halftone/internal/term"
	"github.com/llehouerou/halftone/internal/ui/browser"
	"github.com/llehouerou/halftone/internal/ui/viewer"
)

// FocusTarget identifies which pane receives unhandled keys.
type FocusTarget int

const (
	FocusBrowser FocusTarget = iota
	FocusViewer
)

// Model is the root application model containing all state.
type Model struct {
	Browser        browser.Model
	Viewer         viewer.Model
	Focus          FocusTarget
	BrowserVisible bool
	Popups         PopupManager
	StateMgr       state.Interface
	Width          int
	Height         int

	keys *keymap.Resolver

	current         imaging.Info // metadata of the displayed image
	statusMessage   string
	pendingLoad     string // path of the most recently requested image
	pendingTransmit string
	lastDir         string
	browserWidth    int
}

// New creates the application model from configuration, restoring the
// previous session where possible. A non-empty startPath overrides the
// session: a folder is opened directly, an image file selects itself
// inside its folder.
func New(cfg *config.Config, stateMgr state.Interface, startPath string) (Model, error) {
	vcfg := cfg.GetViewerConfig()

	// Start folder: argument > saved session > config default > cwd
	startDir := cfg.DefaultFolder
	var savedSelection string
	var restoreMsg string
	browserVisible := true
	session, err := stateMgr.GetSession()
	if err != nil {
		restoreMsg = errmsg.Format(errmsg.OpSessionLoad, err)
	} else if session != nil {
		if _, statErr := os.Stat(session.CurrentPath); statErr == nil {
			startDir = session.CurrentPath
			savedSelection = session.SelectedName
		}
		browserVisible = session.BrowserVisible
	}
	if startPath != "" {
		info, err := os.Stat(startPath)
		if err != nil {
			return Model{}, err
		}
		if info.IsDir() {
			startDir = startPath
			savedSelection = ""
		} else {
			startDir = filepath.Dir(startPath)
			savedSelection = filepath.Base(startPath)
		}
	}
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return Model{}, err
		}
	}

	b := browser.New()
	if err := b.Load(startDir); err != nil {
		return Model{}, err
	}
	if savedSelection != "" {
		b.SelectByName(savedSelection)
	}

	protocol := term.Select(vcfg.Protocol)
	var cache *kitty.Cache
	if protocol == term.Kitty {
		// Viewing works without the cache, just slower
		cache, _ = kitty.NewCache("")
	}
	v := viewer.New(protocol, cache)

	// Display options: saved settings > config
	upscale, frame, filterName := vcfg.Upscale, vcfg.Frame, vcfg.Filter
	settings, err := stateMgr.GetSettings()
	if err != nil {
		restoreMsg = errmsg.Format(errmsg.OpSettingsLoad, err)
	} else if settings != nil {
		upscale, frame = settings.Upscale, settings.Frame
		if settings.Filter != "" {
			filterName = settings.Filter
		}
	}
	v.SetUpscale(upscale)
	v.SetFrame(frame)
	if f, ok := halfblock.ParseFilter(filterName); ok {
		v.SetFilter(f)
	}

	m := Model{
		Browser:        b,
		Viewer:         v,
		BrowserVisible: browserVisible,
		Popups:         NewPopupManager(),
		StateMgr:       stateMgr,
		keys:           keymap.NewResolver(keymap.Bindings),
		statusMessage:  restoreMsg,
		lastDir:        startDir,
	}
	if browserVisible {
		m.setFocus(FocusBrowser)
	} else {
		m.setFocus(FocusViewer)
	}
	return m, nil
}

// Init implements tea.Model. When the restored selection is an image
// it is displayed right away.
func (m Model) Init() tea.Cmd {
	if sel := m.Browser.Selected(); sel != nil && !sel.IsDir {
		return tea.Batch(loadImageCmd(sel.Path), m.Browser.ProbeSelectedCmd())
	}
	return nil
}
