// Package browser provides the directory pane for picking images.
package browser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/imaging"
	"github.com/llehouerou/halftone/internal/ui"
	"github.com/llehouerou/halftone/internal/ui/cursor"
)

// NavigationChangedMsg is sent when the current folder or selection changes.
type NavigationChangedMsg struct {
	Dir      string
	Selected string // entry name, empty when the folder has no entries
}

// OpenMsg is sent when the user opens an image entry.
type OpenMsg struct {
	Path string
}

// ProbeResultMsg carries image header info for the selected entry.
type ProbeResultMsg struct {
	Path string
	Info imaging.Info
	Err  error
}

// footer row showing probe info or the filter input
const footerHeight = 1

// Model is the directory browser pane.
type Model struct {
	ui.Base
	dir       string
	entries   []Entry // full listing of dir
	visible   []Entry // listing after filter
	cur       cursor.Cursor
	filter    textinput.Model
	filtering bool   // filter input is capturing keys
	info      string // probe result for the selected image
	err       error  // last listing failure, shown inline
}

// New creates an empty browser. Call Load to point it at a directory.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/"
	ti.CharLimit = 128

	return Model{
		cur:    cursor.New(ui.ScrollMargin),
		filter: ti,
	}
}

// SetSize sets the pane dimensions and resizes the filter input.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.filter.Width = max(width-ui.BorderHeight-4, 8)
}

// Load reads the given directory into the browser, clearing any filter
// and resetting the cursor to the first entry.
func (m *Model) Load(dir string) error {
	entries, err := ListDir(dir)
	if err != nil {
		m.err = err
		return err
	}

	m.dir = dir
	m.entries = entries
	m.err = nil
	m.info = ""
	m.clearFilter()
	m.cur.Reset()
	return nil
}

// Dir returns the directory currently listed.
func (m Model) Dir() string {
	return m.dir
}

// Selected returns the entry under the cursor, or nil.
func (m Model) Selected() *Entry {
	if len(m.visible) == 0 || m.cur.Pos() >= len(m.visible) {
		return nil
	}
	return &m.visible[m.cur.Pos()]
}

// SelectedName returns the name of the entry under the cursor, or empty.
func (m Model) SelectedName() string {
	if sel := m.Selected(); sel != nil {
		return sel.Name
	}
	return ""
}

// SelectByName moves the cursor to the entry with the given name.
// Selection stays put when the name is not in the listing.
func (m *Model) SelectByName(name string) bool {
	for i, e := range m.visible {
		if e.Name == name {
			m.cur.Jump(i, len(m.visible), m.listHeight())
			m.cur.Center(len(m.visible), m.listHeight())
			return true
		}
	}
	return false
}

// Images returns the paths of all image files in the current listing,
// in display order.
func (m Model) Images() []string {
	images := make([]string, 0, len(m.visible))
	for _, e := range m.visible {
		if !e.IsDir {
			images = append(images, e.Path)
		}
	}
	return images
}

// Filtering reports whether the filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.filtering
}

// ProbeSelectedCmd returns a command probing the selected image file, if any.
func (m Model) ProbeSelectedCmd() tea.Cmd {
	if sel := m.Selected(); sel != nil && !sel.IsDir {
		return probeCmd(sel.Path)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProbeResultMsg:
		m.applyProbe(msg)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	before := m.selectedPath()

	if m.cur.HandleKey(key, len(m.visible), m.listHeight()) {
		if m.selectedPath() != before {
			m.info = ""
			return m, m.selectionChangedCmd()
		}
		return m, nil
	}

	switch key {
	case "enter", "l", "right":
		return m.open()

	case "h", "left", "backspace":
		return m.ascend()

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filter.Value() != "" {
			m.clearFilter()
			if m.selectedPath() != before {
				m.info = ""
				return m, m.selectionChangedCmd()
			}
		}
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	before := m.selectedPath()

	switch msg.String() {
	case "esc":
		m.clearFilter()
		if m.selectedPath() != before {
			m.info = ""
			return m, m.selectionChangedCmd()
		}
		return m, nil

	case "enter":
		// Keep the filter, return keys to list navigation
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()

	if m.selectedPath() != before {
		m.info = ""
		return m, tea.Batch(cmd, m.selectionChangedCmd())
	}
	return m, cmd
}

// open descends into the selected directory or emits OpenMsg for a file.
func (m Model) open() (Model, tea.Cmd) {
	sel := m.Selected()
	if sel == nil {
		return m, nil
	}

	if sel.IsDir {
		if err := m.Load(sel.Path); err != nil {
			return m, nil
		}
		return m, m.selectionChangedCmd()
	}

	path := sel.Path
	return m, func() tea.Msg { return OpenMsg{Path: path} }
}

// ascend moves to the parent directory and selects the folder we came from.
func (m Model) ascend() (Model, tea.Cmd) {
	parent := filepath.Dir(m.dir)
	if parent == m.dir {
		return m, nil // filesystem root
	}

	prev := filepath.Base(m.dir)
	if err := m.Load(parent); err != nil {
		return m, nil
	}
	m.SelectByName(prev)
	return m, m.selectionChangedCmd()
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filter.SetValue("")
	m.filter.Blur()
	m.visible = m.entries
	m.cur.ClampToBounds(len(m.visible))
	m.cur.EnsureVisible(len(m.visible), m.listHeight())
}

func (m *Model) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.visible = m.entries
	} else {
		filtered := make([]Entry, 0, len(m.entries))
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Name), query) {
				filtered = append(filtered, e)
			}
		}
		m.visible = filtered
	}
	m.cur.ClampToBounds(len(m.visible))
	m.cur.EnsureVisible(len(m.visible), m.listHeight())
}

func (m *Model) applyProbe(msg ProbeResultMsg) {
	sel := m.Selected()
	if sel == nil || sel.Path != msg.Path {
		return // stale result
	}
	if msg.Err != nil {
		m.info = ""
		return
	}
	m.info = fmt.Sprintf("%d×%d %s", msg.Info.Width, msg.Info.Height, msg.Info.Format)
}

func (m Model) selectedPath() string {
	if sel := m.Selected(); sel != nil {
		return sel.Path
	}
	return ""
}

// selectionChangedCmd notifies the app and probes the selected image.
func (m Model) selectionChangedCmd() tea.Cmd {
	cmds := []tea.Cmd{m.navigationChangedCmd()}
	if cmd := m.ProbeSelectedCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) navigationChangedCmd() tea.Cmd {
	return func() tea.Msg {
		return NavigationChangedMsg{
			Dir:      m.dir,
			Selected: m.SelectedName(),
		}
	}
}

func probeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := imaging.Probe(path)
		return ProbeResultMsg{Path: path, Info: info, Err: err}
	}
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead + footerHeight)
}
