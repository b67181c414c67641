package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/halftone/internal/ui/action"
	"github.com/llehouerou/halftone/internal/ui/testutil"
)

func newHarness(t *testing.T, contexts ...string) (*testutil.PopupHarness, *Model) {
	t.Helper()
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, 24)
	return testutil.NewPopupHarness(&m), &m
}

func TestCloseKeys(t *testing.T) {
	for _, key := range []string{"?", "q", "esc"} {
		t.Run(key, func(t *testing.T) {
			h, _ := newHarness(t, "global")
			if key == "esc" {
				h.SendEscape()
			} else {
				h.SendKey(key)
			}

			cmd := h.LastCommand()
			if cmd == nil {
				t.Fatal("no command emitted")
			}
			raw := testutil.ExecuteCmd(cmd)
			msg, ok := raw.(action.Msg)
			if !ok {
				t.Fatalf("message type = %T, want action.Msg", raw)
			}
			if _, ok := msg.Action.(Close); !ok {
				t.Fatalf("action = %T, want Close", msg.Action)
			}
		})
	}
}

func TestScrollKeys(t *testing.T) {
	// All three contexts give the listing more lines than a 24-row
	// terminal shows, so there is room to scroll.
	h, m := newHarness(t, "global", "browser", "viewer")

	h.SendDown()
	h.SendDown()
	afterArrows := m.scrollOffset
	if afterArrows == 0 {
		t.Fatal("scroll offset still 0 after scrolling down")
	}

	h.SendKey("j")
	if m.scrollOffset <= afterArrows {
		t.Error("j did not scroll down")
	}

	h.SendUp()
	if m.scrollOffset != afterArrows {
		t.Errorf("scroll offset = %d after up, want %d", m.scrollOffset, afterArrows)
	}

	h.SendKey("k")
	if m.scrollOffset >= afterArrows {
		t.Error("k did not scroll up")
	}
}

func TestScrollStopsAtTop(t *testing.T) {
	h, m := newHarness(t, "global")

	h.SendUp()
	h.SendUp()

	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d, want 0 at the top", m.scrollOffset)
	}
}

func TestViewContent(t *testing.T) {
	h, _ := newHarness(t, "viewer")

	for _, want := range []string{"Help", "Image Viewer", "close"} {
		if err := h.AssertViewContains(want); err != "" {
			t.Error(err)
		}
	}
}

func TestViewEmptyWithoutSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})
	h := testutil.NewPopupHarness(&m)

	if h.View() != "" {
		t.Errorf("view = %q, want empty before SetSize", h.View())
	}
}

func TestAllCategoriesVisibleWhenTall(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global", "viewer"})
	m.SetSize(80, 100)
	h := testutil.NewPopupHarness(&m)

	for _, want := range []string{"Global", "Image Viewer"} {
		if err := h.AssertViewContains(want); err != "" {
			t.Error(err)
		}
	}
}

func TestCategoryOrderFixed(t *testing.T) {
	m := New()
	m.SetContexts([]string{"viewer", "global"})
	m.SetSize(80, 100)
	h := testutil.NewPopupHarness(&m)

	view := testutil.StripANSI(h.View())
	gi := strings.Index(view, "Global")
	vi := strings.Index(view, "Image Viewer")
	if gi == -1 || vi == -1 {
		t.Fatal("missing category headers in view")
	}
	if gi > vi {
		t.Error("Global should render before Image Viewer")
	}
}

func TestSetContextsResetsScroll(t *testing.T) {
	h, m := newHarness(t, "global", "browser", "viewer")

	h.SendDown()
	h.SendDown()
	if m.scrollOffset == 0 {
		t.Fatal("setup: could not scroll")
	}

	m.SetContexts([]string{"global"})
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d after SetContexts, want 0", m.scrollOffset)
	}
}
