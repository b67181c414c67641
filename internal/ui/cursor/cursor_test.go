package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down one within view", 0, 1, 10, 8, 1, 0},
		{"up one within view", 4, -1, 10, 8, 3, 0},
		{"clamped at end", 9, 5, 10, 8, 9, 2},
		{"clamped at start", 0, -3, 10, 8, 0, 0},
		{"scrolls past bottom margin", 0, 7, 20, 8, 7, 2},
		{"page-sized step", 0, 8, 30, 8, 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.start, tt.listLen, tt.height)
			c.Move(tt.delta, tt.listLen, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.Move(1, 0, 8)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 0/0 on empty list", c.Pos(), c.Offset())
	}
}

func TestJump(t *testing.T) {
	c := New(2)

	c.Jump(15, 20, 8)
	if c.Pos() != 15 {
		t.Errorf("pos = %d, want 15", c.Pos())
	}
	if start, end := c.VisibleRange(20, 8); c.Pos() < start || c.Pos() >= end {
		t.Errorf("pos %d outside visible range [%d, %d)", c.Pos(), start, end)
	}

	c.Jump(99, 20, 8)
	if c.Pos() != 19 {
		t.Errorf("pos = %d, want clamp to 19", c.Pos())
	}
}

func TestJumpStartEnd(t *testing.T) {
	c := New(2)
	c.Jump(10, 20, 8)

	c.JumpEnd(20, 8)
	if c.Pos() != 19 {
		t.Errorf("pos = %d, want 19 after JumpEnd", c.Pos())
	}
	if c.Offset() != 12 {
		t.Errorf("offset = %d, want 12 so the last row is visible", c.Offset())
	}

	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 0/0 after JumpStart", c.Pos(), c.Offset())
	}
}

func TestScrollMargin(t *testing.T) {
	c := New(3)

	// Walking down one row at a time must keep the margin below the
	// selection until the end of the list pins the window.
	for i := 0; i < 10; i++ {
		c.Move(1, 30, 10)
		if c.Pos() >= c.Offset()+10-3 && c.Offset() != 20 {
			t.Fatalf("pos %d too close to bottom edge (offset %d)", c.Pos(), c.Offset())
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name       string
		pos        int
		listLen    int
		height     int
		wantOffset int
	}{
		{"mid list", 10, 30, 8, 6},
		{"near top clamps to zero", 1, 30, 8, 0},
		{"near end clamps to last window", 29, 30, 8, 22},
		{"list shorter than view", 2, 5, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.pos, tt.listLen, tt.height)
			c.Center(tt.listLen, tt.height)
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
			if c.Pos() != tt.pos {
				t.Errorf("pos = %d, want %d unchanged", c.Pos(), tt.pos)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(2)
	c.Jump(9, 10, 8)

	if moved := c.ClampToBounds(5); !moved {
		t.Error("ClampToBounds(5) = false, want true when pos was out of range")
	}
	if c.Pos() != 4 {
		t.Errorf("pos = %d, want 4", c.Pos())
	}

	if moved := c.ClampToBounds(5); moved {
		t.Error("ClampToBounds(5) = true, want false when already in range")
	}

	if moved := c.ClampToBounds(0); !moved {
		t.Error("ClampToBounds(0) = false, want true when resetting")
	}
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 0/0 for empty list", c.Pos(), c.Offset())
	}
}

func TestEnsureVisibleAfterShrink(t *testing.T) {
	c := New(2)
	c.Jump(25, 30, 8)

	// Filtering the list down leaves the offset past the new end.
	c.ClampToBounds(10)
	c.EnsureVisible(10, 8)

	if c.Offset() > 2 {
		t.Errorf("offset = %d, want at most 2 for a 10-item list", c.Offset())
	}
	if start, end := c.VisibleRange(10, 8); c.Pos() < start || c.Pos() >= end {
		t.Errorf("pos %d outside visible range [%d, %d)", c.Pos(), start, end)
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(2)

	if start, end := c.VisibleRange(0, 8); start != 0 || end != 0 {
		t.Errorf("empty list range = [%d, %d), want [0, 0)", start, end)
	}
	if start, end := c.VisibleRange(10, 0); start != 0 || end != 0 {
		t.Errorf("zero height range = [%d, %d), want [0, 0)", start, end)
	}
	if start, end := c.VisibleRange(5, 8); start != 0 || end != 5 {
		t.Errorf("short list range = [%d, %d), want [0, 5)", start, end)
	}

	c.Jump(19, 20, 8)
	if start, end := c.VisibleRange(20, 8); start != 12 || end != 20 {
		t.Errorf("scrolled range = [%d, %d), want [12, 20)", start, end)
	}
}

func TestReset(t *testing.T) {
	c := New(2)
	c.Jump(15, 20, 8)
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 0/0 after Reset", c.Pos(), c.Offset())
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		wantPos int
	}{
		{"j", 0, 1},
		{"down", 0, 1},
		{"k", 3, 2},
		{"up", 3, 2},
		{"g", 10, 0},
		{"home", 10, 0},
		{"G", 0, 19},
		{"end", 0, 19},
		{"pgdown", 0, 8},
		{"pgup", 10, 2},
		{"ctrl+d", 0, 4},
		{"ctrl+u", 10, 6},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.start, 20, 8)
			if !c.HandleKey(tt.key, 20, 8) {
				t.Fatalf("HandleKey(%q) = false, want true", tt.key)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	c := New(2)
	c.Jump(5, 20, 8)
	if c.HandleKey("x", 20, 8) {
		t.Error(`HandleKey("x") = true, want false for an unbound key`)
	}
	if c.Pos() != 5 {
		t.Errorf("pos = %d, want 5 unchanged", c.Pos())
	}
}
