package chat

import "testing"

func TestMaxScroll(t *testing.T) {
	tests := []struct {
		total, capacity, want int
	}{
		{0, 5, 0},
		{5, 5, 0},
		{10, 5, 5},
		{3, 5, 0},
		{100, 1, 99},
	}
	for _, tt := range tests {
		if got := MaxScroll(tt.total, tt.capacity); got != tt.want {
			t.Errorf("MaxScroll(%d, %d) = %d, want %d", tt.total, tt.capacity, got, tt.want)
		}
	}
}

func TestVisibleCapacity(t *testing.T) {
	tests := []struct {
		rows, want int
	}{
		{30, 20},  // 30/1.5
		{15, 10},  // 15/1.5
		{9, 7},    // small viewport uses 1.2: 9/1.2 = 7.5 -> 7
		{1, 1},    // floor of 1
		{0, 1},    // clamped
		{-5, 1},   // clamped
		{120, 80}, // 120/1.5
	}
	for _, tt := range tests {
		if got := VisibleCapacity(tt.rows); got != tt.want {
			t.Errorf("VisibleCapacity(%d) = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestScrollBoundsUnderOps(t *testing.T) {
	const total, capacity = 20, 5
	max := MaxScroll(total, capacity)

	var s Scroll
	ops := []func(){
		func() { s.Up(total, capacity) },
		func() { s.PageUp(total, capacity) },
		func() { s.PageUp(total, capacity) },
		func() { s.PageUp(total, capacity) },
		func() { s.PageUp(total, capacity) }, // overshoots, must clamp
		func() { s.Down(total, capacity) },
		func() { s.ToTop(total, capacity) },
		func() { s.PageDown(total, capacity) },
		func() { s.ToBottom() },
		func() { s.Down(total, capacity) }, // below zero, must clamp
	}
	for i, op := range ops {
		op()
		if s.Position < 0 || s.Position > max {
			t.Fatalf("op %d: position %d out of [0,%d]", i, s.Position, max)
		}
		if (s.Position == 0) != (s.Mode == ModeNormal) {
			t.Fatalf("op %d: mode %v inconsistent with position %d", i, s.Mode, s.Position)
		}
	}
}

func TestScrollToTopAndBottom(t *testing.T) {
	var s Scroll
	s.ToTop(50, 10)
	if s.Position != 40 || s.Mode != ModeScrolling {
		t.Errorf("after ToTop: position=%d mode=%v", s.Position, s.Mode)
	}
	s.ToBottom()
	if s.Position != 0 || s.Mode != ModeNormal {
		t.Errorf("after ToBottom: position=%d mode=%v", s.Position, s.Mode)
	}
}

func TestScrollClampOnResize(t *testing.T) {
	// Scrolled to max with capacity 10, then the window grows so the
	// capacity covers more: position must shrink to the new max.
	var s Scroll
	s.ToTop(50, 10) // position 40
	s.Clamp(50, 42) // new max is 8
	if s.Position != 8 {
		t.Errorf("position = %d, want 8", s.Position)
	}
	if s.Mode != ModeScrolling {
		t.Errorf("mode = %v, want scrolling", s.Mode)
	}

	// Capacity exceeding total collapses to live tail.
	s.Clamp(50, 60)
	if s.Position != 0 || s.Mode != ModeNormal {
		t.Errorf("after clamp beyond total: position=%d mode=%v", s.Position, s.Mode)
	}
}

func TestScrollAnchor(t *testing.T) {
	tests := []struct {
		name              string
		position          int
		appended, dropped int
		wantPos           int
		wantMode          Mode
	}{
		{"append while scrolled pins window", 10, 1, 0, 11, ModeScrolling},
		{"drop while scrolled slides window", 10, 0, 3, 7, ModeScrolling},
		{"append and drop together", 10, 2, 2, 10, ModeScrolling},
		{"drop past zero returns to live tail", 2, 0, 5, 0, ModeNormal},
		{"live tail follows appends", 0, 4, 0, 0, ModeNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scroll{Position: tt.position}
			if tt.position > 0 {
				s.Mode = ModeScrolling
			}
			s.Anchor(tt.appended, tt.dropped)
			if s.Position != tt.wantPos || s.Mode != tt.wantMode {
				t.Errorf("got position=%d mode=%v, want position=%d mode=%v",
					s.Position, s.Mode, tt.wantPos, tt.wantMode)
			}
		})
	}
}

func TestScrollAnchorDuringBurst(t *testing.T) {
	// A reader pinned 50 back while 600 messages arrive into a log
	// capped at 500: the first 100 appends grow the offset, after which
	// every append also drops one from the front, washing out. The
	// offset must track the same records until they fall off the log.
	s := Scroll{Position: 50, Mode: ModeScrolling}
	logLen := 400

	for i := 0; i < 600; i++ {
		dropped := 0
		logLen++
		if logLen > 500 {
			logLen = 500
			dropped = 1
		}
		s.Anchor(1, dropped)
	}
	// 100 uncompensated appends before the cap engaged.
	if s.Position != 150 {
		t.Errorf("position = %d, want 150", s.Position)
	}
	if s.Mode != ModeScrolling {
		t.Errorf("mode = %v, want scrolling", s.Mode)
	}
}
